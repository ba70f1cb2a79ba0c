package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/secretcode"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ── fake vault service ───────────────────────────────────────────────────────

// fakeVaultService is an in-memory remote store. It checks credentials and
// versions the way the real service does.
type fakeVaultService struct {
	mu sync.Mutex

	subject    string
	registered bool
	kdk        []byte
	password   []byte

	vaults  map[string]models.RemoteVault
	nextID  int
	clock   time.Time
	calls   map[string]int
	failing map[string]error
}

func newFakeVaultService(subject string) *fakeVaultService {
	return &fakeVaultService{
		subject: subject,
		vaults:  make(map[string]models.RemoteVault),
		clock:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		calls:   make(map[string]int),
		failing: make(map[string]error),
	}
}

func (f *fakeVaultService) enter(method string) error {
	f.calls[method]++
	return f.failing[method]
}

func (f *fakeVaultService) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeVaultService) checkCredentials(kdk, password []byte) error {
	if !f.registered || !bytes.Equal(f.kdk, kdk) || !bytes.Equal(f.password, password) {
		return adapter.ErrUnauthorized
	}
	return nil
}

// bumpVersion simulates a write by another device.
func (f *fakeVaultService) bumpVersion(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.vaults[id]
	v.Version++
	v.UpdatedAt = f.tick()
	f.vaults[id] = v
}

func (f *fakeVaultService) IsRegistered(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("IsRegistered"); err != nil {
		return false, err
	}
	return f.registered, nil
}

func (f *fakeVaultService) Register(ctx context.Context, kdk, password []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("Register"); err != nil {
		return "", err
	}
	if f.registered {
		return "", adapter.ErrAlreadyRegistered
	}
	f.registered = true
	f.kdk = bytes.Clone(kdk)
	f.password = bytes.Clone(password)
	return f.subject, nil
}

func (f *fakeVaultService) ListVaults(ctx context.Context, kdk, password []byte) ([]models.RemoteVault, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ListVaults"); err != nil {
		return nil, err
	}
	if err := f.checkCredentials(kdk, password); err != nil {
		return nil, err
	}
	out := make([]models.RemoteVault, 0, len(f.vaults))
	for _, v := range f.vaults {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVaultService) CreateVault(ctx context.Context, kdk, password, blob []byte, blobFormat, proof string) (models.VaultMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CreateVault"); err != nil {
		return models.VaultMetadata{}, err
	}
	if err := f.checkCredentials(kdk, password); err != nil {
		return models.VaultMetadata{}, err
	}

	f.nextID++
	now := f.tick()
	meta := models.VaultMetadata{
		ID:         fmt.Sprintf("vault-%d", f.nextID),
		BlobFormat: blobFormat,
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    1,
		Owner:      f.subject,
		Owners: []models.VaultOwner{
			{ID: f.subject, Issuer: models.IdentityOwnerIssuer},
			{ID: strings.TrimPrefix(proof, "proof:"), Issuer: models.ProfileOwnerIssuer},
		},
	}
	f.vaults[meta.ID] = models.RemoteVault{VaultMetadata: meta, Blob: bytes.Clone(blob)}
	return meta, nil
}

func (f *fakeVaultService) UpdateVault(ctx context.Context, kdk, password []byte, id string, version int, blob []byte, blobFormat string) (models.VaultMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("UpdateVault"); err != nil {
		return models.VaultMetadata{}, err
	}
	if err := f.checkCredentials(kdk, password); err != nil {
		return models.VaultMetadata{}, err
	}
	v, ok := f.vaults[id]
	if !ok {
		return models.VaultMetadata{}, adapter.ErrNotFound
	}
	if v.Version != version {
		return models.VaultMetadata{}, adapter.ErrVersionConflict
	}
	v.Version++
	v.UpdatedAt = f.tick()
	v.Blob = bytes.Clone(blob)
	v.BlobFormat = blobFormat
	f.vaults[id] = v
	return v.VaultMetadata, nil
}

func (f *fakeVaultService) DeleteVault(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("DeleteVault"); err != nil {
		return err
	}
	if _, ok := f.vaults[id]; !ok {
		return adapter.ErrNotFound
	}
	delete(f.vaults, id)
	return nil
}

func (f *fakeVaultService) ListVaultsMetadataOnly(ctx context.Context) ([]models.VaultMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ListVaultsMetadataOnly"); err != nil {
		return nil, err
	}
	out := make([]models.VaultMetadata, 0, len(f.vaults))
	for _, v := range f.vaults {
		out = append(out, v.VaultMetadata)
	}
	return out, nil
}

func (f *fakeVaultService) ChangeVaultPassword(ctx context.Context, kdk, oldPassword, newPassword []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ChangeVaultPassword"); err != nil {
		return err
	}
	if err := f.checkCredentials(kdk, oldPassword); err != nil {
		return err
	}
	f.password = bytes.Clone(newPassword)
	return nil
}

func (f *fakeVaultService) Deregister(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("Deregister"); err != nil {
		return "", err
	}
	f.registered = false
	f.vaults = make(map[string]models.RemoteVault)
	return f.subject, nil
}

func (f *fakeVaultService) Reset(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("Reset"); err != nil {
		return err
	}
	f.registered = false
	f.vaults = make(map[string]models.RemoteVault)
	return nil
}

func (f *fakeVaultService) GetOwnershipProof(ctx context.Context, profileID string) (string, error) {
	return "proof:" + profileID, nil
}

func (f *fakeVaultService) GetSubject() (string, error)  { return f.subject, nil }
func (f *fakeVaultService) GetUserName() (string, error) { return f.subject, nil }

// ── helpers ──────────────────────────────────────────────────────────────────

const testPassword = "correct horse battery staple"

func newTestManager(t *testing.T, remote *fakeVaultService) (*passwordManager, crypto.KeyManager) {
	t.Helper()
	keys := crypto.NewKeyManager(crypto.NewKeyringKeyStore(remote.subject), remote)
	m := NewPasswordManager(PasswordManagerClients{
		Vaults: remote,
		Proofs: remote,
		User:   remote,
	}, keys, logger.Nop()).(*passwordManager)
	return m, keys
}

// unlockedManager returns a registered, unlocked manager with one empty
// vault.
func unlockedManager(t *testing.T) (*passwordManager, *fakeVaultService, models.Vault) {
	t.Helper()
	keyring.MockInit()
	remote := newFakeVaultService("alice")
	m, _ := newTestManager(t, remote)
	ctx := context.Background()

	require.NoError(t, m.Register(ctx, testPassword))
	require.NoError(t, m.Unlock(ctx, testPassword, ""))

	vault, err := m.CreateVault(ctx, "profile-1")
	require.NoError(t, err)
	return m, remote, vault
}

func onlyLogin(t *testing.T, items []models.VaultItem) *models.VaultLogin {
	t.Helper()
	require.Len(t, items, 1)
	login, ok := items[0].(*models.VaultLogin)
	require.True(t, ok, "got %T", items[0])
	return login
}

// ── example scenario ─────────────────────────────────────────────────────────

func TestPasswordManager_ExampleScenario(t *testing.T) {
	m, _, vault := unlockedManager(t)
	ctx := context.Background()

	login := models.NewVaultLogin("NPR", "Joe", "npr.org", nil, models.NewVaultItemPassword("SecretPassword"))
	id, err := m.Add(ctx, login, vault)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	items, err := m.ListItems(ctx, vault)
	require.NoError(t, err)
	got := onlyLogin(t, items)
	assert.Equal(t, id, got.ItemID())
	assert.Equal(t, "Joe", got.User)
	assert.Equal(t, "npr.org", got.URL)

	revealed, err := got.Password().Reveal()
	require.NoError(t, err)
	assert.Equal(t, "SecretPassword", revealed)

	m.Lock()

	_, err = got.Password().Reveal()
	assert.ErrorIs(t, err, ErrVaultLocked)
	assert.True(t, m.IsLocked())
}

// ── unlock ───────────────────────────────────────────────────────────────────

func TestPasswordManager_Unlock_NoKeyNoSecretCode(t *testing.T) {
	keyring.MockInit()
	remote := newFakeVaultService("alice")
	m, _ := newTestManager(t, remote)

	err := m.Unlock(context.Background(), testPassword, "")
	assert.ErrorIs(t, err, ErrInvalidPasswordOrMissingSecretCode)
	assert.Zero(t, remote.calls["ListVaults"])
	assert.True(t, m.IsLocked())
}

func TestPasswordManager_Unlock_UnusableSecretCodeIsIgnored(t *testing.T) {
	keyring.MockInit()
	remote := newFakeVaultService("alice")
	m, _ := newTestManager(t, remote)

	err := m.Unlock(context.Background(), testPassword, "not-a-secret-code")
	assert.ErrorIs(t, err, ErrInvalidPasswordOrMissingSecretCode)
}

func TestPasswordManager_Unlock_WithSecretCodeOnNewDevice(t *testing.T) {
	keyring.MockInit()
	remote := newFakeVaultService("alice")
	ctx := context.Background()

	first, firstKeys := newTestManager(t, remote)
	require.NoError(t, first.Register(ctx, testPassword))
	kdk, err := firstKeys.GetKeyDerivingKey()
	require.NoError(t, err)
	code, ok := first.GetSecretCode()
	require.True(t, ok)

	// a new device starts with an empty key store
	keyring.MockInit()
	m, keys := newTestManager(t, remote)

	status, err := m.GetRegistrationStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MissingSecretCode, status)

	require.NoError(t, m.Unlock(ctx, testPassword, code))
	assert.False(t, m.IsLocked())

	persisted, err := keys.GetKeyDerivingKey()
	require.NoError(t, err)
	assert.Equal(t, kdk, persisted)

	status, err = m.GetRegistrationStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Registered, status)
}

func TestPasswordManager_Unlock_RejectedCredentials(t *testing.T) {
	m, remote, _ := unlockedManager(t)
	ctx := context.Background()

	err := m.Unlock(ctx, "wrong password", "")
	assert.ErrorIs(t, err, ErrSecureVaultService)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.True(t, m.IsLocked())
	assert.Empty(t, m.cache.List())
	assert.Equal(t, 2, remote.calls["ListVaults"])
}

func TestPasswordManager_Unlock_InvalidPassword(t *testing.T) {
	keyring.MockInit()
	m, _ := newTestManager(t, newFakeVaultService("alice"))

	err := m.Unlock(context.Background(), "   ", "")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestPasswordManager_Unlock_StandardizesPassword(t *testing.T) {
	m, _, _ := unlockedManager(t)

	require.NoError(t, m.Unlock(context.Background(), "  "+testPassword+"\n", ""))
	assert.False(t, m.IsLocked())
}

func TestPasswordManager_Unlock_LoadsExistingVaults(t *testing.T) {
	m, _, vault := unlockedManager(t)
	ctx := context.Background()

	_, err := m.Add(ctx, models.NewVaultLogin("a", "u", "", nil, nil), vault)
	require.NoError(t, err)

	m.Lock()
	vaults, err := m.ListVaults(ctx)
	assert.ErrorIs(t, err, ErrVaultLocked)
	assert.Nil(t, vaults)

	require.NoError(t, m.Unlock(ctx, testPassword, ""))
	vaults, err = m.ListVaults(ctx)
	require.NoError(t, err)
	require.Len(t, vaults, 1)
	assert.Equal(t, vault.ID, vaults[0].ID)
	assert.Equal(t, 2, vaults[0].Version)

	items, err := m.ListItems(ctx, vaults[0])
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

// ── registration ─────────────────────────────────────────────────────────────

func TestPasswordManager_Register_PersistsKeyBeforeRemoteCall(t *testing.T) {
	keyring.MockInit()
	remote := newFakeVaultService("alice")
	remote.failing["Register"] = adapter.ErrInternalServerError
	m, keys := newTestManager(t, remote)
	ctx := context.Background()

	err := m.Register(ctx, testPassword)
	assert.ErrorIs(t, err, ErrSecureVaultService)

	kdk, err := keys.GetKeyDerivingKey()
	require.NoError(t, err)
	require.Len(t, kdk, crypto.KeyDerivingKeySize)

	// the retry reuses the stored key
	delete(remote.failing, "Register")
	require.NoError(t, m.Register(ctx, testPassword))
	assert.Equal(t, kdk, remote.kdk)
}

func TestPasswordManager_GetRegistrationStatus(t *testing.T) {
	keyring.MockInit()
	remote := newFakeVaultService("alice")
	m, keys := newTestManager(t, remote)
	ctx := context.Background()

	status, err := m.GetRegistrationStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.NotRegistered, status)

	require.NoError(t, m.Register(ctx, testPassword))
	status, err = m.GetRegistrationStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Registered, status)

	require.NoError(t, keys.RemoveAllKeys())
	status, err = m.GetRegistrationStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MissingSecretCode, status)

	remote.failing["IsRegistered"] = adapter.ErrInternalServerError
	_, err = m.GetRegistrationStatus(ctx)
	assert.ErrorIs(t, err, ErrSecureVaultService)
}

func TestPasswordManager_GetSecretCode(t *testing.T) {
	m, _, _ := unlockedManager(t)

	code, ok := m.GetSecretCode()
	require.True(t, ok)
	assert.Len(t, code, 43)
	assert.True(t, strings.HasPrefix(code, secretcode.Prefix("alice")))

	kdk, err := m.keys.GetKeyDerivingKey()
	require.NoError(t, err)
	parsed, err := secretcode.Parse(code)
	require.NoError(t, err)
	assert.Equal(t, kdk, parsed)

	require.NoError(t, m.keys.RemoveAllKeys())
	_, ok = m.GetSecretCode()
	assert.False(t, ok)
}

// ── lock, reset, deregister ─────────────────────────────────────────────────

func TestPasswordManager_Lock_ClearsCache(t *testing.T) {
	m, _, vault := unlockedManager(t)
	ctx := context.Background()

	_, err := m.Add(ctx, models.NewVaultLogin("a", "u", "", nil, models.NewVaultItemPassword("p")), vault)
	require.NoError(t, err)
	items, err := m.ListItems(ctx, vault)
	require.NoError(t, err)

	m.Lock()

	assert.Empty(t, m.cache.List())
	_, err = onlyLogin(t, items).Password().Reveal()
	assert.ErrorIs(t, err, ErrVaultLocked)

	// a new session does not revive reveals handed out by the old one
	require.NoError(t, m.Unlock(ctx, testPassword, ""))
	_, err = onlyLogin(t, items).Password().Reveal()
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestPasswordManager_KeyRemovedBehindTheBack(t *testing.T) {
	m, _, vault := unlockedManager(t)
	ctx := context.Background()

	_, err := m.Add(ctx, models.NewVaultLogin("a", "u", "", nil, models.NewVaultItemPassword("p")), vault)
	require.NoError(t, err)
	items, err := m.ListItems(ctx, vault)
	require.NoError(t, err)

	require.NoError(t, m.keys.RemoveAllKeys())

	assert.True(t, m.IsLocked())
	_, err = onlyLogin(t, items).Password().Reveal()
	assert.ErrorIs(t, err, ErrVaultLocked)
	_, err = m.ListItems(ctx, vault)
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestPasswordManager_Reset(t *testing.T) {
	m, remote, _ := unlockedManager(t)
	ctx := context.Background()

	require.NoError(t, m.Reset(ctx))

	assert.True(t, m.IsLocked())
	assert.False(t, remote.registered)
	assert.Empty(t, remote.vaults)
	kdk, err := m.keys.GetKeyDerivingKey()
	require.NoError(t, err)
	assert.Nil(t, kdk)
}

func TestPasswordManager_Reset_RemoteFailureKeepsKeys(t *testing.T) {
	m, remote, _ := unlockedManager(t)
	remote.failing["Reset"] = adapter.ErrInternalServerError

	err := m.Reset(context.Background())
	assert.ErrorIs(t, err, ErrSecureVaultService)
	assert.True(t, m.IsLocked())

	kdk, err := m.keys.GetKeyDerivingKey()
	require.NoError(t, err)
	assert.NotNil(t, kdk)
}

func TestPasswordManager_Deregister(t *testing.T) {
	m, _, _ := unlockedManager(t)

	userID, err := m.Deregister(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", userID)
	assert.True(t, m.IsLocked())

	_, ok := m.GetSecretCode()
	assert.False(t, ok)
}

func TestPasswordManager_Deregister_Failure(t *testing.T) {
	m, remote, _ := unlockedManager(t)
	remote.failing["Deregister"] = adapter.ErrForbidden

	_, err := m.Deregister(context.Background())
	assert.ErrorIs(t, err, ErrSecureVaultService)
	assert.True(t, m.IsLocked())

	_, ok := m.GetSecretCode()
	assert.True(t, ok)
}

// ── master password ─────────────────────────────────────────────────────────

func TestPasswordManager_ChangeMasterPassword(t *testing.T) {
	m, _, _ := unlockedManager(t)
	ctx := context.Background()

	require.NoError(t, m.ChangeMasterPassword(ctx, testPassword, "new password"))
	assert.False(t, m.IsLocked())

	// the rebuilt session uses the new password
	_, err := m.CreateVault(ctx, "profile-2")
	require.NoError(t, err)

	m.Lock()
	assert.ErrorIs(t, m.Unlock(ctx, testPassword, ""), ErrSecureVaultService)
	require.NoError(t, m.Unlock(ctx, "new password", ""))
}

func TestPasswordManager_ChangeMasterPassword_ItemsStillReveal(t *testing.T) {
	m, _, vault := unlockedManager(t)
	ctx := context.Background()

	login := models.NewVaultLogin("NPR", "Joe", "npr.org", nil, models.NewVaultItemPassword("SecretPassword"))
	_, err := m.Add(ctx, login, vault)
	require.NoError(t, err)
	items, err := m.ListItems(ctx, vault)
	require.NoError(t, err)
	got := onlyLogin(t, items)

	require.NoError(t, m.ChangeMasterPassword(ctx, testPassword, "new password"))

	revealed, err := got.Password().Reveal()
	require.NoError(t, err)
	assert.Equal(t, "SecretPassword", revealed)

	m.Lock()
	_, err = got.Password().Reveal()
	assert.ErrorIs(t, err, ErrVaultLocked)

	// a later unlock does not revive items from the earlier one
	require.NoError(t, m.Unlock(ctx, "new password", ""))
	_, err = got.Password().Reveal()
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestPasswordManager_ChangeMasterPassword_Errors(t *testing.T) {
	m, _, _ := unlockedManager(t)
	ctx := context.Background()

	assert.ErrorIs(t, m.ChangeMasterPassword(ctx, "wrong", "new"), ErrNotAuthorized)
	assert.ErrorIs(t, m.ChangeMasterPassword(ctx, testPassword, " "), ErrInvalidPasswordOrMissingSecretCode)

	m.Lock()
	assert.ErrorIs(t, m.ChangeMasterPassword(ctx, testPassword, "new"), ErrVaultLocked)
}

// ── vaults ───────────────────────────────────────────────────────────────────

func TestPasswordManager_CreateVault(t *testing.T) {
	m, remote, vault := unlockedManager(t)
	ctx := context.Background()

	assert.Equal(t, 1, vault.Version)
	profileID, ok := vault.ProfileID()
	assert.True(t, ok)
	assert.Equal(t, "profile-1", profileID)

	stored := remote.vaults[vault.ID]
	assert.Equal(t, "com.gopassvault.passwordmanager.vault.v1", stored.BlobFormat)

	got, err := m.GetVault(ctx, vault.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, vault, *got)

	missing, err := m.GetVault(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPasswordManager_DeleteVault(t *testing.T) {
	m, remote, vault := unlockedManager(t)
	ctx := context.Background()

	m.Lock()
	require.NoError(t, m.DeleteVault(ctx, vault.ID))
	assert.Empty(t, remote.vaults)

	assert.ErrorIs(t, m.DeleteVault(ctx, vault.ID), ErrSecureVaultService)
}

func TestPasswordManager_UpdateVault_VersionMismatch(t *testing.T) {
	m, remote, vault := unlockedManager(t)
	ctx := context.Background()

	remote.bumpVersion(vault.ID)

	err := m.UpdateVault(ctx, vault)
	assert.ErrorIs(t, err, ErrVersionMismatch)

	got, err := m.GetVault(ctx, vault.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Version, "cached version must only follow confirmed metadata")
}

// ── items ────────────────────────────────────────────────────────────────────

func TestPasswordManager_Add_VersionMismatchRollsBack(t *testing.T) {
	m, remote, vault := unlockedManager(t)
	ctx := context.Background()

	remote.bumpVersion(vault.ID)

	_, err := m.Add(ctx, models.NewVaultLogin("a", "u", "", nil, nil), vault)
	assert.ErrorIs(t, err, ErrVersionMismatch)

	items, err := m.ListItems(ctx, vault)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPasswordManager_Add_AdvancesVersion(t *testing.T) {
	m, _, vault := unlockedManager(t)
	ctx := context.Background()

	_, err := m.Add(ctx, models.NewVaultLogin("a", "u", "", nil, nil), vault)
	require.NoError(t, err)
	_, err = m.Add(ctx, models.NewVaultLogin("b", "u", "", nil, nil), vault)
	require.NoError(t, err)

	got, err := m.GetVault(ctx, vault.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Version)
}

func TestPasswordManager_AllItemTypes(t *testing.T) {
	m, _, vault := unlockedManager(t)
	ctx := context.Background()

	bank := models.NewVaultBankAccount("savings", "First Bank", "savings",
		models.NewVaultItemValue("12345678"), models.NewVaultItemValue("0000"))
	card := models.NewVaultCreditCard("visa", "Joe", "visa",
		models.NewVaultItemValue("4111111111111111"), models.NewVaultItemValue("123"))
	login := models.NewVaultLogin("npr", "Joe", "npr.org", models.NewVaultItemValue("note"), nil)

	for _, item := range []models.VaultItem{bank, card, login} {
		_, err := m.Add(ctx, item, vault)
		require.NoError(t, err)
	}

	items, err := m.ListItems(ctx, vault)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, models.ItemTypeLogin, items[0].ItemType())
	assert.Equal(t, models.ItemTypeCreditCard, items[1].ItemType())
	assert.Equal(t, models.ItemTypeBankAccount, items[2].ItemType())

	gotCard := items[1].(*models.VaultCreditCard)
	number, err := gotCard.CardNumber.Reveal()
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", number)

	gotBank := items[2].(*models.VaultBankAccount)
	pin, err := gotBank.AccountPin.Reveal()
	require.NoError(t, err)
	assert.Equal(t, "0000", pin)

	notes, err := items[0].(*models.VaultLogin).Notes.Reveal()
	require.NoError(t, err)
	assert.Equal(t, "note", notes)
}

func TestPasswordManager_UpdateItem(t *testing.T) {
	m, _, vault := unlockedManager(t)
	ctx := context.Background()

	id, err := m.Add(ctx, models.NewVaultLogin("npr", "Joe", "npr.org", nil, models.NewVaultItemPassword("first")), vault)
	require.NoError(t, err)
	_, err = m.Add(ctx, models.NewVaultLogin("other", "Ann", "", nil, nil), vault)
	require.NoError(t, err)

	item, err := m.GetItem(ctx, id, vault)
	require.NoError(t, err)
	login := item.(*models.VaultLogin)
	before := login.UpdatedAt
	storedBefore := m.cache.List()[0].Data.Logins[0].Password.SecureValue

	login.URL = "text.npr.org"
	require.NoError(t, m.UpdateItem(ctx, login, vault))

	items, err := m.ListItems(ctx, vault)
	require.NoError(t, err)
	require.Len(t, items, 2)
	var matches []*models.VaultLogin
	for _, it := range items {
		if it.ItemID() == id {
			matches = append(matches, it.(*models.VaultLogin))
		}
	}
	require.Len(t, matches, 1)
	updated := matches[0]
	assert.Equal(t, "text.npr.org", updated.URL)
	assert.True(t, updated.UpdatedAt.After(before))

	// an untouched secure field keeps its ciphertext
	proxy, err := m.cache.GetItem(vault.ID, id)
	require.NoError(t, err)
	assert.Equal(t, storedBefore, proxy.(models.LoginProxy).Password.SecureValue)

	updated.SetPassword(models.NewVaultItemPassword("second"))
	require.NoError(t, m.UpdateItem(ctx, updated, vault))

	item, err = m.GetItem(ctx, id, vault)
	require.NoError(t, err)
	final := item.(*models.VaultLogin)
	current, err := final.Password().Reveal()
	require.NoError(t, err)
	assert.Equal(t, "second", current)

	history := final.PreviousPasswords()
	require.Len(t, history, 1)
	require.NotNil(t, history[0].Replaced)
	previous, err := history[0].Reveal()
	require.NoError(t, err)
	assert.Equal(t, "first", previous)
}

func TestPasswordManager_UpdateItem_WithoutID(t *testing.T) {
	m, remote, vault := unlockedManager(t)

	err := m.UpdateItem(context.Background(), models.NewVaultLogin("a", "u", "", nil, nil), vault)
	assert.ErrorIs(t, err, ErrInvalidVault)
	assert.Zero(t, remote.calls["UpdateVault"])
}

func TestPasswordManager_RemoveItem(t *testing.T) {
	m, remote, vault := unlockedManager(t)
	ctx := context.Background()

	id, err := m.Add(ctx, models.NewVaultLogin("a", "u", "", nil, nil), vault)
	require.NoError(t, err)

	require.NoError(t, m.RemoveItem(ctx, id, vault))
	items, err := m.ListItems(ctx, vault)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 3, remote.vaults[vault.ID].Version)

	assert.ErrorIs(t, m.RemoveItem(ctx, id, vault), ErrInvalidVault)
}

func TestPasswordManager_GetItem_Missing(t *testing.T) {
	m, _, vault := unlockedManager(t)
	ctx := context.Background()

	item, err := m.GetItem(ctx, "nope", vault)
	require.NoError(t, err)
	assert.Nil(t, item)

	item, err = m.GetItem(ctx, "nope", models.Vault{VaultMetadata: models.VaultMetadata{ID: "unknown"}})
	require.NoError(t, err)
	assert.Nil(t, item)

	items, err := m.ListItems(ctx, models.Vault{VaultMetadata: models.VaultMetadata{ID: "unknown"}})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPasswordManager_Add_UnknownVault(t *testing.T) {
	m, remote, _ := unlockedManager(t)

	_, err := m.Add(context.Background(), models.NewVaultLogin("a", "u", "", nil, nil),
		models.Vault{VaultMetadata: models.VaultMetadata{ID: "unknown"}})
	assert.ErrorIs(t, err, ErrInvalidVault)
	assert.Zero(t, remote.calls["UpdateVault"])
}

func TestPasswordManager_Add_InvalidUTF8(t *testing.T) {
	m, remote, vault := unlockedManager(t)

	login := models.NewVaultLogin("a", "u", "", nil, models.NewVaultItemPassword("\xff\xfe"))
	_, err := m.Add(context.Background(), login, vault)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.Zero(t, remote.calls["UpdateVault"])
}
