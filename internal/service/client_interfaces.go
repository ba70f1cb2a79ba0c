package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SecureVaultClient is the remote vault store. Calls taking kdk and password
// authenticate with credentials derived from both; a wrong pair is rejected.
// Blobs passed in and returned are the plain output of the schema codec: any
// transport encryption is the client's business.
type SecureVaultClient interface {
	// IsRegistered reports whether the signed-in user is registered with the
	// vault store.
	IsRegistered(ctx context.Context) (bool, error)

	// Register registers the signed-in user and returns the user id.
	Register(ctx context.Context, kdk, password []byte) (string, error)

	// ListVaults returns every vault of the user including blobs. It doubles
	// as the credential check during unlock.
	ListVaults(ctx context.Context, kdk, password []byte) ([]models.RemoteVault, error)

	// CreateVault stores a new vault owned by the profile named in
	// ownershipProof.
	CreateVault(ctx context.Context, kdk, password, blob []byte, blobFormat, ownershipProof string) (models.VaultMetadata, error)

	// UpdateVault replaces the blob of a vault. It fails with
	// adapter.ErrVersionConflict when version is not the current version.
	UpdateVault(ctx context.Context, kdk, password []byte, id string, version int, blob []byte, blobFormat string) (models.VaultMetadata, error)

	// DeleteVault deletes a vault.
	DeleteVault(ctx context.Context, id string) error

	// ListVaultsMetadataOnly returns vault metadata without blobs. No
	// credentials are required.
	ListVaultsMetadataOnly(ctx context.Context) ([]models.VaultMetadata, error)

	// ChangeVaultPassword replaces the password the vault store checks.
	ChangeVaultPassword(ctx context.Context, kdk, oldPassword, newPassword []byte) error

	// Deregister removes the user and all vaults and returns the user id.
	Deregister(ctx context.Context) (string, error)

	// Reset removes the user's vaults and registration.
	Reset(ctx context.Context) error
}

// OwnershipProofIssuer signs proofs that the user owns a profile.
type OwnershipProofIssuer interface {
	GetOwnershipProof(ctx context.Context, profileID string) (string, error)
}

// EntitlementsClient returns the quotas granted to the user.
type EntitlementsClient interface {
	GetEntitlements(ctx context.Context) ([]models.Entitlement, error)
}

// ProfilesClient manages the profiles vaults are attached to.
type ProfilesClient interface {
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	CreateProfile(ctx context.Context) (models.Profile, error)
}

// ServerInfoClient describes the vault service the client talks to.
type ServerInfoClient interface {
	GetServerInfo(ctx context.Context) (models.ServerInfo, error)
}

// UserClient describes the signed-in user.
type UserClient interface {
	// GetSubject returns the user's subject claim.
	GetSubject() (string, error)

	// GetUserName returns the name key store entries are namespaced by.
	GetUserName() (string, error)
}

// IDGenerator creates item ids.
type IDGenerator interface {
	Generate() string
}

// PasswordManager is the client-side password vault. It is Locked until
// Unlock succeeds; every vault and item operation except DeleteVault requires
// the Unlocked state.
//
// Every error returned is a *PasswordManagerError. Operations are serialized
// per instance.
type PasswordManager interface {
	GetRegistrationStatus(ctx context.Context) (models.RegistrationStatus, error)
	Register(ctx context.Context, masterPassword string) error
	Unlock(ctx context.Context, masterPassword, secretCode string) error
	Lock()
	IsLocked() bool
	Reset(ctx context.Context) error
	Deregister(ctx context.Context) (string, error)
	GetSecretCode() (string, bool)
	ChangeMasterPassword(ctx context.Context, currentPassword, newPassword string) error

	CreateVault(ctx context.Context, profileID string) (models.Vault, error)
	ListVaults(ctx context.Context) ([]models.Vault, error)
	GetVault(ctx context.Context, id string) (*models.Vault, error)
	UpdateVault(ctx context.Context, vault models.Vault) error
	DeleteVault(ctx context.Context, id string) error

	Add(ctx context.Context, item models.VaultItem, vault models.Vault) (string, error)
	ListItems(ctx context.Context, vault models.Vault) ([]models.VaultItem, error)
	GetItem(ctx context.Context, id string, vault models.Vault) (models.VaultItem, error)
	UpdateItem(ctx context.Context, item models.VaultItem, vault models.Vault) error
	RemoveItem(ctx context.Context, id string, vault models.Vault) error

	GetEntitlementState(ctx context.Context) ([]models.EntitlementState, error)
}

// VaultCodec encodes vault documents with the latest schema and decodes
// documents of any registered schema.
type VaultCodec interface {
	Encode(doc models.VaultDocument) ([]byte, string, error)
	Decode(tag string, blob []byte) (models.VaultDocument, error)
}

// VaultCache holds the decoded vaults of an unlocked password manager.
type VaultCache interface {
	Import(remote []models.RemoteVault) int
	ImportVault(vault models.VaultProxy)
	UpdateVault(metadata models.VaultMetadata) error
	List() []models.VaultProxy
	Get(id string) (models.VaultProxy, bool)
	Delete(id string)
	RemoveAll()
	AddItem(vaultID string, item models.VaultItemProxy) error
	UpdateItem(vaultID string, item models.VaultItemProxy) (models.VaultItemProxy, error)
	RemoveItem(vaultID, itemID string) error
	GetItem(vaultID, itemID string) (models.VaultItemProxy, error)
}

// Locker is what the auto-lock job needs from the password manager.
type Locker interface {
	Lock()
	IsLocked() bool
}

// AutoLockJob locks a password manager after a period without activity.
type AutoLockJob interface {
	// Start launches the background goroutine. idle is the inactivity
	// period after which the manager is locked.
	Start(ctx context.Context, idle time.Duration)

	// Touch records user activity.
	Touch()

	// Stop terminates the goroutine and waits for it to exit.
	Stop()
}
