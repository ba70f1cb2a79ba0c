package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// CreateVault implements [PasswordManager]. The vault starts empty and is
// owned by profileID.
func (m *passwordManager) CreateVault(ctx context.Context, profileID string) (models.Vault, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	_, creds, err := m.unlocked()
	if err != nil {
		return models.Vault{}, err
	}

	blob, tag, err := m.codec.Encode(models.VaultDocument{})
	if err != nil {
		return models.Vault{}, newError(Internal, err)
	}
	doc, err := m.codec.Decode(tag, blob)
	if err != nil {
		return models.Vault{}, newError(Internal, err)
	}

	proof, err := m.clients.Proofs.GetOwnershipProof(ctx, profileID)
	if err != nil {
		return models.Vault{}, mapRemoteError(err)
	}

	metadata, err := m.clients.Vaults.CreateVault(ctx, creds.kdk, creds.password, blob, tag, proof)
	if err != nil {
		return models.Vault{}, mapRemoteError(err)
	}
	if metadata.BlobFormat == "" {
		metadata.BlobFormat = tag
	}

	m.cache.ImportVault(models.VaultProxy{VaultMetadata: metadata, Data: doc})

	m.logger.Debug().
		Str("func", "*passwordManager.CreateVault").
		Str("vault_id", metadata.ID).
		Str("profile_id", profileID).
		Msg("vault created")
	return models.Vault{VaultMetadata: metadata}, nil
}

// ListVaults implements [PasswordManager]. It returns the vaults cached at
// unlock plus those created since.
func (m *passwordManager) ListVaults(ctx context.Context) ([]models.Vault, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if m.IsLocked() {
		return nil, ErrVaultLocked
	}

	proxies := m.cache.List()
	vaults := make([]models.Vault, 0, len(proxies))
	for _, p := range proxies {
		vaults = append(vaults, p.Vault())
	}
	return vaults, nil
}

// GetVault implements [PasswordManager]. It returns nil when the vault is
// not cached.
func (m *passwordManager) GetVault(ctx context.Context, id string) (*models.Vault, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if m.IsLocked() {
		return nil, ErrVaultLocked
	}

	proxy, ok := m.cache.Get(id)
	if !ok {
		return nil, nil
	}
	vault := proxy.Vault()
	return &vault, nil
}

// UpdateVault implements [PasswordManager]. It pushes the cached contents of
// the vault to the remote store.
func (m *passwordManager) UpdateVault(ctx context.Context, vault models.Vault) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	_, creds, err := m.unlocked()
	if err != nil {
		return err
	}
	return m.push(ctx, creds, vault.ID)
}

// push uploads the cached vault with the version last confirmed by the
// remote store, then adopts the metadata the store returns.
func (m *passwordManager) push(ctx context.Context, creds *credentials, vaultID string) error {
	proxy, ok := m.cache.Get(vaultID)
	if !ok {
		return newError(InvalidVault, fmt.Errorf("%w: %s", store.ErrVaultNotFound, vaultID))
	}

	blob, tag, err := m.codec.Encode(proxy.Data)
	if err != nil {
		return newError(InvalidVault, err)
	}

	metadata, err := m.clients.Vaults.UpdateVault(ctx, creds.kdk, creds.password, proxy.ID, proxy.Version, blob, tag)
	if err != nil {
		m.logger.Err(err).
			Str("func", "*passwordManager.push").
			Str("vault_id", vaultID).
			Int("version", proxy.Version).
			Msg("failed to update vault")
		return mapRemoteError(err)
	}

	return mapCacheError(m.cache.UpdateVault(metadata))
}

// DeleteVault implements [PasswordManager]. It needs no unlock: the remote
// delete is authorized by the identity alone.
func (m *passwordManager) DeleteVault(ctx context.Context, id string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if err := m.clients.Vaults.DeleteVault(ctx, id); err != nil {
		return mapRemoteError(err)
	}
	m.cache.Delete(id)
	return nil
}
