package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

var errMissingItemID = errors.New("item has no id")

// Add implements [PasswordManager]. It assigns the item a new id, stores it
// encrypted in the vault and pushes the vault. The id is returned.
func (m *passwordManager) Add(ctx context.Context, item models.VaultItem, vault models.Vault) (string, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	_, creds, err := m.unlocked()
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", newError(InvalidFormat, errors.New("item is nil"))
	}

	models.AssignID(item, m.ids.Generate())

	proxy, err := m.factory.ToProxy(item, creds.kdk)
	if err != nil {
		return "", err
	}

	err = m.mutate(ctx, creds, vault.ID, func() error {
		return m.cache.AddItem(vault.ID, proxy)
	})
	if err != nil {
		return "", err
	}
	return proxy.ItemID(), nil
}

// ListItems implements [PasswordManager]. Logins come first, then credit
// cards, then bank accounts, each in stored order. An unknown vault has no
// items.
func (m *passwordManager) ListItems(ctx context.Context, vault models.Vault) ([]models.VaultItem, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	s, creds, err := m.unlocked()
	if err != nil {
		return nil, err
	}

	proxy, ok := m.cache.Get(vault.ID)
	if !ok {
		return []models.VaultItem{}, nil
	}

	guard := m.guardFor(s)
	doc := proxy.Data
	items := make([]models.VaultItem, 0, doc.Len())
	for _, l := range doc.Logins {
		items = append(items, m.factory.FromProxy(l, creds.kdk, guard))
	}
	for _, c := range doc.CreditCards {
		items = append(items, m.factory.FromProxy(c, creds.kdk, guard))
	}
	for _, b := range doc.BankAccounts {
		items = append(items, m.factory.FromProxy(b, creds.kdk, guard))
	}
	return items, nil
}

// GetItem implements [PasswordManager]. It returns nil when the vault or the
// item is unknown.
func (m *passwordManager) GetItem(ctx context.Context, id string, vault models.Vault) (models.VaultItem, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	s, creds, err := m.unlocked()
	if err != nil {
		return nil, err
	}

	proxy, err := m.cache.GetItem(vault.ID, id)
	if errors.Is(err, store.ErrVaultNotFound) || errors.Is(err, store.ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapCacheError(err)
	}
	return m.factory.FromProxy(proxy, creds.kdk, m.guardFor(s)), nil
}

// UpdateItem implements [PasswordManager]. The item replaces the stored item
// with the same id and the vault is pushed.
func (m *passwordManager) UpdateItem(ctx context.Context, item models.VaultItem, vault models.Vault) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	_, creds, err := m.unlocked()
	if err != nil {
		return err
	}
	if item == nil || item.ItemID() == "" {
		return newError(InvalidVault, errMissingItemID)
	}

	proxy, err := m.factory.ToProxy(item, creds.kdk)
	if err != nil {
		return err
	}

	return m.mutate(ctx, creds, vault.ID, func() error {
		_, err := m.cache.UpdateItem(vault.ID, proxy)
		return err
	})
}

// RemoveItem implements [PasswordManager].
func (m *passwordManager) RemoveItem(ctx context.Context, id string, vault models.Vault) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	_, creds, err := m.unlocked()
	if err != nil {
		return err
	}

	return m.mutate(ctx, creds, vault.ID, func() error {
		return m.cache.RemoveItem(vault.ID, id)
	})
}

// mutate applies change to the cached vault and pushes it. When the push
// fails the cached vault is restored, so the cache never holds changes the
// remote store has not accepted.
func (m *passwordManager) mutate(ctx context.Context, creds *credentials, vaultID string, change func() error) error {
	previous, ok := m.cache.Get(vaultID)
	if !ok {
		return newError(InvalidVault, fmt.Errorf("%w: %s", store.ErrVaultNotFound, vaultID))
	}

	if err := change(); err != nil {
		return mapCacheError(err)
	}

	if err := m.push(ctx, creds, vaultID); err != nil {
		m.cache.ImportVault(previous)
		return err
	}
	return nil
}
