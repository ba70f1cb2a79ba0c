// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ClientVaultStore is the in-memory cache of decoded vaults held while the
// password manager is unlocked.
//
// Vaults are keyed by id. Importing or updating a vault with a known id
// replaces the cached one: the last write wins and nothing is merged.
//
// The store is not safe for concurrent use. The password manager serializes
// every call.
type ClientVaultStore struct {
	vaults  map[string]models.VaultProxy
	decoder VaultDecoder
	logger  *logger.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// NewClientVaultStore constructs an empty [ClientVaultStore]. decoder is used
// by Import to decode remote blobs.
func NewClientVaultStore(decoder VaultDecoder, logger *logger.Logger) *ClientVaultStore {
	return &ClientVaultStore{
		vaults:  make(map[string]models.VaultProxy),
		decoder: decoder,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Import decodes and caches every remote vault. A vault whose blob cannot be
// decoded is logged and skipped; the rest of the batch is still imported.
// It returns the number of vaults imported.
func (s *ClientVaultStore) Import(remote []models.RemoteVault) int {
	imported := 0
	for _, vault := range remote {
		doc, err := s.decoder.Decode(vault.BlobFormat, vault.Blob)
		if err != nil {
			s.logger.Err(err).
				Str("func", "*ClientVaultStore.Import").
				Str("vault_id", vault.ID).
				Str("blob_format", vault.BlobFormat).
				Msg("skipping vault that failed to decode")
			continue
		}

		s.vaults[vault.ID] = models.VaultProxy{VaultMetadata: vault.VaultMetadata, Data: doc}
		imported++
	}
	return imported
}

// ImportVault caches an already decoded vault.
func (s *ClientVaultStore) ImportVault(vault models.VaultProxy) {
	vault.Data = vault.Data.Clone()
	s.vaults[vault.ID] = vault
}

// UpdateVault replaces the metadata of a cached vault and keeps its data.
// Only metadata confirmed by the remote store should be passed here.
func (s *ClientVaultStore) UpdateVault(metadata models.VaultMetadata) error {
	vault, ok := s.vaults[metadata.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrVaultNotFound, metadata.ID)
	}

	vault.VaultMetadata = metadata
	s.vaults[metadata.ID] = vault
	return nil
}

// List returns every cached vault ordered by creation time.
func (s *ClientVaultStore) List() []models.VaultProxy {
	vaults := make([]models.VaultProxy, 0, len(s.vaults))
	for _, id := range slices.Sorted(maps.Keys(s.vaults)) {
		vault := s.vaults[id]
		vault.Data = vault.Data.Clone()
		vaults = append(vaults, vault)
	}
	slices.SortStableFunc(vaults, func(a, b models.VaultProxy) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return vaults
}

// Get returns a copy of the cached vault with the given id.
func (s *ClientVaultStore) Get(id string) (models.VaultProxy, bool) {
	vault, ok := s.vaults[id]
	if !ok {
		return models.VaultProxy{}, false
	}
	vault.Data = vault.Data.Clone()
	return vault, true
}

// Delete drops a vault from the cache. Unknown ids are ignored.
func (s *ClientVaultStore) Delete(id string) {
	delete(s.vaults, id)
}

// RemoveAll wipes the cache.
func (s *ClientVaultStore) RemoveAll() {
	clear(s.vaults)
}

// Len reports the number of cached vaults.
func (s *ClientVaultStore) Len() int {
	return len(s.vaults)
}

// AddItem appends item to the matching collection of a vault.
func (s *ClientVaultStore) AddItem(vaultID string, item models.VaultItemProxy) error {
	vault, ok := s.vaults[vaultID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrVaultNotFound, vaultID)
	}
	if _, found := findItem(vault.Data, item.ItemID()); found {
		return fmt.Errorf("%w: %s", ErrItemAlreadyExists, item.ItemID())
	}

	data, err := appendItem(vault.Data.Clone(), item)
	if err != nil {
		return err
	}
	vault.Data = data
	s.vaults[vaultID] = vault
	return nil
}

// UpdateItem replaces the item with the same id. The previous version is
// removed, UpdatedAt is refreshed, and the item is appended at the end of its
// collection, so updates do not preserve order.
func (s *ClientVaultStore) UpdateItem(vaultID string, item models.VaultItemProxy) (models.VaultItemProxy, error) {
	vault, ok := s.vaults[vaultID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVaultNotFound, vaultID)
	}

	data := removeItem(vault.Data.Clone(), item.ItemID())

	touched, err := s.touch(item)
	if err != nil {
		return nil, err
	}
	if data, err = appendItem(data, touched); err != nil {
		return nil, err
	}

	vault.Data = data
	s.vaults[vaultID] = vault
	return touched, nil
}

// RemoveItem deletes the item with the given id from a vault.
func (s *ClientVaultStore) RemoveItem(vaultID, itemID string) error {
	vault, ok := s.vaults[vaultID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrVaultNotFound, vaultID)
	}
	if _, found := findItem(vault.Data, itemID); !found {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}

	vault.Data = removeItem(vault.Data.Clone(), itemID)
	s.vaults[vaultID] = vault
	return nil
}

// GetItem returns the item with the given id from a cached vault.
func (s *ClientVaultStore) GetItem(vaultID, itemID string) (models.VaultItemProxy, error) {
	vault, ok := s.vaults[vaultID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVaultNotFound, vaultID)
	}
	item, found := findItem(vault.Data, itemID)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	return item, nil
}

// touch returns item with UpdatedAt set to now, or just past its previous
// value when the clock has not advanced.
func (s *ClientVaultStore) touch(item models.VaultItemProxy) (models.VaultItemProxy, error) {
	next := func(prev time.Time) time.Time {
		now := s.now()
		if !now.After(prev) {
			return prev.Add(time.Microsecond)
		}
		return now
	}

	switch it := item.(type) {
	case models.LoginProxy:
		it.UpdatedAt = next(it.UpdatedAt)
		return it, nil
	case models.CreditCardProxy:
		it.UpdatedAt = next(it.UpdatedAt)
		return it, nil
	case models.BankAccountProxy:
		it.UpdatedAt = next(it.UpdatedAt)
		return it, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedItem, item)
	}
}

func appendItem(doc models.VaultDocument, item models.VaultItemProxy) (models.VaultDocument, error) {
	switch it := item.(type) {
	case models.LoginProxy:
		doc.Logins = append(doc.Logins, it)
	case models.CreditCardProxy:
		doc.CreditCards = append(doc.CreditCards, it)
	case models.BankAccountProxy:
		doc.BankAccounts = append(doc.BankAccounts, it)
	default:
		return doc, fmt.Errorf("%w: %T", ErrUnsupportedItem, item)
	}
	return doc, nil
}

func removeItem(doc models.VaultDocument, id string) models.VaultDocument {
	doc.Logins = deleteByID(doc.Logins, id)
	doc.CreditCards = deleteByID(doc.CreditCards, id)
	doc.BankAccounts = deleteByID(doc.BankAccounts, id)
	return doc
}

func deleteByID[T models.VaultItemProxy](items []T, id string) []T {
	return slices.DeleteFunc(items, func(item T) bool { return item.ItemID() == id })
}

func findItem(doc models.VaultDocument, id string) (models.VaultItemProxy, bool) {
	if item, ok := findByID(doc.Logins, id); ok {
		return item, true
	}
	if item, ok := findByID(doc.CreditCards, id); ok {
		return item, true
	}
	return findByID(doc.BankAccounts, id)
}

func findByID[T models.VaultItemProxy](items []T, id string) (models.VaultItemProxy, bool) {
	i := slices.IndexFunc(items, func(item T) bool { return item.ItemID() == id })
	if i < 0 {
		return nil, false
	}
	return items[i], true
}
