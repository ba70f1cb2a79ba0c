// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists vault service accounts.
type UserRepository interface {
	// CreateUser inserts user. Returns [ErrUserAlreadyExists] when the user
	// id is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUser returns [ErrNoUserWasFound] for an unknown id.
	FindUser(ctx context.Context, userID string) (models.User, error)
	UpdateVerifier(ctx context.Context, userID, verifier string, now time.Time) error
	// DeleteUser removes the account together with all of its vaults and
	// reports how many vaults were removed.
	DeleteUser(ctx context.Context, userID string) (int64, error)
}

// ProfileRepository persists the profiles vaults are attached to.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, userID string, profile models.Profile) (models.Profile, error)
	ListProfiles(ctx context.Context, userID string) ([]models.Profile, error)
	// FindProfile returns [ErrProfileNotFound] when the profile does not
	// exist or belongs to another user.
	FindProfile(ctx context.Context, userID, profileID string) (models.Profile, error)
}

// VaultRepository persists sealed vault blobs with optimistic versioning.
type VaultRepository interface {
	CreateVault(ctx context.Context, vault models.StoredVault) (models.StoredVault, error)
	ListVaults(ctx context.Context, userID string) ([]models.StoredVault, error)
	// ListVaultsMetadata is ListVaults without blobs.
	ListVaultsMetadata(ctx context.Context, userID string) ([]models.StoredVault, error)
	GetVault(ctx context.Context, userID, vaultID string) (models.StoredVault, error)
	// UpdateVault replaces the blob when the stored version equals
	// expectedVersion and returns the vault with its new version.
	// Returns [ErrVersionConflict] on a stale version and
	// [ErrVaultNotFound] for an unknown vault.
	UpdateVault(ctx context.Context, vault models.StoredVault, expectedVersion int) (models.StoredVault, error)
	DeleteVault(ctx context.Context, userID, vaultID string) error
	CountProfileVaults(ctx context.Context, userID, profileID string) (int, error)
}
