// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/hmac"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// secureVaultService stores sealed vault blobs for registered users.
//
// Credentials: a user registers with an auth key and the service keeps
// HMAC-SHA256(verifierHashKey, authKey). Every call that returns or modifies
// vault content must present the same auth key again.
//
// Ownership: a vault is created for a profile, proven by an ownership proof
// signed by the platform. The number of vaults per profile is capped by the
// vaults-per-profile entitlement.
type secureVaultService struct {
	users    store.UserRepository
	profiles store.ProfileRepository
	vaults   store.VaultRepository
	ids      IDGenerator

	verifierHashKey     string
	proofSignKey        string
	proofIssuer         string
	maxVaultsPerProfile int

	now    func() time.Time
	logger *logger.Logger
}

// NewSecureVaultService constructs a SecureVaultService over the given
// repositories.
func NewSecureVaultService(storages *store.Storages, ids IDGenerator, cfg config.ServerApp, logger *logger.Logger) SecureVaultService {
	return &secureVaultService{
		users:               storages.UserRepository,
		profiles:            storages.ProfileRepository,
		vaults:              storages.VaultRepository,
		ids:                 ids,
		verifierHashKey:     cfg.VerifierHashKey,
		proofSignKey:        cfg.TokenSignKey,
		proofIssuer:         cfg.TokenIssuer,
		maxVaultsPerProfile: cfg.MaxVaultsPerProfile,
		now:                 time.Now,
		logger:              logger,
	}
}

func (s *secureVaultService) IsRegistered(ctx context.Context, userID string) (bool, error) {
	_, err := s.users.FindUser(ctx, userID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNoUserWasFound):
		return false, nil
	default:
		return false, fmt.Errorf("user lookup failed: %w", err)
	}
}

// Register creates the account of userID. Returns ErrAlreadyRegistered when
// the account exists.
func (s *secureVaultService) Register(ctx context.Context, userID string, authKey []byte) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" || len(authKey) == 0 {
		log.Error().Str("func", "*secureVaultService.Register").Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	now := s.now().UTC()
	user, err := s.users.CreateUser(ctx, models.User{
		UserID:    userID,
		Verifier:  s.verifier(authKey),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		return models.User{}, ErrAlreadyRegistered
	}
	if err != nil {
		log.Err(err).Str("func", "*secureVaultService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*secureVaultService.Register").Str("user_id", userID).Msg("user registered")
	return user, nil
}

func (s *secureVaultService) ListVaults(ctx context.Context, userID string, authKey []byte) ([]models.RemoteVault, error) {
	if err := s.authenticate(ctx, userID, authKey); err != nil {
		return nil, err
	}

	stored, err := s.vaults.ListVaults(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list vaults: %w", err)
	}

	vaults := make([]models.RemoteVault, 0, len(stored))
	for _, v := range stored {
		vaults = append(vaults, v.Remote())
	}
	return vaults, nil
}

func (s *secureVaultService) ListVaultsMetadata(ctx context.Context, userID string) ([]models.VaultMetadata, error) {
	stored, err := s.vaults.ListVaultsMetadata(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list vaults metadata: %w", err)
	}

	metadata := make([]models.VaultMetadata, 0, len(stored))
	for _, v := range stored {
		metadata = append(metadata, v.Metadata())
	}
	return metadata, nil
}

// CreateVault stores a new vault for the profile named by the ownership
// proof. Version starts at 1.
func (s *secureVaultService) CreateVault(ctx context.Context, userID string, authKey []byte, request models.CreateVaultRequest) (models.VaultMetadata, error) {
	log := logger.FromContext(ctx)

	if err := s.authenticate(ctx, userID, authKey); err != nil {
		return models.VaultMetadata{}, err
	}

	claims, err := utils.ValidateOwnershipProof(request.OwnershipProof, s.proofSignKey, s.proofIssuer)
	if err != nil || claims.Owner != userID {
		log.Warn().Err(err).Str("func", "*secureVaultService.CreateVault").Str("user_id", userID).Msg("ownership proof rejected")
		return models.VaultMetadata{}, ErrInvalidOwnershipProof
	}
	profileID := claims.Subject

	if _, err = s.profiles.FindProfile(ctx, userID, profileID); err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return models.VaultMetadata{}, ErrInvalidOwnershipProof
		}
		return models.VaultMetadata{}, fmt.Errorf("profile lookup: %w", err)
	}

	count, err := s.vaults.CountProfileVaults(ctx, userID, profileID)
	if err != nil {
		return models.VaultMetadata{}, fmt.Errorf("count vaults: %w", err)
	}
	if count >= s.maxVaultsPerProfile {
		log.Info().
			Str("func", "*secureVaultService.CreateVault").
			Str("profile_id", profileID).
			Int("count", count).
			Int("limit", s.maxVaultsPerProfile).
			Msg("vault limit reached")
		return models.VaultMetadata{}, ErrVaultLimitExceeded
	}

	now := s.now().UTC()
	vault, err := s.vaults.CreateVault(ctx, models.StoredVault{
		ID:         s.ids.Generate(),
		UserID:     userID,
		ProfileID:  profileID,
		BlobFormat: request.BlobFormat,
		Blob:       request.Blob,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return models.VaultMetadata{}, fmt.Errorf("create vault: %w", err)
	}

	return vault.Metadata(), nil
}

// UpdateVault replaces the blob of vaultID if request.Version is current.
func (s *secureVaultService) UpdateVault(ctx context.Context, userID string, authKey []byte, vaultID string, request models.UpdateVaultRequest) (models.VaultMetadata, error) {
	if err := s.authenticate(ctx, userID, authKey); err != nil {
		return models.VaultMetadata{}, err
	}

	vault, err := s.vaults.UpdateVault(ctx, models.StoredVault{
		ID:         vaultID,
		UserID:     userID,
		BlobFormat: request.BlobFormat,
		Blob:       request.Blob,
		UpdatedAt:  s.now().UTC(),
	}, request.Version)
	switch {
	case errors.Is(err, store.ErrVersionConflict):
		return models.VaultMetadata{}, ErrVaultVersionConflict
	case errors.Is(err, store.ErrVaultNotFound):
		return models.VaultMetadata{}, ErrVaultNotFound
	case err != nil:
		return models.VaultMetadata{}, fmt.Errorf("update vault: %w", err)
	}

	return vault.Metadata(), nil
}

// DeleteVault removes a vault. Only the identity token is checked.
func (s *secureVaultService) DeleteVault(ctx context.Context, userID, vaultID string) error {
	err := s.vaults.DeleteVault(ctx, userID, vaultID)
	if errors.Is(err, store.ErrVaultNotFound) {
		return ErrVaultNotFound
	}
	if err != nil {
		return fmt.Errorf("delete vault: %w", err)
	}
	return nil
}

// ChangePassword replaces the verifier after checking the current auth key.
func (s *secureVaultService) ChangePassword(ctx context.Context, userID string, authKey []byte, request models.ChangePasswordRequest) error {
	if err := s.authenticate(ctx, userID, authKey); err != nil {
		return err
	}
	if len(request.NewAuthKey) == 0 {
		return ErrInvalidDataProvided
	}

	err := s.users.UpdateVerifier(ctx, userID, s.verifier(request.NewAuthKey), s.now().UTC())
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrNotRegistered
	}
	if err != nil {
		return fmt.Errorf("update verifier: %w", err)
	}
	return nil
}

// Deregister removes the account and all of its vaults.
func (s *secureVaultService) Deregister(ctx context.Context, userID string) (string, error) {
	deleted, err := s.users.DeleteUser(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return "", ErrNotRegistered
	}
	if err != nil {
		return "", fmt.Errorf("delete user: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*secureVaultService.Deregister").
		Str("user_id", userID).
		Int64("vaults", deleted).
		Msg("user deregistered")
	return userID, nil
}

// Reset removes the account and all of its vaults. Resetting an
// unregistered user succeeds.
func (s *secureVaultService) Reset(ctx context.Context, userID string) error {
	_, err := s.users.DeleteUser(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *secureVaultService) authenticate(ctx context.Context, userID string, authKey []byte) error {
	if len(authKey) == 0 {
		return ErrInvalidVaultCredentials
	}

	user, err := s.users.FindUser(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrNotRegistered
	}
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if !s.verifierMatches(user.Verifier, authKey) {
		logger.FromContext(ctx).Warn().
			Str("func", "*secureVaultService.authenticate").
			Str("user_id", userID).
			Msg("wrong vault credentials")
		return ErrInvalidVaultCredentials
	}
	return nil
}

func (s *secureVaultService) verifier(authKey []byte) string {
	return utils.HashString(hex.EncodeToString(authKey), s.verifierHashKey)
}

func (s *secureVaultService) verifierMatches(stored string, authKey []byte) bool {
	return hmac.Equal([]byte(stored), []byte(s.verifier(authKey)))
}
