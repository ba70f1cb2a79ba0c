package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// SecureVaultServiceWrapper decorates a SecureVaultService, e.g. with
// request validation.
type SecureVaultServiceWrapper interface {
	Wrap(SecureVaultService) SecureVaultService
}

// SecureVaultValidationService rejects malformed requests before they reach
// the wrapped SecureVaultService. Errors wrap ErrInvalidDataProvided.
type SecureVaultValidationService struct {
	inner     SecureVaultService
	validator validators.Validator
}

func NewSecureVaultValidationService() SecureVaultServiceWrapper {
	return &SecureVaultValidationService{
		validator: validators.NewVaultRequestValidator(),
	}
}

func (v *SecureVaultValidationService) Wrap(wrapped SecureVaultService) SecureVaultService {
	v.inner = wrapped
	return v
}

func (v *SecureVaultValidationService) IsRegistered(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, ErrInvalidDataProvided
	}
	return v.inner.IsRegistered(ctx, userID)
}

func (v *SecureVaultValidationService) Register(ctx context.Context, userID string, authKey []byte) (models.User, error) {
	if err := v.validateCaller(userID, authKey); err != nil {
		return models.User{}, err
	}
	return v.inner.Register(ctx, userID, authKey)
}

func (v *SecureVaultValidationService) ListVaults(ctx context.Context, userID string, authKey []byte) ([]models.RemoteVault, error) {
	if userID == "" {
		return nil, ErrInvalidDataProvided
	}
	return v.inner.ListVaults(ctx, userID, authKey)
}

func (v *SecureVaultValidationService) ListVaultsMetadata(ctx context.Context, userID string) ([]models.VaultMetadata, error) {
	if userID == "" {
		return nil, ErrInvalidDataProvided
	}
	return v.inner.ListVaultsMetadata(ctx, userID)
}

func (v *SecureVaultValidationService) CreateVault(ctx context.Context, userID string, authKey []byte, request models.CreateVaultRequest) (models.VaultMetadata, error) {
	if userID == "" {
		return models.VaultMetadata{}, ErrInvalidDataProvided
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.VaultMetadata{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateVault(ctx, userID, authKey, request)
}

func (v *SecureVaultValidationService) UpdateVault(ctx context.Context, userID string, authKey []byte, vaultID string, request models.UpdateVaultRequest) (models.VaultMetadata, error) {
	if userID == "" || vaultID == "" {
		return models.VaultMetadata{}, ErrInvalidDataProvided
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.VaultMetadata{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateVault(ctx, userID, authKey, vaultID, request)
}

func (v *SecureVaultValidationService) DeleteVault(ctx context.Context, userID, vaultID string) error {
	if userID == "" || vaultID == "" {
		return ErrInvalidDataProvided
	}
	return v.inner.DeleteVault(ctx, userID, vaultID)
}

func (v *SecureVaultValidationService) ChangePassword(ctx context.Context, userID string, authKey []byte, request models.ChangePasswordRequest) error {
	if userID == "" {
		return ErrInvalidDataProvided
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.ChangePassword(ctx, userID, authKey, request)
}

func (v *SecureVaultValidationService) Deregister(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", ErrInvalidDataProvided
	}
	return v.inner.Deregister(ctx, userID)
}

func (v *SecureVaultValidationService) Reset(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrInvalidDataProvided
	}
	return v.inner.Reset(ctx, userID)
}

func (v *SecureVaultValidationService) validateCaller(userID string, authKey []byte) error {
	if userID == "" {
		return ErrInvalidDataProvided
	}
	if err := validators.ValidateAuthKey(authKey); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
