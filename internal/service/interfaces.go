package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SecureVaultService is the server side of the vault store. authKey is the
// key the client derives from the master password and the key deriving key;
// only a keyed hash of it is ever stored.
type SecureVaultService interface {
	IsRegistered(ctx context.Context, userID string) (bool, error)
	Register(ctx context.Context, userID string, authKey []byte) (models.User, error)

	ListVaults(ctx context.Context, userID string, authKey []byte) ([]models.RemoteVault, error)
	ListVaultsMetadata(ctx context.Context, userID string) ([]models.VaultMetadata, error)
	CreateVault(ctx context.Context, userID string, authKey []byte, request models.CreateVaultRequest) (models.VaultMetadata, error)
	UpdateVault(ctx context.Context, userID string, authKey []byte, vaultID string, request models.UpdateVaultRequest) (models.VaultMetadata, error)
	DeleteVault(ctx context.Context, userID, vaultID string) error

	ChangePassword(ctx context.Context, userID string, authKey []byte, request models.ChangePasswordRequest) error
	Deregister(ctx context.Context, userID string) (string, error)
	Reset(ctx context.Context, userID string) error
}

// PlatformService serves the profile and entitlement side of the platform.
type PlatformService interface {
	ListProfiles(ctx context.Context, userID string) ([]models.Profile, error)
	CreateProfile(ctx context.Context, userID string) (models.Profile, error)
	IssueOwnershipProof(ctx context.Context, userID, profileID string) (string, error)
	GetEntitlements(ctx context.Context, userID string) ([]models.Entitlement, error)
}

// AuthService issues and verifies identity tokens.
type AuthService interface {
	CreateToken(ctx context.Context, userID, username string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService describes the running service to its clients.
type AppInfoService interface {
	GetServerInfo(ctx context.Context) models.ServerInfo
}
