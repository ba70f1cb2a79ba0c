package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// Services groups the server side services.
type Services struct {
	AuthService        AuthService
	SecureVaultService SecureVaultService
	PlatformService    PlatformService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService:        NewAuthService(cfg, logger),
		SecureVaultService: NewSecureVaultValidationService().Wrap(NewSecureVaultService(storages, ids, cfg, logger)),
		PlatformService:    NewPlatformService(storages.ProfileRepository, ids, cfg, logger),
		AppInfoService:     appInfo,
	}, nil
}
