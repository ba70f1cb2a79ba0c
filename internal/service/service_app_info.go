package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/models"
)

type appInfoService struct {
	info models.ServerInfo
}

// NewAppInfoService snapshots the parts of cfg a client may learn before
// signing in. cfg must carry a version.
func NewAppInfoService(cfg config.ServerApp) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.ServerInfo{
			Version:             cfg.Version,
			IntegrityCheck:      cfg.HashKey != "",
			MaxVaultsPerProfile: cfg.MaxVaultsPerProfile,
		},
	}, nil
}

func (s *appInfoService) GetServerInfo(ctx context.Context) models.ServerInfo {
	return s.info
}
