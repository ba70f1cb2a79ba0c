package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// PlatformClient is the HTTP client of the profile, ownership-proof and
// entitlement endpoints.
type PlatformClient struct {
	*restClient
}

// NewPlatformClient constructs a [PlatformClient] for the service at
// adapterCfg.HTTPAddress.
func NewPlatformClient(adapterCfg config.ClientAdapter, appCfg config.ClientApp, tokens TokenSource, log *logger.Logger) (*PlatformClient, error) {
	rc, err := newRestClient(adapterCfg, appCfg, tokens, log)
	if err != nil {
		return nil, err
	}
	return &PlatformClient{restClient: rc}, nil
}

// GetOwnershipProof returns a signed proof that the user owns profileID.
// POST /api/profiles/{id}/ownership-proof.
func (p *PlatformClient) GetOwnershipProof(ctx context.Context, profileID string) (string, error) {
	var proof models.OwnershipProofResponse

	resp, err := p.request(ctx).
		SetPathParam("id", profileID).
		SetResult(&proof).
		Post("/api/profiles/{id}/ownership-proof")
	if err != nil {
		return "", fmt.Errorf("ownership proof request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return proof.Token, nil
}

// GetEntitlements returns the quotas granted to the user.
// GET /api/entitlements.
func (p *PlatformClient) GetEntitlements(ctx context.Context) ([]models.Entitlement, error) {
	var entitlements []models.Entitlement

	resp, err := p.request(ctx).
		SetResult(&entitlements).
		Get("/api/entitlements")
	if err != nil {
		return nil, fmt.Errorf("entitlements request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return entitlements, nil
}

// ListProfiles returns the profiles of the user. GET /api/profiles.
func (p *PlatformClient) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile

	resp, err := p.request(ctx).
		SetResult(&profiles).
		Get("/api/profiles")
	if err != nil {
		return nil, fmt.Errorf("list profiles request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return profiles, nil
}

// CreateProfile creates a profile for the user. POST /api/profiles.
func (p *PlatformClient) CreateProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	resp, err := p.request(ctx).
		SetResult(&profile).
		Post("/api/profiles")
	if err != nil {
		return models.Profile{}, fmt.Errorf("create profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// GetServerInfo describes the vault service. GET /api/version.
func (p *PlatformClient) GetServerInfo(ctx context.Context) (models.ServerInfo, error) {
	var info models.ServerInfo

	resp, err := p.request(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.ServerInfo{}, fmt.Errorf("server info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerInfo{}, err
	}
	return info, nil
}
