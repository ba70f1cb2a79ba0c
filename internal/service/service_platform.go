package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// platformService manages profiles, signs ownership proofs and reports the
// entitlements granted to every user.
type platformService struct {
	profiles store.ProfileRepository
	ids      IDGenerator

	proofSignKey        string
	proofIssuer         string
	proofDuration       time.Duration
	maxVaultsPerProfile int

	now    func() time.Time
	logger *logger.Logger
}

// NewPlatformService constructs a PlatformService. Proofs are signed with
// the token key and issuer of cfg.
func NewPlatformService(profiles store.ProfileRepository, ids IDGenerator, cfg config.ServerApp, logger *logger.Logger) PlatformService {
	return &platformService{
		profiles:            profiles,
		ids:                 ids,
		proofSignKey:        cfg.TokenSignKey,
		proofIssuer:         cfg.TokenIssuer,
		proofDuration:       cfg.ProofDuration,
		maxVaultsPerProfile: cfg.MaxVaultsPerProfile,
		now:                 time.Now,
		logger:              logger,
	}
}

func (s *platformService) ListProfiles(ctx context.Context, userID string) ([]models.Profile, error) {
	profiles, err := s.profiles.ListProfiles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

func (s *platformService) CreateProfile(ctx context.Context, userID string) (models.Profile, error) {
	profile, err := s.profiles.CreateProfile(ctx, userID, models.Profile{
		ID:        s.ids.Generate(),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return models.Profile{}, fmt.Errorf("create profile: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*platformService.CreateProfile").
		Str("user_id", userID).
		Str("profile_id", profile.ID).
		Msg("profile created")
	return profile, nil
}

// IssueOwnershipProof signs a proof that userID owns profileID. Returns
// ErrProfileNotFound for a profile of another user.
func (s *platformService) IssueOwnershipProof(ctx context.Context, userID, profileID string) (string, error) {
	if _, err := s.profiles.FindProfile(ctx, userID, profileID); err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return "", ErrProfileNotFound
		}
		return "", fmt.Errorf("profile lookup: %w", err)
	}

	proof, err := utils.GenerateOwnershipProof(s.proofIssuer, profileID, userID, s.proofDuration, s.proofSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return proof, nil
}

// GetEntitlements returns the same quota to every user.
func (s *platformService) GetEntitlements(ctx context.Context, userID string) ([]models.Entitlement, error) {
	return []models.Entitlement{
		{Name: models.EntitlementMaxVaultsPerProfile, Value: s.maxVaultsPerProfile},
	}, nil
}
