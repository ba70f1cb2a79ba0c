package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] over the "profiles"
// table.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *profileRepository) CreateProfile(ctx context.Context, userID string, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProfileQuery(r.db.builder(), profile, userID)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("error building query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("error inserting profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return profile, nil
}

func (r *profileRepository) ListProfiles(ctx context.Context, userID string) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfilesQuery(r.db.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.ListProfiles").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.ListProfiles").Msg("error selecting profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0)
	for rows.Next() {
		var (
			profile models.Profile
			owner   string
		)
		if err = rows.Scan(&profile.ID, &owner, &profile.CreatedAt); err != nil {
			log.Err(err).Str("func", "*profileRepository.ListProfiles").Msg("error scanning profile")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		profiles = append(profiles, profile)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return profiles, nil
}

func (r *profileRepository) FindProfile(ctx context.Context, userID, profileID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfileQuery(r.db.builder(), userID, profileID)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfile").Msg("error building query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		profile models.Profile
		owner   string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&profile.ID, &owner, &profile.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindProfile").Msg("error scanning profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}
