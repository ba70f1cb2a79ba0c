package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestProfileRepo(t *testing.T, driver string) (*profileRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, driver)
	return &profileRepository{db: db, logger: logger.Nop()}, mock
}

func TestProfileRepository_CreateProfile(t *testing.T) {
	repo, mock := newTestProfileRepo(t, config.DriverSQLite)
	now := time.Now().UTC()
	profile := models.Profile{ID: "profile-1", CreatedAt: now}

	mock.ExpectExec("INSERT INTO profiles \\(profile_id,user_id,created_at\\) VALUES \\(\\?,\\?,\\?\\)").
		WithArgs("profile-1", "user-1", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := repo.CreateProfile(context.Background(), "user-1", profile)
	require.NoError(t, err)
	assert.Equal(t, profile, created)
}

func TestProfileRepository_ListProfiles(t *testing.T) {
	repo, mock := newTestProfileRepo(t, config.DriverPostgres)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT profile_id, user_id, created_at FROM profiles WHERE user_id = \\$1").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow("profile-1", "user-1", now).
			AddRow("profile-2", "user-1", now))

	profiles, err := repo.ListProfiles(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "profile-2", profiles[1].ID)
}

func TestProfileRepository_ListProfiles_QueryError(t *testing.T) {
	repo, mock := newTestProfileRepo(t, config.DriverPostgres)

	mock.ExpectQuery("SELECT (.+) FROM profiles").WillReturnError(errors.New("boom"))

	_, err := repo.ListProfiles(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestProfileRepository_FindProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestProfileRepo(t, config.DriverPostgres)
		now := time.Now().UTC()
		mock.ExpectQuery("SELECT (.+) FROM profiles WHERE profile_id = \\$1 AND user_id = \\$2").
			WithArgs("profile-1", "user-1").
			WillReturnRows(sqlmock.NewRows(profileColumns).AddRow("profile-1", "user-1", now))

		profile, err := repo.FindProfile(context.Background(), "user-1", "profile-1")
		require.NoError(t, err)
		assert.Equal(t, "profile-1", profile.ID)
	})

	t.Run("other user", func(t *testing.T) {
		repo, mock := newTestProfileRepo(t, config.DriverPostgres)
		mock.ExpectQuery("SELECT (.+) FROM profiles").
			WithArgs("profile-1", "intruder").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindProfile(context.Background(), "intruder", "profile-1")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}
