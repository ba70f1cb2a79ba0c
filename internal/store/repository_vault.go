// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultRepository is the SQL implementation of [VaultRepository] over the
// "vaults" table. Every query is scoped by user_id so one user can never
// observe another user's vault.
type vaultRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVaultRepository constructs a [VaultRepository].
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVault(row rowScanner) (models.StoredVault, error) {
	var v models.StoredVault
	err := row.Scan(&v.ID, &v.UserID, &v.ProfileID, &v.BlobFormat, &v.Blob, &v.Version, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func scanVaultMetadata(row rowScanner) (models.StoredVault, error) {
	var v models.StoredVault
	err := row.Scan(&v.ID, &v.UserID, &v.ProfileID, &v.BlobFormat, &v.Version, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func (r *vaultRepository) CreateVault(ctx context.Context, vault models.StoredVault) (models.StoredVault, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertVaultQuery(r.db.builder(), vault)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateVault").Msg("error building query")
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateVault").Msg("error inserting vault")
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*vaultRepository.CreateVault").Str("vault_id", vault.ID).Msg("vault created")
	return vault, nil
}

func (r *vaultRepository) ListVaults(ctx context.Context, userID string) ([]models.StoredVault, error) {
	return r.list(ctx, userID, true)
}

func (r *vaultRepository) ListVaultsMetadata(ctx context.Context, userID string) ([]models.StoredVault, error) {
	return r.list(ctx, userID, false)
}

func (r *vaultRepository) list(ctx context.Context, userID string, withBlob bool) ([]models.StoredVault, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultsQuery(r.db.builder(), userID, withBlob)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.list").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.list").Msg("error selecting vaults")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	scan := scanVaultMetadata
	if withBlob {
		scan = scanVault
	}

	vaults := make([]models.StoredVault, 0)
	for rows.Next() {
		vault, err := scan(rows)
		if err != nil {
			log.Err(err).Str("func", "*vaultRepository.list").Msg("error scanning vault")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		vaults = append(vaults, vault)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return vaults, nil
}

func (r *vaultRepository) GetVault(ctx context.Context, userID, vaultID string) (models.StoredVault, error) {
	return r.getVault(ctx, r.db, userID, vaultID)
}

// queryRower is satisfied by *DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *vaultRepository) getVault(ctx context.Context, q queryRower, userID, vaultID string) (models.StoredVault, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultQuery(r.db.builder(), userID, vaultID)
	if err != nil {
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	vault, err := scanVault(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredVault{}, ErrVaultNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.getVault").Msg("error scanning vault")
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return vault, nil
}

// UpdateVault runs the versioned update and re-reads the row in the same
// transaction. When no row was updated the re-read tells a stale version
// apart from a missing vault.
func (r *vaultRepository) UpdateVault(ctx context.Context, vault models.StoredVault, expectedVersion int) (models.StoredVault, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateVaultQuery(r.db.builder(), vault, expectedVersion)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.UpdateVault").Msg("error building query")
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.UpdateVault").Msg("failed to begin transaction")
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.UpdateVault").Msg("error updating vault")
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	current, err := r.getVault(ctx, tx, vault.UserID, vault.ID)
	if err != nil {
		return models.StoredVault{}, err
	}
	if updated == 0 {
		log.Warn().
			Str("func", "*vaultRepository.UpdateVault").
			Str("vault_id", vault.ID).
			Int("db_version", current.Version).
			Int("provided_version", expectedVersion).
			Msg("optimistic lock failed: version mismatch on update")
		return models.StoredVault{}, ErrVersionConflict
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*vaultRepository.UpdateVault").Msg("failed to commit transaction")
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return current, nil
}

func (r *vaultRepository) DeleteVault(ctx context.Context, userID, vaultID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteVaultQuery(r.db.builder(), userID, vaultID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.DeleteVault").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.DeleteVault").Msg("error deleting vault")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrVaultNotFound
	}

	return nil
}

func (r *vaultRepository) CountProfileVaults(ctx context.Context, userID, profileID string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountProfileVaultsQuery(r.db.builder(), userID, profileID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*vaultRepository.CountProfileVaults").Msg("error counting vaults")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}
