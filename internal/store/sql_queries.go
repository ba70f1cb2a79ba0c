package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	usersTable    = "users"
	profilesTable = "profiles"
	vaultsTable   = "vaults"
)

var (
	userColumns    = []string{"user_id", "verifier", "created_at", "updated_at"}
	profileColumns = []string{"profile_id", "user_id", "created_at"}
	vaultColumns   = []string{"vault_id", "user_id", "profile_id", "blob_format", "blob", "version", "created_at", "updated_at"}
	// vault listing without blobs
	vaultMetadataColumns = []string{"vault_id", "user_id", "profile_id", "blob_format", "version", "created_at", "updated_at"}
)

// users

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Verifier, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdateVerifierQuery(b sq.StatementBuilderType, userID, verifier string, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("verifier", verifier).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// profiles

func buildInsertProfileQuery(b sq.StatementBuilderType, profile models.Profile, userID string) (string, []any, error) {
	return b.Insert(profilesTable).
		Columns(profileColumns...).
		Values(profile.ID, userID, profile.CreatedAt).
		ToSql()
}

func buildSelectProfilesQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(profileColumns...).
		From(profilesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "profile_id").
		ToSql()
}

func buildSelectProfileQuery(b sq.StatementBuilderType, userID, profileID string) (string, []any, error) {
	return b.Select(profileColumns...).
		From(profilesTable).
		Where(sq.Eq{"user_id": userID, "profile_id": profileID}).
		ToSql()
}

// vaults

func buildInsertVaultQuery(b sq.StatementBuilderType, vault models.StoredVault) (string, []any, error) {
	return b.Insert(vaultsTable).
		Columns(vaultColumns...).
		Values(vault.ID, vault.UserID, vault.ProfileID, vault.BlobFormat, vault.Blob, vault.Version, vault.CreatedAt, vault.UpdatedAt).
		ToSql()
}

func buildSelectVaultsQuery(b sq.StatementBuilderType, userID string, withBlob bool) (string, []any, error) {
	columns := vaultMetadataColumns
	if withBlob {
		columns = vaultColumns
	}
	return b.Select(columns...).
		From(vaultsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "vault_id").
		ToSql()
}

func buildSelectVaultQuery(b sq.StatementBuilderType, userID, vaultID string) (string, []any, error) {
	return b.Select(vaultColumns...).
		From(vaultsTable).
		Where(sq.Eq{"user_id": userID, "vault_id": vaultID}).
		ToSql()
}

// buildUpdateVaultQuery bumps the version only when the stored version still
// equals expectedVersion.
func buildUpdateVaultQuery(b sq.StatementBuilderType, vault models.StoredVault, expectedVersion int) (string, []any, error) {
	return b.Update(vaultsTable).
		Set("blob_format", vault.BlobFormat).
		Set("blob", vault.Blob).
		Set("version", expectedVersion+1).
		Set("updated_at", vault.UpdatedAt).
		Where(sq.Eq{"user_id": vault.UserID, "vault_id": vault.ID, "version": expectedVersion}).
		ToSql()
}

func buildDeleteVaultQuery(b sq.StatementBuilderType, userID, vaultID string) (string, []any, error) {
	return b.Delete(vaultsTable).
		Where(sq.Eq{"user_id": userID, "vault_id": vaultID}).
		ToSql()
}

func buildDeleteUserVaultsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Delete(vaultsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildCountProfileVaultsQuery(b sq.StatementBuilderType, userID, profileID string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(vaultsTable).
		Where(sq.Eq{"user_id": userID, "profile_id": profileID}).
		ToSql()
}
