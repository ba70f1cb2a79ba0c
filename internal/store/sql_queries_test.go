// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/models"
)

func Test_statementBuilder_Placeholders(t *testing.T) {
	tests := []struct {
		name        string
		driver      string
		placeholder string
	}{
		{name: "postgres uses dollar", driver: config.DriverPostgres, placeholder: "$1"},
		{name: "sqlite uses question mark", driver: config.DriverSQLite, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectUserQuery(statementBuilder(tt.driver), "user-1")
			require.NoError(t, err)
			assert.Contains(t, query, tt.placeholder)
			assert.Equal(t, []any{"user-1"}, args)
		})
	}
}

func Test_buildUpdateVaultQuery_ChecksVersion(t *testing.T) {
	v := models.StoredVault{ID: "vault-1", UserID: "user-1", BlobFormat: "f", Blob: []byte("b"), UpdatedAt: time.Unix(0, 0)}

	query, args, err := buildUpdateVaultQuery(statementBuilder(config.DriverPostgres), v, 5)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update vaults")
	require.Contains(t, q, "version = $3")
	require.Contains(t, q, "version = $7")

	// the new version is expected+1, the filter uses the expected one
	assert.Equal(t, 6, args[2])
	assert.Equal(t, 5, args[6])
	assert.Equal(t, "user-1", args[4])
	assert.Equal(t, "vault-1", args[5])
}

func Test_buildSelectVaultsQuery_BlobColumn(t *testing.T) {
	b := statementBuilder(config.DriverPostgres)

	withBlob, _, err := buildSelectVaultsQuery(b, "user-1", true)
	require.NoError(t, err)
	assert.Contains(t, withBlob, "blob,")

	metadata, _, err := buildSelectVaultsQuery(b, "user-1", false)
	require.NoError(t, err)
	assert.NotContains(t, metadata, "blob,")
	assert.Contains(t, metadata, "blob_format")
}

func Test_buildCountProfileVaultsQuery(t *testing.T) {
	query, args, err := buildCountProfileVaultsQuery(statementBuilder(config.DriverSQLite), "user-1", "profile-1")
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM vaults WHERE profile_id = ? AND user_id = ?", query)
	assert.Equal(t, []any{"profile-1", "user-1"}, args)
}

func Test_buildInsertQueries_ColumnOrder(t *testing.T) {
	b := statementBuilder(config.DriverPostgres)
	now := time.Now()

	query, args, err := buildInsertUserQuery(b, models.User{UserID: "u", Verifier: "v", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (user_id,verifier,created_at,updated_at) VALUES ($1,$2,$3,$4)", query)
	assert.Equal(t, []any{"u", "v", now, now}, args)

	query, args, err = buildInsertProfileQuery(b, models.Profile{ID: "p", CreatedAt: now}, "u")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO profiles (profile_id,user_id,created_at) VALUES ($1,$2,$3)", query)
	assert.Equal(t, []any{"p", "u", now}, args)
}
