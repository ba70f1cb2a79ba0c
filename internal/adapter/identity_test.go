package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

func TestNewTokenIdentity(t *testing.T) {
	token, err := utils.GenerateJWTToken("identity", "user-1", "alice", time.Hour, "key")
	require.NoError(t, err)

	identity, err := NewTokenIdentity("  " + token.SignedString + "\n")
	require.NoError(t, err)

	assert.Equal(t, token.SignedString, identity.Token())

	subject, err := identity.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)

	name, err := identity.GetUserName()
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
}

func TestNewTokenIdentity_UsernameFallsBackToSubject(t *testing.T) {
	token, err := utils.GenerateJWTToken("identity", "user-2", "", time.Hour, "key")
	require.NoError(t, err)

	identity, err := NewTokenIdentity(token.SignedString)
	require.NoError(t, err)

	name, err := identity.GetUserName()
	require.NoError(t, err)
	assert.Equal(t, "user-2", name)
}

func TestNewTokenIdentity_Invalid(t *testing.T) {
	_, err := NewTokenIdentity("   ")
	assert.ErrorIs(t, err, ErrEmptyToken)

	_, err = NewTokenIdentity("not-a-jwt")
	assert.Error(t, err)
}
