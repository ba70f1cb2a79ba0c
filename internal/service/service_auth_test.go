package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

func newTestAuthService() AuthService {
	return NewAuthService(config.ServerApp{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthService()

	token, err := svc.CreateToken(context.Background(), "alice", "alice@example.com")
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.UserID)
	assert.Equal(t, "alice@example.com", parsed.Username)
}

func TestAuthService_CreateToken_EmptyUser(t *testing.T) {
	_, err := newTestAuthService().CreateToken(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	foreign, err := utils.GenerateJWTToken("someone-else", "alice", "", time.Hour, testSignKey)
	require.NoError(t, err)
	wrongKey, err := utils.GenerateJWTToken(testIssuer, "alice", "", time.Hour, "other-key")
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken(testIssuer, "alice", "", -time.Minute, testSignKey)
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "garbage",
		"wrong issuer": foreign.SignedString,
		"wrong key":    wrongKey.SignedString,
		"expired":      expired.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := newTestAuthService().ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
