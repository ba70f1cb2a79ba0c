package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestNewHandlers(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.ServerApp{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

// A body whose HashSHA256 header does not match is rejected before any
// vault service is reached.
func TestNewHandlers_HashKeyEnablesIntegrityCheck(t *testing.T) {
	appCfg := config.ServerApp{
		HashKey:       "secret",
		TokenSignKey:  "sign-key",
		TokenIssuer:   "issuer",
		TokenDuration: time.Minute,
	}
	auth := service.NewAuthService(appCfg, logger.Nop())
	token, err := auth.CreateToken(context.Background(), "user-1", "alice")
	require.NoError(t, err)

	h, err := NewHandlers(&service.Services{AuthService: auth}, appCfg, logger.Nop())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/vault/password", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer "+token.SignedString)
	req.Header.Set(models.HeaderBodyHash, "00")
	rr := httptest.NewRecorder()
	h.HTTP.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgIntegrityCheckFailed, strings.TrimSpace(rr.Body.String()))
}

func TestNewHandlers_NoServices(t *testing.T) {
	h, err := NewHandlers(nil, config.ServerApp{}, logger.Nop())

	assert.ErrorIs(t, err, ErrNoServices)
	assert.Nil(t, h)
}
