package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testToken  = "good-token"
	testUserID = "user-1"
)

var testAuthKey = bytes.Repeat([]byte{7}, 32)

type testMocks struct {
	auth     *mock.MockAuthService
	vaults   *mock.MockSecureVaultService
	platform *mock.MockPlatformService
	appInfo  *mock.MockAppInfoService
}

// newTestHandler builds a Handler backed by gomock services. testToken is
// accepted for testUserID; any other token is rejected.
func newTestHandler(t *testing.T, hashKey string) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		auth:     mock.NewMockAuthService(ctrl),
		vaults:   mock.NewMockSecureVaultService(ctrl),
		platform: mock.NewMockPlatformService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: testUserID, SignedString: testToken}, nil).AnyTimes()
	m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Not(testToken)).
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).AnyTimes()

	h := NewHandler(&service.Services{
		AuthService:        m.auth,
		SecureVaultService: m.vaults,
		PlatformService:    m.platform,
		AppInfoService:     m.appInfo,
	}, hashKey, logger.Nop())
	return h, m
}

type testRequest struct {
	method  string
	path    string
	body    any
	token   string
	authKey []byte
	headers map[string]string
}

// serve runs req through the full router.
func serve(t *testing.T, h *Handler, req testRequest) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if req.body != nil {
		switch b := req.body.(type) {
		case []byte:
			body = bytes.NewReader(b)
		case string:
			body = bytes.NewReader([]byte(b))
		default:
			payload, err := json.Marshal(b)
			require.NoError(t, err)
			body = bytes.NewReader(payload)
		}
	}

	r := httptest.NewRequest(req.method, req.path, body)
	if req.token != "" {
		r.Header.Set("Authorization", "Bearer "+req.token)
	}
	if req.authKey != nil {
		r.Header.Set(models.HeaderVaultAuth, base64.StdEncoding.EncodeToString(req.authKey))
	}
	for k, v := range req.headers {
		r.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, r)
	return rr
}

func bodyText(rr *httptest.ResponseRecorder) string {
	return string(bytes.TrimSpace(rr.Body.Bytes()))
}
