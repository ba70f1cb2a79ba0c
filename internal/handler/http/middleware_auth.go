// Package http implements the HTTP transport layer of the vault service.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, compression, and
// integrity-checking concerns are all handled at this layer before
// requests are forwarded to the service layer.
package http

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// auth is an HTTP middleware that enforces identity-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the token in the request context with [utils.WithIdentity] before
// delegating to the next handler. The request logger gains a user_id field.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the
// header is absent or malformed, or when the token is expired or invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", token.UserID)
		})
		ctx = log.WithContext(utils.WithIdentity(ctx, token))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "Bearer <token>".
//
// It returns [ErrInvalidAuthorizationHeader] if the scheme is not Bearer or
// the token part is missing, and [ErrEmptyToken] if the token is blank.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) < 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

// vaultAuthKey decodes the auth key carried in the X-Vault-Auth header.
func vaultAuthKey(r *http.Request) ([]byte, error) {
	header := r.Header.Get(models.HeaderVaultAuth)
	if header == "" {
		return nil, ErrMissingVaultAuth
	}

	authKey, err := base64.StdEncoding.DecodeString(header)
	if err != nil || len(authKey) == 0 {
		return nil, ErrInvalidVaultAuth
	}
	return authKey, nil
}

// requestIdentity returns the user id placed in the context by auth and,
// when withAuthKey is set, the vault auth key. On failure it has already
// written the response and ok is false.
func requestIdentity(w http.ResponseWriter, r *http.Request, funcName string, withAuthKey bool) (userID string, authKey []byte, ok bool) {
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found || userID == "" {
		log.Error().Str("func", funcName).Msg("no user id in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return "", nil, false
	}

	if !withAuthKey {
		return userID, nil, true
	}

	authKey, err := vaultAuthKey(r)
	if err != nil {
		log.Warn().Err(err).Str("func", funcName).Send()
		http.Error(w, app.MsgMissingVaultCredentials, http.StatusUnauthorized)
		return "", nil, false
	}
	return userID, authKey, true
}
