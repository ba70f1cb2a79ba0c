package adapter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// TokenIdentity is the signed-in user as described by an identity token. It
// serves as the [TokenSource] of the HTTP clients, as the user client of the
// password manager and as the identity that namespaces the key store.
//
// The token is not verified here; the vault service verifies it on every
// request.
type TokenIdentity struct {
	token models.Token
}

// NewTokenIdentity parses raw. It fails with [ErrEmptyToken] for a blank
// token and when the token has no subject.
func NewTokenIdentity(raw string) (*TokenIdentity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyToken
	}

	token, err := utils.ParseUnverifiedJWTToken(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid identity token: %w", err)
	}
	return &TokenIdentity{token: token}, nil
}

// Token implements [TokenSource].
func (t *TokenIdentity) Token() string {
	return t.token.String()
}

// GetSubject returns the user id.
func (t *TokenIdentity) GetSubject() (string, error) {
	return t.token.UserID, nil
}

// GetUserName returns the username claim, or the subject when the token has
// none.
func (t *TokenIdentity) GetUserName() (string, error) {
	return t.token.Username, nil
}
