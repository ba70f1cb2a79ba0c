package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// OwnershipProofAudience is the "aud" claim of ownership proofs consumed by
// the vault service.
const OwnershipProofAudience = "sudoplatform.secure-vault.vault"

// IdentityClaims is the claim set of an identity token. The subject is the
// user id; Username is used to namespace keys on the device and falls back
// to the subject when empty.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
}

// OwnershipClaims is the claim set of an ownership proof: the subject is the
// profile id and Owner is the user that owns the profile.
type OwnershipClaims struct {
	jwt.RegisteredClaims
	Owner string `json:"owner"`
}

// Token wraps a signed JWT together with the identity it was issued for.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject of the token.
	UserID string `json:"-"`

	// Username is the username claim, or the subject when the claim is absent.
	Username string `json:"-"`
}

// GetUserID returns the subject claim of the wrapped token.
func (t *Token) GetUserID() (string, error) {
	if t.Token == nil {
		return "", errors.New("token is not parsed")
	}
	sub, err := t.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
