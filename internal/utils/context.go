// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// identityCtxKey holds the verified identity token of the caller.
var identityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the verified identity token.
// Tokens without a user id are not stored.
func WithIdentity(ctx context.Context, token models.Token) context.Context {
	if token.UserID == "" {
		return ctx
	}
	return context.WithValue(ctx, identityCtxKey, token)
}

// IdentityFromContext returns the identity stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(identityCtxKey).(models.Token)
	return token, ok
}

// GetUserIDFromContext returns the user id of the identity stored by
// WithIdentity. ok is false when there is none.
//
//	userID, ok := utils.GetUserIDFromContext(r.Context())
//	if !ok {
//	    // unauthenticated request
//	}
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	token, ok := IdentityFromContext(ctx)
	return token.UserID, ok
}
