// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the vault service HTTP API.
//
// [VaultClient] talks to the secure vault store and [PlatformClient] to the
// profile, ownership-proof and entitlement endpoints. Both authenticate with
// the identity token of a [TokenSource]; [TokenIdentity] is the token source
// built from a signed identity token.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrVersionConflict] for a stale vault, [ErrUnauthorized]
// for 401).
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TokenSource supplies the identity token attached as a bearer token to
// every request.
type TokenSource interface {
	// Token returns the compact identity token, or an empty string when the
	// user is signed out.
	Token() string
}
