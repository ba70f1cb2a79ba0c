// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the request authentication helpers. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme or carries no token part.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrMissingVaultAuth is returned when a request that must prove
	// knowledge of the master password has no X-Vault-Auth header.
	ErrMissingVaultAuth = errors.New("empty `X-Vault-Auth` header")

	// ErrInvalidVaultAuth is returned when X-Vault-Auth is not valid base64.
	ErrInvalidVaultAuth = errors.New("invalid `X-Vault-Auth` header")
)
