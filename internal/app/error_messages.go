// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the vault
// service handlers and by the client adapter that reads their responses.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The client adapter matches some of them to tell apart
// failures that share a status code, so the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when an identity token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when an identity token is either
	// expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires the caller's
	// subject but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgMissingVaultCredentials is returned when a request that must prove
	// knowledge of the master password carries no X-Vault-Auth header.
	MsgMissingVaultCredentials = "missing vault credentials"

	// MsgInvalidVaultCredentials is returned when the auth key derived from
	// the master password and the key deriving key does not match.
	MsgInvalidVaultCredentials = "invalid vault credentials"

	// MsgNotRegistered is returned when the caller has no vault service
	// account.
	MsgNotRegistered = "user is not registered"

	// MsgAlreadyRegistered is returned when a registration is attempted by a
	// user that already has an account.
	MsgAlreadyRegistered = "user is already registered"

	// MsgAccessDenied is returned when the caller attempts to access or
	// modify a vault or profile that belongs to a different user.
	MsgAccessDenied = "access denied"

	// MsgVaultNotFound is returned when a vault id does not exist for the
	// caller.
	MsgVaultNotFound = "vault not found"

	// MsgProfileNotFound is returned when a profile id does not exist for the
	// caller.
	MsgProfileNotFound = "profile not found"

	// MsgInvalidOwnershipProof is returned when a vault is created with a
	// proof that is expired, forged, or issued for another user.
	MsgInvalidOwnershipProof = "invalid ownership proof"

	// MsgVaultLimitExceeded is returned when creating a vault would exceed
	// the vaults-per-profile entitlement.
	MsgVaultLimitExceeded = "vault limit exceeded"

	// MsgVersionConflict is returned when an optimistic-locking check fails:
	// the version supplied by the client no longer matches the stored one.
	// The client should unlock again before retrying.
	MsgVersionConflict = "version conflict"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"
)
