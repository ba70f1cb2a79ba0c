// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// ErrorType classifies every error surfaced by the password manager.
type ErrorType int

const (
	// Unknown is the fallback for errors that fit no other type.
	Unknown ErrorType = iota

	// VersionMismatch means the vault was changed remotely since it was last
	// fetched. The caller should refetch and reconcile before retrying.
	VersionMismatch

	// NotAuthorized means the remote store rejected the key deriving key or
	// the master password.
	NotAuthorized

	// InvalidVault means the vault data is corrupt, or the vault or item id
	// is unknown.
	InvalidVault

	// VaultLocked means the operation needs an unlocked password manager.
	VaultLocked

	// InvalidPasswordOrMissingSecretCode means unlock had no key deriving key
	// to try: none is stored locally and no usable secret code was given.
	InvalidPasswordOrMissingSecretCode

	// InvalidFormat means an input was malformed, such as a non UTF-8 value
	// or a truncated envelope.
	InvalidFormat

	// Security means a key store operation failed.
	Security

	// RemoteServiceError wraps any failure reported by the remote vault store.
	RemoteServiceError

	// Internal means an unexpected local failure.
	Internal
)

var errorTypeNames = map[ErrorType]string{
	Unknown:                            "unknown",
	VersionMismatch:                    "version mismatch",
	NotAuthorized:                      "not authorized",
	InvalidVault:                       "invalid vault",
	VaultLocked:                        "vault locked",
	InvalidPasswordOrMissingSecretCode: "invalid password or missing secret code",
	InvalidFormat:                      "invalid format",
	Security:                           "security",
	RemoteServiceError:                 "secure vault service",
	Internal:                           "internal",
}

func (t ErrorType) String() string {
	if name, ok := errorTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ErrorType(%d)", int(t))
}

// PasswordManagerError is the single error type returned by [PasswordManager]
// operations. Err, when set, is the underlying cause.
type PasswordManagerError struct {
	Type ErrorType
	Err  error
}

func (e *PasswordManagerError) Error() string {
	if e.Err == nil {
		return e.Type.String()
	}
	return e.Type.String() + ": " + e.Err.Error()
}

func (e *PasswordManagerError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a bare sentinel of the same type, so that
// errors.Is(err, ErrVaultLocked) matches any vault-locked error regardless of
// its cause.
func (e *PasswordManagerError) Is(target error) bool {
	t, ok := target.(*PasswordManagerError)
	if !ok || t.Err != nil {
		return false
	}
	return t.Type == e.Type
}

// Sentinels for use with errors.Is.
var (
	ErrVersionMismatch                    = &PasswordManagerError{Type: VersionMismatch}
	ErrNotAuthorized                      = &PasswordManagerError{Type: NotAuthorized}
	ErrInvalidVault                       = &PasswordManagerError{Type: InvalidVault}
	ErrVaultLocked                        = &PasswordManagerError{Type: VaultLocked}
	ErrInvalidPasswordOrMissingSecretCode = &PasswordManagerError{Type: InvalidPasswordOrMissingSecretCode}
	ErrInvalidFormat                      = &PasswordManagerError{Type: InvalidFormat}
	ErrSecurity                           = &PasswordManagerError{Type: Security}
	ErrSecureVaultService                 = &PasswordManagerError{Type: RemoteServiceError}
	ErrInternal                           = &PasswordManagerError{Type: Internal}
	ErrUnknown                            = &PasswordManagerError{Type: Unknown}
)

// newError wraps err with type t. An err that already is a
// PasswordManagerError is returned unchanged so each failure carries exactly
// one type.
func newError(t ErrorType, err error) error {
	var pmErr *PasswordManagerError
	if errors.As(err, &pmErr) {
		return err
	}
	return &PasswordManagerError{Type: t, Err: err}
}

// ErrorTypeOf returns the type of a password manager error, or Unknown for
// any other error.
func ErrorTypeOf(err error) ErrorType {
	var pmErr *PasswordManagerError
	if errors.As(err, &pmErr) {
		return pmErr.Type
	}
	return Unknown
}
