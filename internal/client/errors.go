package client

import "errors"

var (
	// ErrPasswordsDoNotMatch is returned when a new password and its
	// confirmation differ.
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")

	// ErrNotRegistered is returned by commands that need an account when the
	// vault service has none for the user.
	ErrNotRegistered = errors.New("user is not registered, run `register` first")

	// ErrVaultNotFound is returned when a vault id is unknown.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrVaultNotSpecified is returned when --vault is omitted and the user
	// does not have exactly one vault.
	ErrVaultNotSpecified = errors.New("several vaults exist, choose one with --vault")

	// ErrNoVaults is returned when an item command runs before any vault
	// exists.
	ErrNoVaults = errors.New("no vaults, run `vault create` first")

	// ErrUnknownField is returned when reveal names a field the item lacks.
	ErrUnknownField = errors.New("item has no such secure field")

	// ErrAborted is returned when the user declines a confirmation.
	ErrAborted = errors.New("aborted")

	// ErrNoSecretCode is returned when this device holds no key deriving key.
	ErrNoSecretCode = errors.New("no key deriving key on this device")

	// ErrUnknownKeyStore is returned for an unsupported key store backend.
	ErrUnknownKeyStore = errors.New("unknown key store backend")
)
