package service

import "errors"

// Errors of the vault service. Handlers map them to HTTP statuses.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrNotRegistered           = errors.New("user is not registered")
	ErrAlreadyRegistered       = errors.New("user is already registered")
	ErrInvalidVaultCredentials = errors.New("invalid vault credentials")

	ErrVaultNotFound         = errors.New("vault not found")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrVaultVersionConflict  = errors.New("vault version conflict")
	ErrInvalidOwnershipProof = errors.New("invalid ownership proof")
	ErrVaultLimitExceeded    = errors.New("vault limit exceeded")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
