package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyBlob           = errors.New("blob is required")
	ErrBlobTooLarge        = errors.New("blob is too large")
	ErrInvalidBlobFormat   = errors.New("invalid blob format")
	ErrEmptyOwnershipProof = errors.New("ownership proof is required")
	ErrInvalidVersion      = errors.New("invalid version")
	ErrEmptyAuthKey        = errors.New("auth key is required")
	ErrInvalidAuthKey      = errors.New("auth key has invalid length")
)
