package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldBlob targets the sealed vault payload.
	FieldBlob = "blob"

	// FieldBlobFormat targets the schema tag of the payload.
	FieldBlobFormat = "blob_format"

	// FieldOwnershipProof targets the profile ownership proof of a vault
	// creation.
	FieldOwnershipProof = "ownership_proof"

	// FieldVersion targets the version the client last saw.
	FieldVersion = "version"

	// FieldNewAuthKey targets the replacement auth key of a password change.
	FieldNewAuthKey = "new_auth_key"
)

const (
	// MaxBlobSize bounds a single vault payload.
	MaxBlobSize = 8 << 20

	// maxBlobFormatLength bounds the schema tag.
	maxBlobFormatLength = 255

	// AuthKeySize is the length of the auth key clients derive.
	AuthKeySize = 32
)

// VaultRequestValidator implements [Validator] for the request bodies of the
// vault service: [models.CreateVaultRequest], [models.UpdateVaultRequest]
// and [models.ChangePasswordRequest]. Value and pointer forms are accepted.
type VaultRequestValidator struct{}

// NewVaultRequestValidator constructs a [VaultRequestValidator] and returns
// it as the [Validator] interface.
func NewVaultRequestValidator() Validator {
	return &VaultRequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Optional fields restrict
// validation to the named subset; when omitted all fields of the type are
// validated.
func (v *VaultRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateVaultRequest:
		return v.validateCreateVault(value, fields...)
	case *models.CreateVaultRequest:
		return v.validateCreateVault(*value, fields...)

	case models.UpdateVaultRequest:
		return v.validateUpdateVault(value, fields...)
	case *models.UpdateVaultRequest:
		return v.validateUpdateVault(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultRequestValidator) validateCreateVault(request models.CreateVaultRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBlob, FieldBlobFormat, FieldOwnershipProof}
	}

	for _, f := range fields {
		switch f {
		case FieldBlob:
			if err := validateBlob(request.Blob); err != nil {
				return err
			}
		case FieldBlobFormat:
			if err := validateBlobFormat(request.BlobFormat); err != nil {
				return err
			}
		case FieldOwnershipProof:
			if request.OwnershipProof == "" {
				return ErrEmptyOwnershipProof
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *VaultRequestValidator) validateUpdateVault(request models.UpdateVaultRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVersion, FieldBlob, FieldBlobFormat}
	}

	for _, f := range fields {
		switch f {
		case FieldVersion:
			// versions start at 1
			if request.Version < 1 {
				return ErrInvalidVersion
			}
		case FieldBlob:
			if err := validateBlob(request.Blob); err != nil {
				return err
			}
		case FieldBlobFormat:
			if err := validateBlobFormat(request.BlobFormat); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *VaultRequestValidator) validateChangePassword(request models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNewAuthKey}
	}

	for _, f := range fields {
		switch f {
		case FieldNewAuthKey:
			if err := ValidateAuthKey(request.NewAuthKey); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// ValidateAuthKey checks the length of a client auth key.
func ValidateAuthKey(authKey []byte) error {
	switch {
	case len(authKey) == 0:
		return ErrEmptyAuthKey
	case len(authKey) != AuthKeySize:
		return ErrInvalidAuthKey
	}
	return nil
}

func validateBlob(blob []byte) error {
	switch {
	case len(blob) == 0:
		return ErrEmptyBlob
	case len(blob) > MaxBlobSize:
		return ErrBlobTooLarge
	}
	return nil
}

func validateBlobFormat(format string) error {
	if format == "" || len(format) > maxBlobFormatLength {
		return ErrInvalidBlobFormat
	}
	return nil
}
