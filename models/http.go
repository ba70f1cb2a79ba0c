package models

// Request and response bodies of the vault service HTTP API. Credential
// material travels in the X-Vault-Auth header, never in these bodies.

// RegistrationResponse answers GET /api/vault/registration.
type RegistrationResponse struct {
	Registered bool `json:"registered"`
}

// CreateVaultRequest is the body of POST /api/vault/vaults.
type CreateVaultRequest struct {
	// Blob is the client-encrypted vault payload.
	Blob []byte `json:"blob"`

	// BlobFormat is the schema tag the payload was encoded with.
	BlobFormat string `json:"blob_format"`

	// OwnershipProof is a signed token proving the caller owns the profile
	// the vault is created for.
	OwnershipProof string `json:"ownership_proof"`
}

// UpdateVaultRequest is the body of PUT /api/vault/vaults/{id}.
type UpdateVaultRequest struct {
	// Version is the version the client last saw. A stale version is
	// rejected with a conflict.
	Version int `json:"version"`

	Blob       []byte `json:"blob"`
	BlobFormat string `json:"blob_format"`
}

// ChangePasswordRequest is the body of PUT /api/vault/password.
type ChangePasswordRequest struct {
	NewAuthKey []byte `json:"new_auth_key"`
}

// DeregisterResponse answers POST /api/vault/deregister.
type DeregisterResponse struct {
	UserID string `json:"user_id"`
}

// OwnershipProofResponse answers POST /api/profiles/{id}/ownership-proof.
type OwnershipProofResponse struct {
	Token string `json:"token"`
}

// RegisterResponse answers POST /api/vault/register.
type RegisterResponse struct {
	UserID string `json:"user_id"`
}

const (
	// HeaderVaultAuth carries the base64 auth key derived from the master
	// password and the key deriving key.
	HeaderVaultAuth = "X-Vault-Auth"

	// HeaderBodyHash carries the hex HMAC-SHA256 of the request body when
	// transport integrity checking is configured.
	HeaderBodyHash = "HashSHA256"
)
