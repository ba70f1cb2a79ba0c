package models

import "time"

const (
	// IdentityOwnerIssuer is the issuer attached to the owner entry that
	// identifies the registered user of a vault.
	IdentityOwnerIssuer = "sudoplatform.identityservice"

	// ProfileOwnerIssuer is the issuer attached to the owner entry that
	// identifies the profile a vault belongs to.
	ProfileOwnerIssuer = "sudoplatform.sudoservice"
)

// VaultOwner is a single (id, issuer) ownership pair of a vault.
type VaultOwner struct {
	ID     string `json:"id"`
	Issuer string `json:"issuer"`
}

// VaultMetadata describes a vault as known by the remote vault store.
//
// Version and UpdatedAt are only ever taken from a response of the remote
// store; the client never advances them on its own.
type VaultMetadata struct {
	ID         string       `json:"id"`
	BlobFormat string       `json:"blob_format"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	Version    int          `json:"version"`
	Owner      string       `json:"owner"`
	Owners     []VaultOwner `json:"owners"`
}

// ProfileID returns the id of the owner issued by the profile service.
func (m VaultMetadata) ProfileID() (string, bool) {
	for _, owner := range m.Owners {
		if owner.Issuer == ProfileOwnerIssuer {
			return owner.ID, true
		}
	}
	return "", false
}

// RemoteVault is a vault as returned by the remote store: metadata plus
// the opaque blob produced by the schema codec.
type RemoteVault struct {
	VaultMetadata
	Blob []byte `json:"blob"`
}

// Vault is the caller-facing handle to a vault. Item operations take a
// Vault and resolve it by ID against the local cache.
type Vault struct {
	VaultMetadata
}

// VaultProxy is a decoded vault held by the local cache.
type VaultProxy struct {
	VaultMetadata
	Data VaultDocument
}

// Vault strips the decoded payload.
func (p VaultProxy) Vault() Vault {
	return Vault{VaultMetadata: p.VaultMetadata}
}

// StoredVault is a vault as persisted by the vault service. Blob is sealed
// by the client and opaque to the service.
type StoredVault struct {
	ID         string
	UserID     string
	ProfileID  string
	BlobFormat string
	Blob       []byte
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Metadata describes the vault with its two owners: the user and the
// profile.
func (v StoredVault) Metadata() VaultMetadata {
	return VaultMetadata{
		ID:         v.ID,
		BlobFormat: v.BlobFormat,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
		Version:    v.Version,
		Owner:      v.UserID,
		Owners: []VaultOwner{
			{ID: v.UserID, Issuer: IdentityOwnerIssuer},
			{ID: v.ProfileID, Issuer: ProfileOwnerIssuer},
		},
	}
}

// Remote is the vault with its blob as returned to the client.
func (v StoredVault) Remote() RemoteVault {
	return RemoteVault{VaultMetadata: v.Metadata(), Blob: v.Blob}
}
