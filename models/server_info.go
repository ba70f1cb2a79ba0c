package models

// ServerInfo describes a running vault service. It is answered without
// authentication by GET /api/version.
type ServerInfo struct {
	Version string `json:"version"`
	// IntegrityCheck is set when request bodies must carry a keyed
	// HashSHA256 header.
	IntegrityCheck bool `json:"integrity_check"`
	// MaxVaultsPerProfile is the vaults-per-profile entitlement granted to
	// every profile.
	MaxVaultsPerProfile int `json:"max_vaults_per_profile"`
}
