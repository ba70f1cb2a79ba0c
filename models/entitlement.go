package models

import "time"

// EntitlementMaxVaultsPerProfile is the entitlement limiting how many vaults
// a single profile may own.
const EntitlementMaxVaultsPerProfile = "sudoplatform.vault.vaultMaxPerSudo"

// Entitlement is a named quota granted to the user.
type Entitlement struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// EntitlementState reports the consumption of an entitlement by one profile.
type EntitlementState struct {
	Name      string
	ProfileID string
	Limit     int
	Value     int
}

// Profile is a persona of the user that vaults can be attached to.
type Profile struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
