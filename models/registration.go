package models

// RegistrationStatus describes whether the current user can unlock vaults
// on this device.
type RegistrationStatus int

const (
	// NotRegistered means the remote store has no record of the user.
	NotRegistered RegistrationStatus = iota
	// Registered means the user is registered and a key deriving key is
	// available locally.
	Registered
	// MissingSecretCode means the user is registered but the key deriving key
	// is not on this device; the secret code is needed to unlock.
	MissingSecretCode
)

func (s RegistrationStatus) String() string {
	switch s {
	case Registered:
		return "registered"
	case MissingSecretCode:
		return "missing secret code"
	default:
		return "not registered"
	}
}
