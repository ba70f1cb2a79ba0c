// Package crypto holds the client-side cryptography of the password
// manager: the secure field envelope, the platform key stores, the key
// manager that owns the key deriving key, and the derivation of the
// credentials presented to the remote vault store.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyStore is secure persistent key storage scoped to one identity.
//
// Keys are addressed by name. A key generated as non-exportable can be used
// for encryption but its material is never returned: GetSymmetricKey
// reports such a key with an empty, non-nil slice.
type KeyStore interface {
	// GetSymmetricKey returns the key stored under name, or nil if there is
	// no such key.
	GetSymmetricKey(name string) ([]byte, error)

	// AddSymmetricKey stores an exportable key under name. It fails with
	// ErrKeyAlreadyExists if the name is taken.
	AddSymmetricKey(name string, key []byte) error

	// GenerateSymmetricKey creates a random 256-bit key under name,
	// replacing any existing key with that name.
	GenerateSymmetricKey(name string, exportable bool) error

	// EncryptWithSymmetricKey seals data with the named key.
	EncryptWithSymmetricKey(name string, data []byte) ([]byte, error)

	// DecryptWithSymmetricKey opens data sealed by EncryptWithSymmetricKey.
	DecryptWithSymmetricKey(name string, data []byte) ([]byte, error)

	// CreateRandomBytes returns n bytes from the OS CSPRNG.
	CreateRandomBytes(n int) ([]byte, error)

	// RemoveAllKeys deletes every key of the identity.
	RemoveAllKeys() error
}

// IdentityProvider names the signed-in user.
type IdentityProvider interface {
	GetUserName() (string, error)
}

// KeyManager is the password manager's view of the key store. It owns the
// naming of the key deriving key (KDK) and the secure field envelope.
type KeyManager interface {
	// GetKeyDerivingKey returns the cached KDK of the signed-in user, or nil
	// if none is stored on this device.
	GetKeyDerivingKey() ([]byte, error)

	// SetKeyDerivingKey stores the KDK. It fails with ErrKeyAlreadyExists if
	// one is already stored.
	SetKeyDerivingKey(key []byte) error

	// GenerateKeyDerivingKey returns a fresh random 128-bit KDK. The key is
	// not stored.
	GenerateKeyDerivingKey() ([]byte, error)

	GetSymmetricKey(name string) ([]byte, error)
	GenerateSymmetricKey(name string, exportable bool) error
	EncryptWithSymmetricKey(name string, data []byte) ([]byte, error)
	DecryptWithSymmetricKey(name string, data []byte) ([]byte, error)

	// EncryptSecureField seals a field value into an envelope keyed by key.
	EncryptSecureField(data, key []byte) ([]byte, error)

	// DecryptSecureField opens an envelope produced by EncryptSecureField.
	DecryptSecureField(envelope, key []byte) ([]byte, error)

	RemoveAllKeys() error
}
