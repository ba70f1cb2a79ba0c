package crypto

import "errors"

var (
	// ErrInvalidEnvelope is returned when a secure field envelope is shorter
	// than one cipher block, is not block aligned, or has invalid padding.
	ErrInvalidEnvelope = errors.New("invalid secure field envelope")

	// ErrKeyAlreadyExists is returned by AddSymmetricKey when a key with the
	// same name is already stored.
	ErrKeyAlreadyExists = errors.New("key already exists")

	// ErrKeyNotFound is returned when an operation needs a key that is not
	// stored.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNoIdentity is returned by the key manager when no user is signed in.
	ErrNoIdentity = errors.New("no signed-in identity")

	// ErrCiphertextTooShort is returned when sealed data is shorter than the
	// nonce it must start with.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)
