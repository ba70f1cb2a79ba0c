package models

import "errors"

// ErrNoRevealer is returned when a CipherText value was built without a
// revealer and therefore cannot be decrypted.
var ErrNoRevealer = errors.New("cipher text has no revealer")

// Revealer decrypts a stored envelope on demand. Implementations check that
// the session owning the key is still live on every call.
type Revealer interface {
	Reveal(envelope SecureField) (string, error)
}

// RevealerFunc adapts a function to Revealer.
type RevealerFunc func(envelope SecureField) (string, error)

// Reveal calls f(envelope).
func (f RevealerFunc) Reveal(envelope SecureField) (string, error) {
	return f(envelope)
}

// SecureFieldValue is the in-memory form of a confidential value. It is
// either PlainText, freshly entered by the user, or CipherText, read back
// from a vault and decrypted only when revealed.
type SecureFieldValue interface {
	Reveal() (string, error)
	isSecureFieldValue()
}

// PlainText is a value that has not been encrypted yet. It never reaches a
// VaultDocument in this form.
type PlainText string

// Reveal returns the plaintext.
func (p PlainText) Reveal() (string, error) { return string(p), nil }

func (PlainText) isSecureFieldValue() {}

// CipherText is a stored envelope paired with the revealer able to decrypt it.
type CipherText struct {
	Envelope SecureField
	revealer Revealer
}

// NewCipherText binds envelope to r.
func NewCipherText(envelope SecureField, r Revealer) CipherText {
	return CipherText{Envelope: envelope, revealer: r}
}

// Reveal decrypts the envelope.
func (c CipherText) Reveal() (string, error) {
	if c.revealer == nil {
		return "", ErrNoRevealer
	}
	return c.revealer.Reveal(c.Envelope)
}

func (CipherText) isSecureFieldValue() {}
