// Package secretcode renders the key deriving key as the human-readable
// secret code used to unlock vaults on a new device, and parses it back.
//
// A secret code is 37 hex characters: a 5 character prefix identifying the
// user followed by the 32 character hex KDK. It is shown in dash separated
// groups of 5-6-5-5-5-5-6 characters.
package secretcode

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	// Length is the number of hex characters in a secret code.
	Length = 37

	// PrefixLength is the length of the identifying prefix.
	PrefixLength = 5

	// keyHexLength is the hex length of a 16 byte KDK.
	keyHexLength = 32

	defaultPrefix = "00000"
)

var groups = []int{5, 6, 5, 5, 5, 5, 6}

var (
	// ErrInvalidLength is returned by Format for input that is not exactly
	// Length characters long.
	ErrInvalidLength = errors.New("secret code must be 37 characters")

	// ErrInvalidSecretCode is returned by Parse for input that does not
	// contain a hex encoded key.
	ErrInvalidSecretCode = errors.New("invalid secret code")
)

// Format splits a 37 character code into its display groups.
func Format(code string) (string, error) {
	if len(code) != Length {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, len(code))
	}

	parts := make([]string, 0, len(groups))
	pos := 0
	for _, n := range groups {
		parts = append(parts, code[pos:pos+n])
		pos += n
	}
	return strings.Join(parts, "-"), nil
}

// Parse extracts the KDK from a secret code. Dashes and whitespace are
// ignored and only the last 32 characters are used, so the prefix may be
// omitted or mistyped. An odd number of characters is padded with a leading
// zero.
func Parse(code string) ([]byte, error) {
	stripped := strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, code)

	if len(stripped) > keyHexLength {
		stripped = stripped[len(stripped)-keyHexLength:]
	}
	if len(stripped)%2 != 0 {
		stripped = "0" + stripped
	}

	key, err := hex.DecodeString(stripped)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecretCode, err)
	}
	if len(key) == 0 {
		return nil, ErrInvalidSecretCode
	}
	return key, nil
}

// Prefix returns the identifying prefix for subject: the first five
// characters of the uppercase SHA-1 hex digest of the subject, or "00000"
// when no subject is known.
func Prefix(subject string) string {
	if subject == "" {
		return defaultPrefix
	}
	sum := sha1.Sum([]byte(subject))
	return strings.ToUpper(hex.EncodeToString(sum[:]))[:PrefixLength]
}

// Build renders the formatted secret code for kdk and subject.
func Build(kdk []byte, subject string) (string, error) {
	return Format(Prefix(subject) + strings.ToUpper(hex.EncodeToString(kdk)))
}
