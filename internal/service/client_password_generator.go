package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Ambiguous characters (oO0lI1) are left out of every set.
const (
	charsetUppercase = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	charsetLowercase = "abcdefghijkmnpqrstuvwxyz"
	charsetNumbers   = "23456789"
	charsetSymbols   = "!?@*._-"

	MinPasswordLength     = 6
	DefaultPasswordLength = 20
)

// PasswordOptions selects the character classes of a generated password.
// When every class is disabled all of them are used.
type PasswordOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultPasswordOptions enables every class at the default length.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length:    DefaultPasswordLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// GeneratePassword returns a random password of at least MinPasswordLength
// characters containing at least one character of every enabled class.
func GeneratePassword(opts PasswordOptions) (string, error) {
	if !opts.Uppercase && !opts.Lowercase && !opts.Numbers && !opts.Symbols {
		opts.Uppercase, opts.Lowercase, opts.Numbers, opts.Symbols = true, true, true, true
	}
	length := max(opts.Length, MinPasswordLength)

	var all string
	password := make([]byte, 0, length)
	for _, class := range []struct {
		enabled bool
		charset string
	}{
		{opts.Uppercase, charsetUppercase},
		{opts.Lowercase, charsetLowercase},
		{opts.Numbers, charsetNumbers},
		{opts.Symbols, charsetSymbols},
	} {
		if !class.enabled {
			continue
		}
		all += class.charset
		c, err := randomChar(class.charset)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < length {
		c, err := randomChar(all)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Fisher-Yates so the guaranteed characters are not always in front.
	for i := len(password) - 1; i > 0; i-- {
		j, err := randomIndex(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func randomChar(charset string) (byte, error) {
	i, err := randomIndex(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

func randomIndex(n int) (int, error) {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return int(idx.Int64()), nil
}
