package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword(t *testing.T) {
	tests := []struct {
		name    string
		opts    PasswordOptions
		wantLen int
		has     []string
		hasNot  []string
	}{
		{
			name:    "defaults",
			opts:    DefaultPasswordOptions(),
			wantLen: 20,
			has:     []string{charsetUppercase, charsetLowercase, charsetNumbers, charsetSymbols},
		},
		{
			name:    "custom length",
			opts:    PasswordOptions{Length: 25, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
			wantLen: 25,
		},
		{
			name:    "minimum length",
			opts:    PasswordOptions{Length: 0, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
			wantLen: MinPasswordLength,
		},
		{
			name:    "no uppercase",
			opts:    PasswordOptions{Length: 20, Lowercase: true, Numbers: true, Symbols: true},
			wantLen: 20,
			has:     []string{charsetLowercase, charsetNumbers, charsetSymbols},
			hasNot:  []string{charsetUppercase},
		},
		{
			name:    "no symbols",
			opts:    PasswordOptions{Length: 20, Uppercase: true, Lowercase: true, Numbers: true},
			wantLen: 20,
			has:     []string{charsetUppercase, charsetLowercase, charsetNumbers},
			hasNot:  []string{charsetSymbols},
		},
		{
			name:    "all disabled enables all",
			opts:    PasswordOptions{Length: 20},
			wantLen: 20,
			has:     []string{charsetUppercase, charsetLowercase, charsetNumbers, charsetSymbols},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := GeneratePassword(tt.opts)
			require.NoError(t, err)
			assert.Len(t, password, tt.wantLen)
			for _, set := range tt.has {
				assert.True(t, strings.ContainsAny(password, set), "%q has nothing from %q", password, set)
			}
			for _, set := range tt.hasNot {
				assert.False(t, strings.ContainsAny(password, set), "%q has something from %q", password, set)
			}
		})
	}
}

func TestGeneratePassword_NoAmbiguousCharacters(t *testing.T) {
	for range 20 {
		password, err := GeneratePassword(PasswordOptions{Length: 50})
		require.NoError(t, err)
		assert.False(t, strings.ContainsAny(password, "oO0lI1"), password)
	}
}
