package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardizeMasterPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unchanged", input: "password", want: "password"},
		{name: "trims whitespace", input: " \t password \n", want: "password"},
		{name: "keeps inner spaces", input: "pass word", want: "pass word"},
		{name: "decomposes accents", input: "caf\u00e9", want: "cafe\u0301"},
		{name: "compatibility mapping", input: "\ufb01le", want: "file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := standardizeMasterPassword(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestStandardizeMasterPassword_Invalid(t *testing.T) {
	_, err := standardizeMasterPassword("   ")
	assert.ErrorIs(t, err, errMasterPasswordEmpty)

	_, err = standardizeMasterPassword("\xff")
	assert.ErrorIs(t, err, errMasterPasswordEncoding)
}
