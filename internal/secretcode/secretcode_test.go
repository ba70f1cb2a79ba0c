package secretcode

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	got, err := Format("ABCDE0123456789ABCDEF0123456789ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, "ABCDE-012345-6789A-BCDEF-01234-56789-ABCDEF", got)

	for _, in := range []string{"", "ABCDE", strings.Repeat("A", 36), strings.Repeat("A", 38)} {
		_, err := Format(in)
		assert.ErrorIs(t, err, ErrInvalidLength, in)
	}
}

func TestParse(t *testing.T) {
	kdk := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}

	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{name: "formatted", in: "ABCDE-012345-6789A-BCDEF-FEDCB-A9876-543210", want: kdk},
		{name: "lowercase with spaces", in: " abcde 0123456789abcdef fedcba9876543210\n", want: kdk},
		{name: "prefix omitted", in: "0123456789ABCDEFFEDCBA9876543210", want: kdk},
		{name: "odd length is left padded", in: "123", want: []byte{0x01, 0x23}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A displayed code parses to the key it was built from.
func TestParse_DisplayedCode(t *testing.T) {
	kdk := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}

	displayed, err := Format("ABCDE" + strings.ToUpper(hex.EncodeToString(kdk)))
	require.NoError(t, err)
	assert.Equal(t, "ABCDE-012345-6789A-BCDEF-FEDCB-A9876-543210", displayed)

	got, err := Parse(displayed)
	require.NoError(t, err)
	assert.Equal(t, kdk, got)
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "---", "XYZ-not-hex", "ABCDE-012345-6789A-BCDEF-EDCBA-98765-4321G"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidSecretCode, in)
	}
}

func TestFormatParse_RoundTrip(t *testing.T) {
	const hexDigits = "0123456789ABCDEF"
	for i := range 50 {
		var b strings.Builder
		for j := range Length {
			b.WriteByte(hexDigits[(i*7+j*13)%16])
		}
		code := b.String()

		formatted, err := Format(code)
		require.NoError(t, err)
		assert.Len(t, formatted, Length+len(groups)-1)

		key, err := Parse(formatted)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(code[PrefixLength:]), hex.EncodeToString(key))
	}
}

func TestPrefix(t *testing.T) {
	// SHA-1("alice") = 522b276a356bdf39013dfabea2cd43e141ecc9e8
	assert.Equal(t, "522B2", Prefix("alice"))
	assert.Equal(t, "00000", Prefix(""))
}

func TestBuild(t *testing.T) {
	kdk := bytes.Repeat([]byte{0xab}, 16)

	code, err := Build(kdk, "alice")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, "522B2-ABABAB-"))

	parsed, err := Parse(code)
	require.NoError(t, err)
	assert.Equal(t, kdk, parsed)
}
