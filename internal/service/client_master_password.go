package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	errMasterPasswordEncoding = errors.New("master password is not valid UTF-8")
	errMasterPasswordEmpty    = errors.New("master password is empty")
)

// standardizeMasterPassword trims surrounding whitespace and applies NFKD
// normalization so the same password typed on different keyboards derives
// the same credentials.
func standardizeMasterPassword(password string) ([]byte, error) {
	if !utf8.ValidString(password) {
		return nil, errMasterPasswordEncoding
	}
	standardized := norm.NFKD.String(strings.TrimSpace(password))
	if standardized == "" {
		return nil, errMasterPasswordEmpty
	}
	return []byte(standardized), nil
}
