package crypto

import (
	"encoding/base64"
	"errors"
	"strings"
)

// symmetricKeySize is the size of keys created by GenerateSymmetricKey.
const symmetricKeySize = 32

const (
	exportablePrefix    = "x:"
	nonExportablePrefix = "n:"
)

var errMalformedEntry = errors.New("malformed key store entry")

// keyEntry is a stored key and its export policy. Both key store backends
// persist entries as "x:<base64>" or "n:<base64>".
type keyEntry struct {
	key        []byte
	exportable bool
}

func (e keyEntry) encode() string {
	prefix := nonExportablePrefix
	if e.exportable {
		prefix = exportablePrefix
	}
	return prefix + base64.StdEncoding.EncodeToString(e.key)
}

// exported returns what GetSymmetricKey may hand out for this entry.
func (e keyEntry) exported() []byte {
	if !e.exportable {
		return []byte{}
	}
	return e.key
}

func decodeKeyEntry(raw string) (keyEntry, error) {
	var exportable bool
	switch {
	case strings.HasPrefix(raw, exportablePrefix):
		exportable = true
	case strings.HasPrefix(raw, nonExportablePrefix):
	default:
		return keyEntry{}, errMalformedEntry
	}

	key, err := base64.StdEncoding.DecodeString(raw[len(exportablePrefix):])
	if err != nil {
		return keyEntry{}, errors.Join(errMalformedEntry, err)
	}
	return keyEntry{key: key, exportable: exportable}, nil
}
