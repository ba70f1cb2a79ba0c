// Package schema converts vault documents to and from the opaque blobs kept
// by the remote vault store.
//
// Each blob travels with a schema tag naming the format it was written in.
// Decoding resolves the tag to a decoder that always yields the current
// [models.VaultDocument] shape, so no other package branches on the schema
// version. Encoding always writes the latest schema.
//
// Adding a schema version means writing its decoder, pointing the encoder at
// the new shape, and moving [Latest].
package schema

import (
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Latest is the tag every blob is written with.
const Latest = TagV1

type decoder func(blob []byte) (models.VaultDocument, error)

type encoder func(doc models.VaultDocument) ([]byte, error)

// Codec is the vault schema registry. The zero value is not usable; call
// [NewCodec].
type Codec struct {
	decoders map[string]decoder
	latest   string
	encode   encoder
}

// NewCodec returns a codec that knows every supported schema.
func NewCodec() *Codec {
	return &Codec{
		decoders: map[string]decoder{
			TagV1: decodeV1,
		},
		latest: Latest,
		encode: encodeV1,
	}
}

// Decode reads blob as the schema named by tag.
func (c *Codec) Decode(tag string, blob []byte) (models.VaultDocument, error) {
	decode, ok := c.decoders[tag]
	if !ok {
		return models.VaultDocument{}, fmt.Errorf("%w: %q", ErrUnknownSchema, tag)
	}

	doc, err := decode(blob)
	if err != nil {
		return models.VaultDocument{}, fmt.Errorf("%w (%s): %w", ErrDecode, tag, err)
	}
	return doc, nil
}

// Encode writes doc with the latest schema and returns the blob together
// with the tag to store alongside it.
func (c *Codec) Encode(doc models.VaultDocument) ([]byte, string, error) {
	blob, err := c.encode(doc)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return blob, c.latest, nil
}

// Latest returns the tag Encode writes.
func (c *Codec) Latest() string {
	return c.latest
}

// Tags lists the tags Decode accepts, sorted.
func (c *Codec) Tags() []string {
	return slices.Sorted(maps.Keys(c.decoders))
}
