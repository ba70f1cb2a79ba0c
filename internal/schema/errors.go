package schema

import "errors"

var (
	// ErrUnknownSchema is returned when a blob's schema tag has no decoder.
	ErrUnknownSchema = errors.New("unknown vault schema")

	// ErrDecode is returned when a blob cannot be decoded with the decoder
	// of its schema tag.
	ErrDecode = errors.New("failed to decode vault blob")

	// ErrEncode is returned when a document cannot be written in the latest
	// schema.
	ErrEncode = errors.New("failed to encode vault document")
)
