package store

import "github.com/MKhiriev/go-pass-vault/models"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// VaultDecoder turns a remote vault blob into a document. It is satisfied by
// *schema.Codec.
type VaultDecoder interface {
	Decode(tag string, blob []byte) (models.VaultDocument, error)
}
