package utils

import "github.com/google/uuid"

// UUIDGenerator issues ids for vaults, profiles and vault items. Ids are
// version 7 UUIDs, so ids created later sort after earlier ones.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	// NewV7 only fails when the random source does.
	return uuid.NewString()
}

// IsUUID reports whether s is a UUID in its canonical 36 character form.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
