package idgen

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ULID-based IDs. Used for account ids.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}

// UUIDGenerator generates random (v4) UUIDs. Used for withdrawal ids, which
// live in the gateway's id-space.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate generates a new UUID.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// IsAccountID reports whether s is a well-formed account id.
func IsAccountID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}

// IsWithdrawalID reports whether s is a well-formed withdrawal id.
func IsWithdrawalID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
