package adapters

import "github.com/google/uuid"

// UUIDGenerator implements domain.IDGenerator with random UUIDv4 strings.
// The first eight characters double as the transaction-id fragment, so the
// canonical lowercase-hex form matters.
type UUIDGenerator struct{}

// NewID returns a fresh UUIDv4 string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
