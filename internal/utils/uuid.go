package utils

import "github.com/google/uuid"

// UUIDGenerator issues stable identifiers for inventory items. UUIDv7 keeps
// ids roughly time-ordered; v4 is the fallback when the system clock source
// fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
