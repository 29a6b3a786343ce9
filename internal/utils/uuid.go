package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for vault records and credentials.
// Version 7 UUIDs are preferred so identifiers sort by creation time;
// if the entropy source fails a random v4 is used instead.
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
