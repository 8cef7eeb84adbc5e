package utils

import "github.com/google/uuid"

// UUIDGenerator issues edit session identifiers. Time-ordered v7 ids are
// preferred so log entries of consecutive sessions sort naturally.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new v7 UUID string, or a random v4 if the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
