package utils

import "github.com/google/uuid"

// UUIDGenerator issues ids for new policy records. Version 7 ids sort by
// creation time, the same order the dashboard lists policies in.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate falls back to a random v4 id if the v7 clock read fails.
func (UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
