package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDv7 returns a time-ordered id. Every row in the schema keys on
// these, so inserts stay roughly append-ordered and created_at sorts agree
// with id sorts.
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// v7 only fails when the entropy source does; fall back to v4
		return uuid.New()
	}
	return id
}
