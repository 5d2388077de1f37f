package util

import (
	"github.com/google/uuid"
)

// NewRunID returns a time-ordered UUIDv7 that tags one invocation's
// log records and the PDF it produces. It falls back to a random UUIDv4
// if the v7 generator cannot read entropy.
func NewRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
