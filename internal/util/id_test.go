package util

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewRunID(t *testing.T) {
	id := NewRunID()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("NewRunID() = %q is not a valid UUID: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("NewRunID() version = %d, want 7", parsed.Version())
	}
	if parsed.String() != id {
		t.Errorf("NewRunID() = %q, want canonical form %q", id, parsed.String())
	}

	if other := NewRunID(); other == id {
		t.Error("consecutive run IDs should differ")
	}
}
