package models

import (
	"github.com/google/uuid"
)

// newID returns a fresh random identifier for tenant records.
func newID() string {
	return uuid.NewString()
}
