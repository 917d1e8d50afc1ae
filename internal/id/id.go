package id

import "github.com/google/uuid"

// New returns a random (version 4) UUID string, the row id format used by
// every table.
func New() string {
	return uuid.NewString()
}
