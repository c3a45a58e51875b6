// Package ids generates and checks the identifiers used for every persisted entity.
package ids

import "github.com/google/uuid"

// Generator returns a fresh identifier on every call.
type Generator func() string

// New returns a random (version 4) UUID in its canonical 36 character form.
func New() string {
	return uuid.NewString()
}

// Valid reports whether id is a UUID in canonical form.
func Valid(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
