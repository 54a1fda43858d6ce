// Package idgen generates identifiers for sessions and exercises.
package idgen

import "github.com/google/uuid"

// New returns a time-ordered identifier: a millisecond timestamp prefix
// followed by random bits. Collisions are not checked against existing data.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
