// Package uuid hides ID generation behind an interface so tests can
// substitute predictable IDs for runs, mail, and listings.
package uuid

import "github.com/google/uuid"

// Generator produces unique string IDs
type Generator interface {
	New() string
}

type v4Generator struct{}

// NewGenerator returns the production Generator, backed by random
// (version 4) UUIDs
func NewGenerator() Generator {
	return v4Generator{}
}

func (v4Generator) New() string {
	return uuid.NewString()
}
