// Package rng provides the uniform randomness source used by room
// resolution, fishing tables and the wishing well. Injecting the source
// keeps every weighted draw deterministic under test.
package rng

import (
	"math/rand"
	"time"
)

// Source is a uniform randomness source
type Source interface {
	// Float64 returns a uniform draw from [0, 1)
	Float64() float64

	// Intn returns a uniform integer from [0, n)
	Intn(n int) int
}

type randSource struct {
	r *rand.Rand
}

// NewSource creates a Source backed by math/rand seeded from the clock
func NewSource() Source {
	return &randSource{
		r: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededSource creates a Source with a fixed seed
func NewSeededSource(seed int64) Source {
	return &randSource{
		r: rand.New(rand.NewSource(seed)),
	}
}

func (s *randSource) Float64() float64 {
	return s.r.Float64()
}

func (s *randSource) Intn(n int) int {
	return s.r.Intn(n)
}
