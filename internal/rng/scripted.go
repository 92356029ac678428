package rng

import "fmt"

// Scripted is a Source that replays predetermined values, for tests.
// Float64 and Intn consume from independent queues.
type Scripted struct {
	floats   []float64
	ints     []int
	floatIdx int
	intIdx   int
}

// NewScripted creates a scripted source with the given draw queues
func NewScripted(floats []float64, ints []int) *Scripted {
	return &Scripted{floats: floats, ints: ints}
}

// PushFloat appends a float draw to the queue
func (s *Scripted) PushFloat(v float64) {
	s.floats = append(s.floats, v)
}

// PushInt appends an integer draw to the queue
func (s *Scripted) PushInt(v int) {
	s.ints = append(s.ints, v)
}

func (s *Scripted) Float64() float64 {
	if s.floatIdx >= len(s.floats) {
		panic(fmt.Sprintf("scripted rng: no more float draws (used %d)", s.floatIdx))
	}
	v := s.floats[s.floatIdx]
	s.floatIdx++
	return v
}

func (s *Scripted) Intn(n int) int {
	if s.intIdx >= len(s.ints) {
		panic(fmt.Sprintf("scripted rng: no more int draws (used %d)", s.intIdx))
	}
	v := s.ints[s.intIdx]
	s.intIdx++
	if v >= n {
		panic(fmt.Sprintf("scripted rng: draw %d out of range for Intn(%d)", v, n))
	}
	return v
}
