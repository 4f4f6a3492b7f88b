package rng

import (
	"math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a Generator backed by a seeded math/rand source.
// Use a fixed seed in tests for reproducible shuffles and card steals.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a seeded Generator
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))} // nolint:gosec
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
