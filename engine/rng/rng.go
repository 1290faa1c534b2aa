// Package rng provides the random source shared by the combat, message and
// fortune stages. Everything random in a move goes through a Source so tests
// can force outcomes.
package rng

import (
	"math/rand"
	"sync"
)

// Source is the randomness a move consumes.
type Source interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
	// Chance reports whether an event with probability p happens.
	Chance(p float64) bool
}

// RNG wraps math/rand.Rand and counts the draws made from it.
// It is safe for concurrent use; sessions share one RNG.
type RNG struct {
	mu   sync.Mutex
	seed int64
	src  *rand.Rand
	pos  int64
}

// New creates a new deterministic RNG from a seed.
func New(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random integer in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pos++
	return r.src.Intn(n)
}

// Chance returns true with probability p. p <= 0 never happens and p >= 1
// always happens; neither case consumes a draw.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pos++
	return r.src.Float64() < p
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pos
}
