// Package core holds small helpers shared by every driver.
package core

import "math/rand/v2"

// RNG is a seeded PCG source. Two RNGs built from the same seed produce the same
// sequence, which is what makes runs reproducible.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed returns the seed the RNG was built from.
func (r *RNG) Seed() int64 { return r.seed }

// IntN returns a value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Stream returns an independent RNG for the numbered stream of the same seed.
func (r *RNG) Stream(stream uint64) *RNG {
	return &RNG{seed: r.seed, r: rand.New(rand.NewPCG(uint64(r.seed), stream+1))}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
