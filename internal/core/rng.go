package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0x7469_6c65_776f_726c))}
}

// Int64 returns a random non-negative int64, used to derive follow-up seeds.
func (r *RNG) Int64() int64 { return r.r.Int64() }

// Shuffle permutes n elements in place using the provided swap callback.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}
