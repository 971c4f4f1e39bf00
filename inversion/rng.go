// Package inversion - RNG utilities for the marginal CRF draw.
//
// Goals:
//   - Determinism on request: same seed ⇒ identical CRFmarg sequence.
//   - Convenience by default: nil source ⇒ process-wide math/rand.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - The top-level math/rand functions are safe and are used when no source is given.
package inversion

import "math/rand"

// DefaultSeed is the fixed seed used when NewRand is called with seed==0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// uniform draws lo + (hi−lo)·u with u ∈ [0,1). The formula does not
// require lo ≤ hi; for lo > hi the draw lies in (hi, lo].
func uniform(lo, hi float64, r *rand.Rand) float64 {
	var u float64
	if r == nil {
		u = rand.Float64()
	} else {
		u = r.Float64()
	}

	return lo + (hi-lo)*u
}
