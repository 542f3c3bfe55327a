// Package random defines the random source consumed by the texture stages.
//
// Stages only describe how randomness is used. Production runs draw from a
// seeded PCG generator; tests substitute a Sequence to replay exact draws.
package random

import "math/rand/v2"

// Source supplies the two kinds of draws the pipeline needs.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64

	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// New returns a PCG-backed generator seeded once for the whole run.
// Equal seeds yield equal draw sequences.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
