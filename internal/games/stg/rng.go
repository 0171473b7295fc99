package stg

import "math/rand"

// Rand is the random source consumed by the simulation.
// Every draw the session makes goes through it, so a seeded source
// gives fully reproducible runs.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntRange returns a value in [lo, hi], both inclusive.
	IntRange(lo, hi int) int
}

// SeededRand is the default Rand backed by math/rand.
type SeededRand struct {
	r *rand.Rand
}

// NewRand creates a deterministic random source from a seed.
func NewRand(seed int64) *SeededRand {
	return &SeededRand{r: rand.New(rand.NewSource(seed))} //nolint:gosec // Game RNG, not crypto
}

// Float64 returns a value in [0, 1).
func (s *SeededRand) Float64() float64 {
	return s.r.Float64()
}

// IntRange returns a value in [lo, hi], both inclusive.
func (s *SeededRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}
