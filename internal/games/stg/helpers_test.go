package stg

import (
	"math"
	"testing"
)

// scriptedRand replays fixed draws. Once a script runs out, Float64
// returns 0.99 (no drop, no explosive, no reflect) and IntRange returns lo.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntRange(lo, hi int) int {
	if len(r.ints) == 0 {
		return lo
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// newTestSession returns a session with an empty field and a quiet
// scripted random source.
func newTestSession(t *testing.T) (*Session, *scriptedRand) {
	t.Helper()
	rng := &scriptedRand{}
	return NewSession(DefaultOptions(), rng, nil), rng
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
