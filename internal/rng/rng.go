// Package rng isolates creation-time randomness so entity trajectories can be
// reproduced from a seed.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// New returns a PCG-backed source. A zero seed picks one from the clock.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Range maps the next value from src into [lo, hi).
func Range(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Fixed replays the given values in order and wraps around. Useful for
// pinning exact trajectories in tests.
type Fixed struct {
	Values []float64
	next   int
}

func (f *Fixed) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v
}
