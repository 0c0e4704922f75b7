package services

import "math/rand/v2"

// RandomSource is the draw capability used by trip synthesis.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

type processSource struct{}

func (processSource) Float64() float64 { return rand.Float64() }
func (processSource) IntN(n int) int   { return rand.IntN(n) }

// ProcessRandom draws from the process-wide generator and is safe for concurrent use.
var ProcessRandom RandomSource = processSource{}

// NewSeededSource returns a reproducible source. It is not safe for concurrent use.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func uniform(src RandomSource, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// intBetween returns an integer in the inclusive range [lo, hi].
func intBetween(src RandomSource, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
