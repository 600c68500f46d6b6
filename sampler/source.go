package sampler

import "math/rand/v2"

// IndexSource returns uniform indexes in [0, n). n is always positive.
type IndexSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultSource draws from the process-wide generator
func DefaultSource() IndexSource {
	return globalSource{}
}

// NewSeededSource returns a deterministic source; equal seeds give equal draws
func NewSeededSource(seed uint64) IndexSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) // #nosec G404
}
