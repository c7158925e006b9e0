package engine

import "math/rand/v2"

// Rand is a seedable source of the random draws a scene makes.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a deterministic Rand using the provided seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Between returns a uniformly distributed integer in [lo, hi].
// The bounds may be given in either order.
func (r *Rand) Between(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + r.r.IntN(hi-lo+1)
}
