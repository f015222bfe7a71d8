package testutil

import "math/rand"

// NewSeededRand returns a random source with a fixed seed, for
// reproducible word building in tests. Seed 0 is replaced with 1 so a
// zero value never silently means "random".
func NewSeededRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}
