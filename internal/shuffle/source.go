package shuffle

import "math/rand/v2"

// Source produces random permutations. *rand.Rand from math/rand/v2 satisfies it.
//
// Shuffle must call swap to reorder n elements; Generator relies on the
// permutation being uniform for its assignments to be uniform.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

// globalSource uses the process-wide math/rand/v2 generator, which is safe for
// concurrent use.
type globalSource struct{}

func (globalSource) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}
