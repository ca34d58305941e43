// Package randsrc decides between seeded and unseeded random generators.
//
// Synthetic text wants fresh entropy on every run, while dataset splits must
// be reproducible. Both paths build a PCG generator from math/rand/v2 so the
// algorithm is pinned and publicly specified; only the seed source differs.
package randsrc

import "math/rand/v2"

// New returns a generator seeded with seed when seeded is true, or with
// fresh entropy otherwise.
func New(seeded bool, seed uint64) *rand.Rand {
	if seeded {
		return Seeded(seed)
	}
	return Unseeded()
}

// Seeded returns a deterministic PCG generator. Both PCG state words are
// derived from seed.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Unseeded returns a PCG generator seeded from the runtime's entropy-backed
// global source.
func Unseeded() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
