// RNG utilities for the partial sort's pivot choice.
//
// Goals:
//   - Determinism: same seed => identical pivot sequence => identical
//     int_left/int_right interval history, across platforms.
//   - No time-based source anywhere in this package.
package core

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when Instance.seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed == 0 maps to
// defaultRNGSeed so a zero-value Instance still behaves deterministically.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// rng lazily builds the Instance's pivot-selection RNG from its seed. Callers
// never share this *rand.Rand across goroutines.
func (ins *Instance) rng() *rand.Rand {
	if ins.pivotRNG == nil {
		ins.pivotRNG = rngFromSeed(ins.seed)
	}
	return ins.pivotRNG
}

// SetSeed fixes the pivot-selection seed. Must be called before the first
// sort_partially to take effect; zero means "use the stable default stream".
func (ins *Instance) SetSeed(seed int64) {
	ins.seed = seed
	ins.pivotRNG = nil
}
