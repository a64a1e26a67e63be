// Package selection - RNG policy for the randomized selector.
//
// Pivot choice needs a source of randomness, and hiding one in global
// state would make runs irreproducible. The policy here mirrors the
// rest of the library's determinism stance:
//   - callers pass an explicit *rand.Rand when they care about the seed;
//   - a nil source falls back to a fixed, stable default seed, so even
//     "don't care" runs are reproducible across platforms.
package selection

import "math/rand"

// defaultRNGSeed is the fixed seed behind a nil randomness source. The
// value is arbitrary but stable to keep default runs reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
