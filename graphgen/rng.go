// SPDX-License-Identifier: MIT
// Package graphgen - deterministic RNG helpers.
//
// Goals:
//   - Same seed ⇒ identical graph across runs and platforms.
//   - No time-based sources hidden anywhere; callers opt into entropy with WithRand.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Generate consumes it on the calling
//     goroutine only.
package graphgen

import "math/rand"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed == 0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// intBetween draws uniformly from the closed range [lo, hi].
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
