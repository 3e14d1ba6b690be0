// Package sorts - RNG utilities for randomized pivot selection.
//
// This file centralizes deterministic random generation for QuickSort.
//
// Goals:
//   - Determinism: same seed ⇒ identical pivot choices across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; invalid configuration surfaces as
//     sentinel errors from types.go at the call sites that can judge it.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; give each concurrent sort its own stream via WithSeed.
package sorts

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0
// or no RNG at all. The value is arbitrary but stable to keep reproducible
// defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// rngOrDefault resolves the pivot source for a sorting call: an explicit
// RNG wins; nil falls back to the fixed default stream (seed==0 policy),
// so un-configured runs stay reproducible.
//
// Complexity: O(1).
func rngOrDefault(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}

	return rngFromSeed(0)
}
