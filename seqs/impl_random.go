// SPDX-License-Identifier: MIT
// Package: lvlsort/seqs
//
// impl_random.go — seeded stochastic sequence generators.
//
// Contract:
//   • n ≥ 0 (else ErrBadSize via validateLen); n = 0 → empty non-nil slice.
//   • Strict determinism per (n, seed, options); WithRand overrides seed.
//   • Returns only sentinel-wrapped errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) per generator (plus O(swaps) for NearlySorted).
//   • Space: O(n) for the result, O(1) extra.
//
// Determinism:
//   • RNG selection via rngFrom(cfg, seed): cfg.rng wins, else rand.NewSource(seed).
//   • Value draws via drawValue, rejection sampled, unbiased for any [lo, hi].
//   • Shuffles via Fisher–Yates with descending index, the textbook order.
//
// AI-Hints (practical):
//   • Pair Random with WithValueBounds to stay inside counting-sort budgets.
//   • NearlySorted + WithDisorder(0) is a seeded way to get sorted data.
//   • FewDistinct ignores value bounds: its domain is 0..distinct-1.

package seqs

import (
	"math"
	"math/rand"
)

// Random returns n uniform draws from the inclusive interval
// [cfg.minValue, cfg.maxValue] (defaults DefaultMinValue..DefaultMaxValue).
//
// Options:
//   - WithValueBounds(lo, hi) — override the draw interval.
//   - WithRand(r)             — share an explicit stream; seed is ignored.
//
// Complexity: O(n) time, O(n) memory.
func Random(n int, seed int64, opts ...Option) ([]int, error) {
	// Validate parameter domain early (fail fast, no work on invalid input).
	if err := validateLen(MethodRandom, n); err != nil {
		return nil, err
	}

	// Resolve deterministic configuration once (O(len(opts))).
	cfg := newSeqConfig(opts...)

	// RNG selection: prefer cfg.rng to honor shared-stream determinism.
	rng := rngFrom(cfg, seed)

	// Allocate the output buffer exactly once (tight O(n) memory).
	out := make([]int, n)
	for i := 0; i < n; i++ {
		// Draw each sample independently from the configured interval.
		out[i] = drawValue(rng, cfg.minValue, cfg.maxValue)
	}

	return out, nil
}

// Shuffled returns a uniform random permutation of 0,1,...,n-1 via the
// Fisher–Yates shuffle. Every value occurs exactly once, which makes the
// output a handy cross-check input: sorting it must reproduce Ascending(n).
//
// Complexity: O(n) time, O(n) memory.
func Shuffled(n int, seed int64, opts ...Option) ([]int, error) {
	if err := validateLen(MethodShuffled, n); err != nil {
		return nil, err
	}

	cfg := newSeqConfig(opts...)
	rng := rngFrom(cfg, seed)

	// Start from the identity permutation.
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = i
	}

	// Fisher–Yates: each prefix draw is uniform over the remaining slots.
	var j int
	for i := n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

// NearlySorted returns 0,1,...,n-1 perturbed by a small number of random
// swaps: the adaptive-best-case shape for insertion sort.
//
// Swap count:
//   - WithDisorder(d) — exactly d swaps (0 yields sorted output).
//   - default         — max(1, n/DisorderDivisor) swaps.
//
// Complexity: O(n + swaps) time, O(n) memory.
func NearlySorted(n int, seed int64, opts ...Option) ([]int, error) {
	if err := validateLen(MethodNearlySorted, n); err != nil {
		return nil, err
	}

	cfg := newSeqConfig(opts...)

	// Start from the fully sorted identity sequence.
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = i
	}
	if n == 0 {
		// Nothing to perturb; skip RNG setup entirely.
		return out, nil
	}

	// Resolve the swap count: explicit option wins, else derive from n.
	swaps := cfg.disorder
	if swaps == disorderAuto {
		swaps = n / DisorderDivisor
		if swaps < 1 {
			swaps = 1
		}
	}

	// Apply the perturbation; i == j draws are harmless no-ops.
	rng := rngFrom(cfg, seed)
	var i, j int
	for s := 0; s < swaps; s++ {
		i, j = rng.Intn(n), rng.Intn(n)
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

// FewDistinct returns n draws from the tiny domain 0..cfg.distinct-1
// (default DefaultDistinct values): the heavy-duplicate stress shape for
// partition-based sorts and the natural fit for counting sort.
//
// Complexity: O(n) time, O(n) memory.
func FewDistinct(n int, seed int64, opts ...Option) ([]int, error) {
	if err := validateLen(MethodFewDistinct, n); err != nil {
		return nil, err
	}

	cfg := newSeqConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]int, n)
	for i := 0; i < n; i++ {
		// Uniform draw over the tiny domain; ties dominate by construction.
		out[i] = rng.Intn(cfg.distinct)
	}

	return out, nil
}

// drawValue returns one uniform sample from the inclusive interval
// [lo, hi]. The span is computed in uint64 two's-complement arithmetic, so
// extreme bounds cannot overflow, and every draw is rejection sampled:
// the distribution is exactly uniform at any width, with no modulo bias.
func drawValue(rng *rand.Rand, lo, hi int) int {
	// spanU = hi-lo+1 computed without int overflow; 0 means the whole domain.
	spanU := uint64(hi) - uint64(lo) + 1
	switch {
	case spanU == 0:
		// Full int domain: every word drawn is already a valid sample.
		return int(rng.Uint64())
	case spanU <= math.MaxInt64:
		// The stdlib bounded draw rejection-samples its tail internally.
		// lo + offset wraps exactly onto [lo, hi] under two's complement.
		return lo + int(rng.Int63n(int64(spanU)))
	default:
		// Span wider than int63: reject draws past the span directly.
		// Acceptance per draw is at least 1/2, since spanU ≥ 1<<63.
		for {
			if v := rng.Uint64(); v < spanU {
				return lo + int(v)
			}
		}
	}
}
