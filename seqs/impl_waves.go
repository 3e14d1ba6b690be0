// SPDX-License-Identifier: MIT
// Package: lvlsort/seqs
//
// impl_waves.go — deterministic patterned sequences (sawtooth, organ pipe).
//
// Contract:
//   • n ≥ 0 (else ErrBadSize via validateLen); n = 0 → empty non-nil slice.
//   • No RNG involved: identical output on every call with the same inputs.
//   • Returns only sentinel-wrapped errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) single pass.
//   • Space: O(n) for the result, O(1) extra.
//
// Determinism:
//   • Sawtooth(n)[i]  = i mod period (default DefaultPeriod).
//   • OrganPipe(n)[i] = min(i, n-1-i), a rise-then-fall bitonic profile.

package seqs

// Sawtooth returns repeating ramps 0,1,...,period-1,0,1,...: many short
// pre-sorted runs with periodic resets, a pathological shape for adaptive
// sorts that assume one long run.
//
// Options:
//   - WithPeriod(p) — override the ramp length (default DefaultPeriod).
//
// Complexity: O(n) time, O(n) memory.
func Sawtooth(n int, opts ...Option) ([]int, error) {
	// Validate parameter domain early (fail fast, no work on invalid input).
	if err := validateLen(MethodSawtooth, n); err != nil {
		return nil, err
	}

	// Resolve deterministic configuration once (O(len(opts))).
	cfg := newSeqConfig(opts...)

	// Allocate the output buffer exactly once (tight O(n) memory).
	out := make([]int, n)
	for i := 0; i < n; i++ {
		// Phase position inside the current ramp.
		out[i] = i % cfg.period
	}

	return out, nil
}

// OrganPipe returns the bitonic profile 0,1,...,peak,...,1,0: sorted in
// both directions from the middle, a classic quicksort stress shape.
// Odd n peaks at a single middle element; even n repeats the peak twice.
//
// Complexity: O(n) time, O(n) memory.
func OrganPipe(n int) ([]int, error) {
	if err := validateLen(MethodOrganPipe, n); err != nil {
		return nil, err
	}

	out := make([]int, n)
	var mirror int
	for i := 0; i < n; i++ {
		// Distance to the nearer end decides the height at position i.
		mirror = n - 1 - i
		if i <= mirror {
			out[i] = i
		} else {
			out[i] = mirror
		}
	}

	return out, nil
}
