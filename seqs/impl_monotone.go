// SPDX-License-Identifier: MIT
// Package: lvlsort/seqs
//
// impl_monotone.go — deterministic monotone and constant sequences.
//
// Contract:
//   • n ≥ 0 (else ErrBadSize via validateLen); n = 0 → empty non-nil slice.
//   • No RNG involved: identical output on every call with the same n.
//   • Returns only sentinel-wrapped errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) single pass.
//   • Space: O(n) for the result, O(1) extra.
//
// Determinism:
//   • Ascending(n)[i]  = i.
//   • Descending(n)[i] = n-1-i.
//   • Constant(n,v)[i] = v.

package seqs

// Ascending returns the already-sorted sequence 0,1,...,n-1.
// The best case for adaptive sorts and the baseline for IsSorted checks.
func Ascending(n int) ([]int, error) {
	// Validate parameter domain early (fail fast, no work on invalid input).
	if err := validateLen(MethodAscending, n); err != nil {
		return nil, err
	}

	// Allocate the output buffer exactly once (tight O(n) memory).
	out := make([]int, n)
	for i := 0; i < n; i++ {
		// Identity fill: position i carries value i.
		out[i] = i
	}

	return out, nil
}

// Descending returns the reversed sequence n-1,...,1,0, the classic
// adversarial input for naive pivot selection.
func Descending(n int) ([]int, error) {
	if err := validateLen(MethodDescending, n); err != nil {
		return nil, err
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		// Mirror fill: position i carries value n-1-i.
		out[i] = n - 1 - i
	}

	return out, nil
}

// Constant returns n copies of v, the degenerate all-ties input that
// stresses duplicate handling and counting-cell reuse.
func Constant(n, v int) ([]int, error) {
	if err := validateLen(MethodConstant, n); err != nil {
		return nil, err
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		// Uniform fill: every position carries the same value.
		out[i] = v
	}

	return out, nil
}
