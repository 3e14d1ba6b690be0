// Package sorts_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating functionality that already lives in
// focused test files.
package sorts_test

import (
	"sort"
	"testing"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed used for RNG-based cases. Zero is
	// deliberate: the package policy maps it to the fixed default stream,
	// so these tests also pin that policy down.
	seedDet = int64(0)

	// seedAlt is a second stream for cases that need decorrelated input.
	seedAlt = int64(42)

	// nSmall/nMedium/nBig are the randomized-suite sizes; nBig matches the
	// classical 10k-elements acceptance scenario.
	nSmall  = 10
	nMedium = 1000
	nBig    = 10000
)

// fixtureSorted returns the already-sorted boundary fixture.
func fixtureSorted() []int { return []int{1, 2, 3} }

// fixtureRotated returns a small permutation with no duplicates.
func fixtureRotated() []int { return []int{2, 3, 0, 1} }

// fixtureMixed returns the canonical mixed-sign fixture.
func fixtureMixed() []int { return []int{100, 5, -16, 85, -7, 7, 1} }

// fixtureMixedSorted returns fixtureMixed in non-decreasing order.
func fixtureMixedSorted() []int { return []int{-16, -7, 1, 5, 7, 85, 100} }

// fixtureDuplicates returns a fixture with heavy duplication.
func fixtureDuplicates() []int { return []int{5, 1, 5, 5, 1, 3, 3} }

// fixtureDuplicatesSorted returns fixtureDuplicates in non-decreasing order.
func fixtureDuplicatesSorted() []int { return []int{1, 1, 3, 3, 5, 5, 5} }

// cloneInts returns an independent copy of a (nil-safe, keeps emptiness).
func cloneInts(a []int) []int {
	if a == nil {
		return nil
	}
	cp := make([]int, len(a))
	copy(cp, a)

	return cp
}

// sortedRef returns a freshly sorted copy of a using the standard library
// as the trusted reference.
func sortedRef(a []int) []int {
	ref := cloneInts(a)
	sort.Ints(ref)

	return ref
}

// sharesBacking reports whether two non-empty slices alias the same
// underlying array (the in-place contract check).
func sharesBacking(t *testing.T, a, b []int) bool {
	t.Helper()
	if len(a) == 0 || len(b) == 0 {
		t.Fatalf("sharesBacking needs non-empty slices (got %d and %d)", len(a), len(b))
	}

	return &a[0] == &b[0]
}
