// Package sorts - sub-range validation shared by QuickSort and Sort.
//
// Design principles:
//   - Deterministic, side-effect free helpers.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go, wrapped with the offending bounds for context.
//   - O(1) checks; validation never touches the slice contents.
package sorts

import "fmt"

// resolveRange maps Options onto a concrete inclusive sub-range of a
// length-n sequence.
//
// Contract:
//   - End == WholeSequence resolves to n-1, which keeps the default range
//     legal for every n, including n == 0.
//   - start == end+1 (within bounds) is the legal empty range: callers
//     treat it as a no-op, mirroring the recursion base case.
//   - Everything else outside [0, n-1] returns ErrInvalidRange.
//
// Complexity: O(1).
func resolveRange(n int, cfg Options) (int, int, error) {
	start, end := cfg.Start, cfg.End
	if end == WholeSequence {
		end = n - 1
	}

	// Legal empty range: one past the end boundary, still inside the slice.
	if start == end+1 && start >= 0 && end <= n-1 {
		return start, end, nil
	}

	// Reject everything that is neither the empty base case nor a
	// well-formed inclusive range. start > end here means start > end+1.
	if start < 0 || start > end || end > n-1 {
		return 0, 0, fmt.Errorf("sorts: range [%d,%d] on length %d: %w", cfg.Start, cfg.End, n, ErrInvalidRange)
	}

	return start, end, nil
}

// rangeIsDefault reports whether cfg still addresses the whole sequence.
// The dispatcher uses it to reject sub-ranges on non-Quick algorithms.
//
// Complexity: O(1).
func rangeIsDefault(cfg Options) bool {
	return cfg.Start == 0 && cfg.End == WholeSequence
}
