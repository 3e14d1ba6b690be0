// Package seqs provides validation helpers to enforce
// parameter contracts in sequence generators.
//
// Each function wraps a sentinel via wrapf when its
// precondition is violated.
package seqs

// validateLen ensures that the requested length n is ≥ 0.
// Returns "<Method>: length must be ≥ 0, got <n>: seqs: invalid length"
// wrapping ErrBadSize otherwise.
//
// Parameters:
//   - method: generator name constant, e.g. MethodRandom.
//   - n:      requested sequence length.
//
// Complexity: O(1) time and space.
func validateLen(method string, n int) error {
	if n < 0 {
		// wrap with wrapf to maintain a uniform error prefix
		return wrapf(method, ErrBadSize, "length must be ≥ 0, got %d", n)
	}

	return nil
}
