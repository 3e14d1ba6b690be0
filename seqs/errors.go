// SPDX-License-Identifier: MIT
// Package: lvlsort/seqs
//
// errors.go — sentinel errors for the seqs package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w via wrapf below.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// AI-Hints (practical guidance for implementers and LLMs):
//   • Wrap with method context: wrapf(MethodRandom, ErrBadSize, "length must be ≥ 0, got %d", n).
//   • Return ONLY these sentinels for validation classes (length).
//   • Check with errors.Is in tests and production code; avoid string comparisons.

package seqs

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates that a requested sequence length is negative.
// Classification: Validation error (parameters).
// Typical origins: any generator called with n < 0.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("seqs: invalid length")

// wrapf attaches a method-name prefix and formatted context to a sentinel,
// preserving it for errors.Is. The result reads
// "<Method>: <formatted message>: <sentinel>".
//
// Parameters:
//   - method: canonical generator name, e.g. MethodRandom.
//   - err:    the sentinel to preserve.
//   - format: format string for the context message.
//   - args:   values for the format placeholders.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func wrapf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
