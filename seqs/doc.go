// Package seqs provides deterministic integer-sequence generators for
// exercising, testing and benchmarking sorting algorithms. It lives
// alongside the sorts package to centralize fixture construction, keeping
// benchmarks, examples and property tests DRY and reproducible.
//
// The package offers the following key components:
//
//   - Stochastic generators (seeded, reproducible):
//     – Random:        uniform values within configurable bounds.
//     – Shuffled:      a Fisher–Yates permutation of 0..n-1.
//     – NearlySorted:  ascending order perturbed by a few random swaps.
//     – FewDistinct:   heavy duplicates drawn from a tiny value domain.
//   - Deterministic generators (no RNG involved):
//     – Ascending:     0,1,2,...,n-1.
//     – Descending:    n-1,...,2,1,0.
//     – Constant:      n copies of one value.
//     – Sawtooth:      periodic ramps 0..period-1 repeating.
//     – OrganPipe:     a rise-then-fall bitonic profile.
//   - Configuration primitives:
//     – Option:        a function that mutates seqConfig before use.
//     – seqConfig:     holds RNG, value bounds, distinct/period/disorder knobs.
//   - Validation helpers:
//     – validateLen:   ensure the requested length is non-negative.
//
// Guarantees:
//
//   - Strict determinism per (n, seed, options); no time-based randomness,
//     no global state.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Structured runtime errors wrapping ErrBadSize for invalid lengths;
//     generators themselves never panic.
//   - n = 0 yields an empty, non-nil slice from every generator.
//   - O(n) time and O(n) memory per generator, tiny constant factors.
//
// See individual function documentation for detailed contracts, panic
// conditions, parameter descriptions, and performance notes.
package seqs
