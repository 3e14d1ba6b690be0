// SPDX-License-Identifier: MIT
// Package: lvlsort/seqs
//
// options.go — functional options for the seqs package.
//
// Contract (strict):
//   • Options are functional (type Option func(*seqConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding flows through each generator's
//     positional seed argument, or through a shared WithRand stream.
//   • No hidden globals; everything flows through seqConfig.
//
// AI-Hints:
//   • Prefer the positional seed for one-off reproducible fixtures.
//   • Use WithRand to share one stream across composed generator calls.
//   • WithValueBounds matters only for Random; the shaped generators
//     derive their values from n, distinct or period instead.

package seqs

import (
	"math/rand" // RNG source for stochastic generators
)

// Option customizes the behavior of a generator by mutating a seqConfig
// instance before sequence construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*seqConfig)

// WithValueBounds sets the inclusive interval [lo, hi] Random draws from.
// Panics if lo > hi; an empty interval can produce no value.
// Complexity: O(1) time, O(1) space.
func WithValueBounds(lo, hi int) Option {
	if lo > hi {
		// Fail fast: option constructors validate and panic.
		panic("seqs: WithValueBounds(lo>hi)")
	}

	return func(c *seqConfig) {
		// Inclusive bounds; drawValue handles any width without overflow.
		c.minValue, c.maxValue = lo, hi
	}
}

// WithDistinct sets the size of the FewDistinct value domain.
// Panics if k < 1; at least one value is needed to draw anything.
// Complexity: O(1) time, O(1) space.
func WithDistinct(k int) Option {
	if k < 1 {
		panic("seqs: WithDistinct(k<1)")
	}

	return func(c *seqConfig) {
		// Values are drawn uniformly from 0..k-1.
		c.distinct = k
	}
}

// WithPeriod sets the Sawtooth ramp length.
// Panics if p < 1; a ramp needs at least one step.
// Complexity: O(1) time, O(1) space.
func WithPeriod(p int) Option {
	if p < 1 {
		panic("seqs: WithPeriod(p<1)")
	}

	return func(c *seqConfig) {
		// Each ramp counts 0..p-1, then restarts.
		c.period = p
	}
}

// WithDisorder sets the exact number of random swaps NearlySorted applies.
// Zero is legal and yields fully sorted output. Panics if d < 0.
// Complexity: O(1) time, O(1) space.
func WithDisorder(d int) Option {
	if d < 0 {
		panic("seqs: WithDisorder(d<0)")
	}

	return func(c *seqConfig) {
		// Overrides the automatic max(1, n/DisorderDivisor) count.
		c.disorder = d
	}
}

// WithRand provides an explicit RNG shared across generator calls,
// overriding the positional seed argument. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("seqs: WithRand(nil)")
	}

	return func(c *seqConfig) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}
