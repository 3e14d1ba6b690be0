// SPDX-License-Identifier: MIT
// Package: lvlsort/seqs
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • seqConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newSeqConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng        = nil                (seed argument decides the stream)
//   • minValue   = DefaultMinValue    (-10000)
//   • maxValue   = DefaultMaxValue    (+10000)
//   • distinct   = DefaultDistinct    (4)
//   • period     = DefaultPeriod      (8)
//   • disorder   = disorderAuto       (resolved to max(1, n/DisorderDivisor))
//
// AI-Hints:
//   • Set WithRand to share one stream across composed generator calls.
//   • Override WithValueBounds to match a counting-sort budget exactly.
//   • WithDisorder(0) yields fully sorted output from NearlySorted.

package seqs

import (
	"math/rand" // RNG for stochastic generators
)

// disorderAuto marks the NearlySorted swap count as "derive from n".
// Explicit WithDisorder values are always ≥ 0, so -1 cannot collide.
const disorderAuto = -1

// seqConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type seqConfig struct {
	// RNG for stochastic draws; nil means "seed argument decides".
	rng *rand.Rand
	// Inclusive value bounds for Random draws.
	minValue int
	maxValue int
	// Size of the FewDistinct value domain (≥ 1).
	distinct int
	// Sawtooth ramp length (≥ 1).
	period int
	// NearlySorted swap count (≥ 0), or disorderAuto.
	disorder int
}

// newSeqConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newSeqConfig(opts ...Option) seqConfig {
	// Start with strict, deterministic defaults.
	cfg := seqConfig{
		rng:      nil,             // no RNG unless explicitly set
		minValue: DefaultMinValue, // -10000
		maxValue: DefaultMaxValue, // +10000
		distinct: DefaultDistinct, // 4
		period:   DefaultPeriod,   // 8
		disorder: disorderAuto,    // derive from n
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg seqConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
