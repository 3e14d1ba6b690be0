// Package seqs contains unit tests for the configuration primitives
// (seqConfig and Option) to ensure correct defaults, override behavior and
// fail-fast validation in option constructors.
package seqs

import (
	"math"
	"math/rand"
	"testing"
)

// expectPanic fails the test unless fn panics.
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

// TestSeqConfigDefaults verifies the zero-option configuration carries the
// documented deterministic defaults.
func TestSeqConfigDefaults(t *testing.T) {
	t.Parallel() // allow this test to run in parallel

	cfg := newSeqConfig()

	// 1. By default, rng should be nil (the seed argument decides)
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}

	// 2. Value bounds should be the documented defaults
	if cfg.minValue != DefaultMinValue || cfg.maxValue != DefaultMaxValue {
		t.Errorf("default bounds: expected [%d,%d], got [%d,%d]",
			DefaultMinValue, DefaultMaxValue, cfg.minValue, cfg.maxValue)
	}

	// 3. Shape knobs should be the documented defaults
	if cfg.distinct != DefaultDistinct {
		t.Errorf("default distinct: expected %d, got %d", DefaultDistinct, cfg.distinct)
	}
	if cfg.period != DefaultPeriod {
		t.Errorf("default period: expected %d, got %d", DefaultPeriod, cfg.period)
	}

	// 4. Disorder should be the auto sentinel, resolved later against n
	if cfg.disorder != disorderAuto {
		t.Errorf("default disorder: expected %d, got %d", disorderAuto, cfg.disorder)
	}
}

// TestOptionOverrides verifies that options are applied in order with
// last-wins semantics.
func TestOptionOverrides(t *testing.T) {
	t.Parallel() // allow parallel execution

	// 1. WithValueBounds should set both bounds
	cfgBounds := newSeqConfig(WithValueBounds(1, 2))
	if cfgBounds.minValue != 1 || cfgBounds.maxValue != 2 {
		t.Errorf("WithValueBounds: expected [1,2], got [%d,%d]", cfgBounds.minValue, cfgBounds.maxValue)
	}

	// 2. Last option wins when the same knob is set twice
	cfgPeriod := newSeqConfig(WithPeriod(3), WithPeriod(5))
	if cfgPeriod.period != 5 {
		t.Errorf("override order: expected period 5, got %d", cfgPeriod.period)
	}

	// 3. WithRand should attach the exact stream instance
	expRNG := rand.New(rand.NewSource(123))
	cfgRand := newSeqConfig(WithRand(expRNG))
	if cfgRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgRand.rng)
	}

	// 4. WithDisorder(0) is legal and distinct from the auto sentinel
	cfgDisorder := newSeqConfig(WithDisorder(0))
	if cfgDisorder.disorder != 0 {
		t.Errorf("WithDisorder(0): expected 0, got %d", cfgDisorder.disorder)
	}

	// 5. WithDistinct should set the FewDistinct domain size
	cfgDistinct := newSeqConfig(WithDistinct(9))
	if cfgDistinct.distinct != 9 {
		t.Errorf("WithDistinct: expected 9, got %d", cfgDistinct.distinct)
	}
}

// TestOptionConstructorPanics verifies the fail-fast contract: meaningless
// option parameters must panic at construction time, not at generation time.
func TestOptionConstructorPanics(t *testing.T) {
	t.Parallel()

	expectPanic(t, "WithValueBounds(lo>hi)", func() { WithValueBounds(2, 1) })
	expectPanic(t, "WithDistinct(0)", func() { WithDistinct(0) })
	expectPanic(t, "WithPeriod(0)", func() { WithPeriod(0) })
	expectPanic(t, "WithDisorder(-1)", func() { WithDisorder(-1) })
	expectPanic(t, "WithRand(nil)", func() { WithRand(nil) })
}

// TestRngFrom verifies stream selection: an attached stream wins, and the
// seed fallback is reproducible.
func TestRngFrom(t *testing.T) {
	t.Parallel()

	// 1. cfg.rng, when present, is returned as-is (shared stream)
	shared := rand.New(rand.NewSource(1))
	if got := rngFrom(newSeqConfig(WithRand(shared)), 99); got != shared {
		t.Errorf("rngFrom with attached stream: expected the same instance")
	}

	// 2. Without cfg.rng, equal seeds must produce equal streams
	a := rngFrom(newSeqConfig(), 42)
	b := rngFrom(newSeqConfig(), 42)
	if x, y := a.Int63(), b.Int63(); x != y {
		t.Errorf("rngFrom seed fallback: expected equal first draws, got %d vs %d", x, y)
	}
}

// TestDrawValue verifies the inclusive interval contract, including the
// degenerate single-value interval, the full-domain span where the uint64
// width wraps to zero, and the unbiased rejection-sampled draw path.
func TestDrawValue(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))

	// 1. A single-value interval admits exactly that value
	for i := 0; i < 10; i++ {
		if v := drawValue(rng, 3, 3); v != 3 {
			t.Errorf("drawValue(3,3): expected 3, got %d", v)
		}
	}

	// 2. A small interval never escapes its bounds
	for i := 0; i < 1000; i++ {
		if v := drawValue(rng, -2, 2); v < -2 || v > 2 {
			t.Errorf("drawValue(-2,2): out of bounds value %d", v)
		}
	}

	// 3. The full int domain must not panic or loop; any value is in range
	for i := 0; i < 10; i++ {
		_ = drawValue(rng, math.MinInt, math.MaxInt)
	}

	// 4. In-int63 spans must go through the stdlib bounded draw, which
	//    rejection-samples its tail: a twin stream replays it exactly
	drawStream := rand.New(rand.NewSource(21))
	refStream := rand.New(rand.NewSource(21))
	for i := 0; i < 50; i++ {
		got := drawValue(drawStream, 10, 19)
		want := 10 + int(refStream.Int63n(10))
		if got != want {
			t.Errorf("drawValue(10,19) draw %d: expected %d, got %d", i, want, got)
		}
	}

	// 5. A span wider than int63 still lands inside the interval
	for i := 0; i < 10; i++ {
		if v := drawValue(rng, math.MinInt, math.MaxInt-1); v == math.MaxInt {
			t.Errorf("drawValue(MinInt,MaxInt-1): out of bounds value %d", v)
		}
	}
}
