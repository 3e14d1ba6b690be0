// Package sorts defines the algorithm selector, functional options and
// sentinel errors shared by the five sorting entry points.
package sorts

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors returned by the sorts package.
var (
	// ErrInvalidRange indicates that a requested sub-range lies outside
	// [0, n-1], or that start exceeds end+1 beyond the defined empty base
	// case. Returned by QuickSort and Sort; never a panic.
	ErrInvalidRange = errors.New("sorts: sub-range out of bounds")

	// ErrRangeUnsupported indicates that a non-default sub-range was
	// combined with an algorithm other than Quick. Sub-range sorting is a
	// QuickSort contract; other algorithms always order the whole slice.
	ErrRangeUnsupported = errors.New("sorts: sub-range requires the Quick algorithm")

	// ErrValueRangeTooWide indicates that CountingSort would need more
	// counting cells than Options.MaxValueRange permits. The check runs
	// before any allocation, so a hostile value range cannot exhaust memory.
	ErrValueRangeTooWide = errors.New("sorts: value range exceeds MaxValueRange")

	// ErrUnsupportedAlgorithm indicates an Algorithm value outside the
	// declared enum was passed to Sort.
	ErrUnsupportedAlgorithm = errors.New("sorts: unsupported algorithm")
)

// Algorithm selects which sorting algorithm the Sort dispatcher runs.
//
//   - Insertion — in-place, stable, O(n²); best on tiny or nearly-sorted input.
//   - Merge     — pure, stable, O(n·log n); allocates the result.
//   - Heap      — in-place, O(n·log n), O(1) extra memory; not stable.
//   - Quick     — in-place, randomized pivot, expected O(n·log n); not stable;
//     the only algorithm honoring WithRange.
//   - Counting  — pure, stable, O(n + k) over a bounded value range.
type Algorithm int

const (
	// Insertion selects the in-place stable insertion sort.
	Insertion Algorithm = iota

	// Merge selects the pure stable merge sort.
	Merge

	// Heap selects the in-place heap sort.
	Heap

	// Quick selects the in-place randomized quicksort (the default).
	Quick

	// Counting selects the pure stable counting sort.
	Counting
)

// String returns the canonical algorithm name, or "Algorithm(n)" for
// values outside the enum.
func (a Algorithm) String() string {
	switch a {
	case Insertion:
		return "InsertionSort"
	case Merge:
		return "MergeSort"
	case Heap:
		return "HeapSort"
	case Quick:
		return "QuickSort"
	case Counting:
		return "CountingSort"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// WholeSequence is the End sentinel meaning "the last index of the input".
// It keeps the default range valid for every length, including zero.
const WholeSequence = -1

// DefaultMaxValueRange caps the number of counting cells CountingSort may
// allocate (cells = K+1, one int each): 1<<22 cells ≈ 32 MB of counters.
// Raise it per call via WithMaxValueRange when wider ranges are intended.
const DefaultMaxValueRange = 1 << 22

// Options configures the sorting entry points.
//
//   - Algorithm: which sort the Sort dispatcher runs (default Quick).
//   - Start, End: inclusive sub-range for QuickSort; End=WholeSequence
//     resolves to the last index. Validated at call time against len(a).
//   - Rand: explicit RNG for pivot draws; nil selects the fixed
//     deterministic default stream (see rng.go).
//   - MaxValueRange: CountingSort cell budget; must be positive.
type Options struct {
	Algorithm     Algorithm  // dispatcher routing target
	Start         int        // first index of the sub-range (QuickSort only)
	End           int        // last index of the sub-range, or WholeSequence
	Rand          *rand.Rand // pivot source; nil means the default stream
	MaxValueRange int        // maximum counting cells for CountingSort
}

// Option represents a functional option for configuring a sorting call.
type Option func(*Options)

// WithAlgorithm routes the Sort dispatcher to the given algorithm.
// Unknown values surface as ErrUnsupportedAlgorithm at dispatch time.
func WithAlgorithm(algo Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = algo
	}
}

// WithRange restricts QuickSort to the inclusive positions [start, end].
// Pass End=WholeSequence to mean "through the last index". The bounds are
// validated against the slice length when the sort runs; out-of-bounds
// ranges return ErrInvalidRange rather than panicking, and start == end+1
// is the legal empty range.
func WithRange(start, end int) Option {
	return func(o *Options) {
		o.Start = start
		o.End = end
	}
}

// WithSeed installs a deterministic pivot stream derived from seed.
// Policy: seed==0 selects the fixed default stream, so a zero seed never
// silently degrades to time-based randomness.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithRand installs an explicit RNG for pivot draws. Panics on nil to
// surface programmer error early; prefer WithSeed for reproducible runs.
// Note that *rand.Rand is not goroutine-safe: do not share one stream
// across concurrent sorts.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast: option constructors validate and panic.
		panic("sorts: WithRand(nil)")
	}

	return func(o *Options) {
		o.Rand = r
	}
}

// WithMaxValueRange overrides the CountingSort cell budget (cells = K+1).
// Panics if limit < 1; a non-positive budget would reject every input.
func WithMaxValueRange(limit int) Option {
	if limit < 1 {
		panic("sorts: WithMaxValueRange(limit<1)")
	}

	return func(o *Options) {
		o.MaxValueRange = limit
	}
}

// DefaultOptions returns an Options value initialized with the package
// defaults. Use it as the base for functional-option overrides.
//
// Defaults:
//   - Algorithm:     Quick (expected O(n·log n), in place).
//   - Start, End:    0, WholeSequence (the entire slice).
//   - Rand:          nil (the fixed deterministic default stream).
//   - MaxValueRange: DefaultMaxValueRange.
func DefaultOptions() Options {
	return Options{
		Algorithm:     Quick,
		Start:         0,
		End:           WholeSequence,
		Rand:          nil,
		MaxValueRange: DefaultMaxValueRange,
	}
}

// newOptions folds opts over DefaultOptions in order (last wins).
func newOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// intKey is the identity key instantiating the keyed cores for plain ints.
func intKey(v int) int { return v }
