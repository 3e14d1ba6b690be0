// Package sorts implements five classical sorting algorithms over slices
// of signed integers, with a unified dispatcher, deterministic randomness,
// and explicit in-place vs. pure contracts.
//
// 🚀 What is sorts?
//
//	A reference implementation of the textbook sorting family.  Each
//	algorithm is a small, self-contained, stateless function; none calls
//	another.  They are widely used as:
//	  • Teaching material for invariants & complexity analysis
//	  • Building blocks for hybrid sorts (introsort, timsort, …)
//	  • Baselines when benchmarking specialized orderings
//
// ✨ Key features:
//   - InsertionSort: in-place, stable, O(n²) — excellent on tiny/nearly-sorted input
//   - MergeSort: pure (input untouched), stable, O(n·log n) time, O(n) memory
//   - HeapSort: in-place, O(n·log n), O(1) extra memory (not stable)
//   - QuickSort: in-place, randomized Lomuto pivot, expected O(n·log n),
//     optional inclusive sub-range via WithRange (not stable)
//   - CountingSort: pure, stable, O(n + k) over a bounded value range,
//     guarded against pathological ranges via WithMaxValueRange
//   - Sort: routes to any of the five via WithAlgorithm (default Quick)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlsort/sorts"
//
//	a := []int{100, 5, -16, 85, -7, 7, 1}
//
//	// direct call
//	sorts.InsertionSort(a)
//
//	// or through the dispatcher
//	out, err := sorts.Sort(a, sorts.WithAlgorithm(sorts.Merge))
//
//	// quicksort on a sub-range, reproducible pivots
//	_, err = sorts.QuickSort(a, sorts.WithRange(1, 5), sorts.WithSeed(42))
//
// Performance:
//
//   - InsertionSort: O(n²) time worst/average, O(1) memory
//   - MergeSort:     O(n·log n) time, O(n) memory
//   - HeapSort:      O(n·log n) time, O(1) memory
//   - QuickSort:     O(n·log n) expected / O(n²) worst, O(log n) stack expected
//   - CountingSort:  O(n + k) time, O(k) memory, k = value range
//
// Error semantics are strict sentinels (ErrInvalidRange, ErrValueRangeTooWide,
// ErrRangeUnsupported, ErrUnsupportedAlgorithm); branch with errors.Is.
// Algorithms never panic at runtime.
//
// See examples in example_test.go for exact input/output walkthroughs.
package sorts
