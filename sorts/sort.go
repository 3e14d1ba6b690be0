// Package sorts - unified dispatcher for the sorting algorithms.
//
// This file provides the canonical entry point to run any of the five
// sorts behind one signature:
//
//   - Sort: resolve Options, validate the algorithm/range combination,
//     then route to InsertionSort / MergeSort / HeapSort / QuickSort /
//     CountingSort.
//
// Design principles:
//   - Deterministic: seed routing to QuickSort; no time-based randomness.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where a
//     sentinel suffices.
//   - The chosen algorithm's own contract applies: in-place algorithms
//     return the mutated input, pure algorithms return a fresh slice.
package sorts

// Sort routes a to the algorithm selected by WithAlgorithm (default
// Quick) and returns the sorted result.
//
// Contracts:
//   - Insertion/Heap/Quick sort a in place and return the same slice;
//     Merge/Counting leave a untouched and return a new slice.
//   - WithRange is honored by Quick only; combining a non-default range
//     with any other algorithm returns ErrRangeUnsupported instead of
//     silently ignoring it.
//
// Errors: ErrRangeUnsupported, ErrUnsupportedAlgorithm, plus the routed
// algorithm's own sentinels (ErrInvalidRange, ErrValueRangeTooWide).
//
// Complexity: per chosen algorithm (see each entry point).
func Sort(a []int, opts ...Option) ([]int, error) {
	cfg := newOptions(opts...)

	// Stage 1 - option compatibility: sub-ranges belong to Quick.
	if !rangeIsDefault(cfg) && cfg.Algorithm != Quick {
		return nil, ErrRangeUnsupported
	}

	// Stage 2 - route by algorithm.
	switch cfg.Algorithm {
	case Insertion:
		return InsertionSort(a), nil
	case Merge:
		return MergeSort(a), nil
	case Heap:
		return HeapSort(a), nil
	case Quick:
		return QuickSort(a, opts...)
	case Counting:
		return CountingSort(a, opts...)
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

// IsSorted reports whether a is already in non-decreasing order.
// Trivially true for n ≤ 1.
//
// Complexity: O(n) time, O(1) space.
func IsSorted(a []int) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return false
		}
	}

	return true
}
