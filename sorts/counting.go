package sorts

import "fmt"

// CountingSort — pure stable bucket-counting sort over a bounded range.
//
// Description:
//
//	Counts the occurrences of every value, turns the counts into prefix
//	sums, and places each element directly at its final position.  No
//	comparisons at all: the cost is O(n + k), where k is the width of the
//	value range. Unbeatable for dense bounded data, hopeless for sparse
//	wide ranges; a cell budget turns the pathological case into a clean
//	error instead of an allocation storm.
//
// Algorithm Outline:
//  1. Empty input returns an empty slice.
//  2. shift = max(0, -min), so every shifted value is non-negative;
//     K = max + shift is the largest shifted value.
//  3. Allocate K+1 zeroed counting cells; count[v+shift]++ per element.
//  4. Prefix sums: count[j] becomes the number of elements with shifted
//     value ≤ j.
//  5. Scan the input from END to START: place each element at
//     out[count[v+shift]-1], then decrement that cell.  The reverse scan
//     plus decrement keeps equal values in their original order.
//
// Contracts:
//   - Pure: returns a new slice; the input is left untouched.
//   - Stable (via the reverse placement scan).
//   - The cell budget (K+1 ≤ Options.MaxValueRange) is enforced BEFORE
//     any allocation; K is computed in uint64 so extreme int ranges
//     cannot overflow the check itself.
//
// Complexity:
//
//	Time   = O(n + k)
//	Memory = O(n + k), k = K+1 counting cells
//
// Errors:
//   - ErrValueRangeTooWide — the range needs more cells than the budget
//     permits; raise it with WithMaxValueRange when intended.
func CountingSort(a []int, opts ...Option) ([]int, error) {
	cfg := newOptions(opts...)

	return countingSortByKey(a, intKey, cfg.MaxValueRange)
}

// countingSortByKey is the keyed core shared by CountingSort and the
// stability checks. maxCells caps the counting array length (K+1).
func countingSortByKey[E any](in []E, key func(E) int, maxCells int) ([]E, error) {
	n := len(in)
	if n == 0 {
		return []E{}, nil
	}

	// 1) Scan for the key extremes.
	minK, maxK := key(in[0]), key(in[0])
	var k int
	for _, e := range in[1:] {
		k = key(e)
		if k < minK {
			minK = k
		}
		if k > maxK {
			maxK = k
		}
	}

	// 2) Width check in uint64: widthU equals K = max+shift exactly, via
	//    two's-complement arithmetic, even for extremes like MinInt.
	var shiftU uint64
	if minK < 0 {
		shiftU = -uint64(minK)
	}
	widthU := uint64(maxK) + shiftU
	if widthU >= uint64(maxCells) {
		// cells = K+1 would exceed the budget; refuse before allocating.
		return nil, fmt.Errorf("sorts: counting sort range width %d with cell budget %d: %w", widthU, maxCells, ErrValueRangeTooWide)
	}
	cells := int(widthU) + 1

	// 3) Count occurrences of each shifted value. The shift lifts negative
	//    minimums to zero; non-negative inputs index directly and any cells
	//    below min simply stay zero.
	count := make([]int, cells)
	for _, e := range in {
		count[cell(key(e), minK)]++
	}

	// 4) Prefix sums: count[j] = how many keys land at or before cell j.
	for j := 1; j < cells; j++ {
		count[j] += count[j-1]
	}

	// 5) Reverse placement scan: walking backwards and decrementing keeps
	//    duplicates in their original relative order.
	out := make([]E, n)
	var c int
	for i := n - 1; i >= 0; i-- {
		c = cell(key(in[i]), minK)
		count[c]--
		out[count[c]] = in[i]
	}

	return out, nil
}

// cell maps a key to its counting cell: shifted by -min when the minimum
// is negative, identity otherwise. The subtraction is exact for every
// in-budget range, including minimums near MinInt.
func cell(k, min int) int {
	if min < 0 {
		return k - min
	}

	return k
}
