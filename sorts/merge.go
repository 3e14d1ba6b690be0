package sorts

// MergeSort — pure stable divide-and-conquer sort.
//
// Description:
//
//	Splits the input at the midpoint, recursively sorts both halves, and
//	merges them with two cursors.  The input slice is never mutated, not
//	even at the base case: callers always receive a freshly allocated
//	result and keep their original ordering intact.
//
// Algorithm Outline:
//  1. Base case n ≤ 1: return a copy of the input.
//  2. Split at mid = ⌊n/2⌋ into a[:mid] and a[mid:].
//  3. Recursively sort each half.
//  4. Merge in exactly n steps: an exhausted half yields to the other;
//     otherwise the smaller head is taken, and on ties the LEFT head wins,
//     preserving stability across the merge.
//
// Contracts:
//   - Pure: returns a new slice; the input is left untouched.
//   - Stable: ties always favor the left half.
//   - Empty input yields an empty (non-nil) slice.
//
// Complexity:
//
//	Time   = O(n·log n)
//	Memory = O(n) for the result plus O(log n) recursion depth
//
// Errors: none.
func MergeSort(a []int) []int {
	return mergeSortByKey(a, intKey)
}

// mergeSortByKey is the keyed recursive core shared by MergeSort and the
// stability checks. It never aliases the input: the base case copies, and
// every merge allocates its own output.
func mergeSortByKey[E any](a []E, key func(E) int) []E {
	n := len(a)
	if n <= 1 {
		// Copy even the trivial cases so the result never shares storage
		// with the caller's slice.
		out := make([]E, n)
		copy(out, a)

		return out
	}

	mid := n / 2
	left := mergeSortByKey(a[:mid], key)
	right := mergeSortByKey(a[mid:], key)

	return mergeByKey(left, right, key)
}

// mergeByKey combines two sorted runs into one sorted slice in exactly
// len(left)+len(right) steps. Ties take the left element first.
func mergeByKey[E any](left, right []E, key func(E) int) []E {
	out := make([]E, 0, len(left)+len(right))

	var li, ri int // cursors into left and right
	for li < len(left) || ri < len(right) {
		switch {
		case li == len(left):
			// Left exhausted: drain right.
			out = append(out, right[ri])
			ri++
		case ri == len(right):
			// Right exhausted: drain left.
			out = append(out, left[li])
			li++
		case key(left[li]) <= key(right[ri]):
			// Smaller head, or a tie: left wins for stability.
			out = append(out, left[li])
			li++
		default:
			out = append(out, right[ri])
			ri++
		}
	}

	return out
}
