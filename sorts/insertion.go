package sorts

// InsertionSort — in-place stable insertion sort.
//
// Description:
//
//	Grows a sorted prefix one element at a time: each new element is
//	walked leftward through the prefix until its place is found.  The
//	classical choice for tiny inputs and nearly-sorted data, where it
//	approaches O(n).
//
// Algorithm Outline:
//  1. For i = 1..n-1, positions [0, i) are already sorted.
//  2. Extract v = a[i]; scan leftward, shifting every element strictly
//     greater than v one slot right.
//  3. Place v at the first position whose predecessor is ≤ v (or at 0).
//
// Contracts:
//   - Sorts a in place and returns the same slice.
//   - Stable: only strictly greater predecessors shift, so equal elements
//     keep their relative order.
//   - Empty and singleton slices return unchanged (the loop never runs).
//
// Complexity:
//
//	Time   = O(n²) worst/average, O(n) on already-sorted input
//	Memory = O(1)
//
// Errors: none — total over any finite integer slice.
func InsertionSort(a []int) []int {
	insertionSortByKey(a, intKey)

	return a
}

// insertionSortByKey is the keyed core shared by InsertionSort and the
// stability checks: elements are ordered by key(e), and shifts happen only
// for strictly greater keys, which is exactly what keeps equal-key
// elements in their original relative order.
func insertionSortByKey[E any](a []E, key func(E) int) {
	var (
		i, j int // write cursor over the prefix / scan cursor
		v    E   // element being inserted
		k    int // its ordering key
	)
	for i = 1; i < len(a); i++ {
		v = a[i]
		k = key(v)

		// Shift strictly greater predecessors one slot right.
		for j = i - 1; j >= 0 && key(a[j]) > k; j-- {
			a[j+1] = a[j]
		}

		// j+1 is the insertion point: a[j] ≤ v or we ran off the front.
		a[j+1] = v
	}
}
