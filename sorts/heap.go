package sorts

// HeapSort — in-place selection sort over a binary max-heap.
//
// Description:
//
//	Reinterprets the slice as a binary max-heap (0-indexed: children of i
//	sit at 2i+1 and 2i+2), then repeatedly swaps the root maximum into the
//	growing sorted suffix and repairs the shrunken heap.  Runs in
//	guaranteed O(n·log n) with no extra memory, at the price of stability.
//
// Algorithm Outline:
//  1. Build phase: sift down every internal node from n/2-1 to 0, so each
//     subtree satisfies the heap invariant before its root is visited.
//     Total cost O(n).
//  2. Extraction phase: for i = n-1..1, swap a[0] (the maximum of the
//     unsorted prefix) with a[i], then sift the new root down within
//     a[:i].  After each step, a[i:] is the final sorted suffix.
//
// Heap invariant: every non-leaf position holds a value ≥ both children.
//
// Contracts:
//   - Sorts a in place and returns the same slice.
//   - Not stable: heap swaps reorder equal elements arbitrarily.
//   - n ≤ 1 performs no heapify calls.
//
// Complexity:
//
//	Time   = O(n·log n) worst case
//	Memory = O(1)
//
// Errors: none; child indices are bounds-checked against the current heap
// length, never against the full slice.
func HeapSort(a []int) []int {
	n := len(a)

	// 1) Build phase: heapify internal nodes bottom-up. Leaves (indices
	//    ≥ n/2) are one-element heaps already.
	for i := n/2 - 1; i >= 0; i-- {
		maxHeapify(a, i)
	}

	// 2) Extraction phase: move the current maximum behind the heap and
	//    repair the remaining prefix.
	for i := n - 1; i >= 1; i-- {
		a[0], a[i] = a[i], a[0]
		maxHeapify(a[:i], 0)
	}

	return a
}

// maxHeapify restores the max-heap invariant for the subtree rooted at i,
// assuming both child subtrees already satisfy it. The classical tail
// recursion is flattened into a loop, bounding stack use at O(1).
//
// Complexity: O(log n), bounded by the tree height.
func maxHeapify(heap []int, i int) {
	var left, right, largest int
	for {
		left, right = 2*i+1, 2*i+2
		largest = i

		// Children compete only while inside the current heap bounds.
		if left < len(heap) && heap[left] > heap[largest] {
			largest = left
		}
		if right < len(heap) && heap[right] > heap[largest] {
			largest = right
		}
		if largest == i {
			return // both children ≤ parent: subtree is a heap
		}

		// Swap the larger child up and continue from its old position.
		heap[i], heap[largest] = heap[largest], heap[i]
		i = largest
	}
}
