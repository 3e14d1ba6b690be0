package sorts

import "math/rand"

// QuickSort — in-place randomized quicksort over an optional sub-range.
//
// Description:
//
//	Partitions the range around a uniformly random pivot (Lomuto scheme)
//	and recurses on both sides.  Randomization defeats adversarial
//	orderings, giving expected O(n·log n); the O(n²) worst case survives
//	only for an adversary with knowledge of the pivot stream or a
//	probability-zero unlucky run.
//
// Algorithm Outline (per range [start, end]):
//  1. Base case: start ≥ end ⇒ the range holds ≤ 1 element, done.
//  2. Partition: draw a uniformly random index in [start, end] and swap
//     its value to position end — that value x is the pivot.  Walk j from
//     start to end-1 keeping a boundary i (initially start-1): whenever
//     a[j] ≤ x, advance i and swap a[i], a[j].  Finally advance i once
//     more and swap a[i], a[end]; the pivot now rests at its final
//     position i.
//  3. Recurse on [start, i-1] and [i+1, end].
//
// Contracts:
//   - Sorts a in place within [Start, End] (inclusive; default the whole
//     slice via WithRange / WholeSequence) and returns the same slice.
//   - Elements outside the range are untouched.
//   - Not stable.
//   - Pivot draws follow the package RNG policy: deterministic default
//     stream unless WithSeed / WithRand override it (see rng.go).
//
// Complexity:
//
//	Time   = O(n·log n) expected, O(n²) worst case
//	Memory = O(log n) expected recursion depth, O(n) worst case
//
// Errors:
//   - ErrInvalidRange — sub-range outside [0, n-1], or start > end+1
//     beyond the defined empty base case.
//
// Example:
//
//	a := []int{9, 4, 7, 1}
//	_, err := QuickSort(a, WithRange(1, 3), WithSeed(42)) // a is now [9 1 4 7]
func QuickSort(a []int, opts ...Option) ([]int, error) {
	cfg := newOptions(opts...)

	// Validate the requested range against the actual length first; an
	// empty resolved range makes the recursion below a no-op.
	start, end, err := resolveRange(len(a), cfg)
	if err != nil {
		return nil, err
	}

	quickSortRange(a, start, end, rngOrDefault(cfg.Rand))

	return a, nil
}

// quickSortRange sorts a[start..end] (inclusive) in place. Callers
// guarantee 0 ≤ start ≤ end+1 and end ≤ len(a)-1.
func quickSortRange(a []int, start, end int, rng *rand.Rand) {
	if start >= end {
		return // ≤ 1 element: already sorted
	}

	p := partition(a, start, end, rng)
	quickSortRange(a, start, p-1, rng)
	quickSortRange(a, p+1, end, rng)
}

// partition applies the Lomuto scheme to a[start..end] with a uniformly
// random pivot and returns the pivot's final position.
func partition(a []int, start, end int, rng *rand.Rand) int {
	// Uniform draw over the inclusive range, then park the pivot at end.
	p := start + rng.Intn(end-start+1)
	a[p], a[end] = a[end], a[p]
	pivot := a[end]

	// i trails the boundary of the ≤-pivot region.
	i := start - 1
	for j := start; j < end; j++ {
		if a[j] <= pivot {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}

	// Place the pivot just past the ≤ region: its final sorted position.
	i++
	a[i], a[end] = a[end], a[i]

	return i
}
