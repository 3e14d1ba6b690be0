// Package lvlsort is your in-memory playground for learning, comparing,
// and exercising the classical sorting algorithms over integer sequences.
//
// 🚀 What is lvlsort?
//
//	A compact, deterministic, teaching-grade library that brings together:
//		• InsertionSort — in-place, stable, O(n²), unbeatable on tiny or nearly-sorted data
//		• MergeSort     — pure divide-and-conquer, stable, O(n·log n)
//		• HeapSort      — in-place max-heap selection, O(n·log n), no extra memory
//		• QuickSort     — in-place randomized Lomuto partitioning, expected O(n·log n),
//		  with optional sub-range sorting
//		• CountingSort  — non-comparison bucket counting, stable, O(n + k)
//		• Sort          — one dispatcher to route between all of the above
//
// ✨ Why choose lvlsort?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – seeded randomness only, reproducible runs by default
//   - Honest contracts – in-place vs. pure behavior stated and tested per algorithm
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	sorts/ — the five algorithms, the Sort dispatcher, options & sentinel errors
//	seqs/  — deterministic sequence generators (random, nearly-sorted, sawtooth, …)
//	         for tests, demos and benchmarks
//
// Quick ASCII example:
//
//	[2 3 0 1] ──sorts.Sort──▶ [0 1 2 3]
//
// Dive into examples/ for runnable scenarios, and into each package's doc.go
// for contracts, complexity tables and edge-case notes.
//
//	go get github.com/katalvlaran/lvlsort
package lvlsort
