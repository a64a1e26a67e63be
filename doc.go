// Package ultalgo is your in-memory toolbox of fundamental sequence
// algorithms — exact matching, edit distance, ordered search, permutation
// enumeration and order-statistic selection.
//
// 🚀 What is ult-algo?
//
//	A modern, generic, dependency-light library that brings together:
//		• Matching: bit-parallel exact matching (bitap) & Levenshtein distance
//		• Ordered search: binary, exponential, interpolation & ternary search
//		• Derived queries: rank, predecessor, successor, nearest neighbor
//		• Permutations: Heap's algorithm & Steinhaus–Johnson–Trotter (Even)
//		• Selection: randomized quickselect (k-th order statistic)
//
// ✨ Why choose ult-algo?
//
//   - Composable – five independent algorithm families, no cross-dependencies
//   - Generic – works over any comparable/ordered element type, not just strings
//   - Deterministic – injectable RNG for reproducible randomized algorithms
//   - Pure Go – no cgo, no I/O, no hidden global state
//
// Everything is organized under four subpackages:
//
//	match/       — bitap exact matching & Levenshtein edit distance
//	search/      — binary family, exponential, interpolation & ternary search
//	permutation/ — resumable Heap & Steinhaus–Johnson–Trotter generators
//	selection/   — quickselect over unordered data
//
// All functions are synchronous and allocation-conscious; concurrency is the
// caller's responsibility. Generator handles carry internal state and must be
// owned by one consumer at a time.
//
//	go get github.com/victorhuberta/ult-algo
package ultalgo
