// Package selection finds order statistics of unordered sequences via
// randomized partitioning.
//
// 🚀 What is selection?
//
//	QuickSmallest returns a pointer to the k-th smallest element
//	(0-indexed) of a slice in expected O(n) time, partially reordering
//	the slice in place — no full sort happens.
//
// ✨ Key features:
//   - expected O(n): a uniformly random pivot defeats adversarial input
//     orderings; the O(n²) worst case needs adversarial *randomness*
//   - in place: the slice is partitioned around pivots as a side effect
//   - deterministic when needed: the randomness source is an explicit
//     parameter, so a fixed seed reproduces the exact pivot sequence
//
// ⚙️ Usage:
//
//	import "github.com/victorhuberta/ult-algo/selection"
//
//	list := []int{10, -30, 5, -2, 7, 0}
//	third := selection.QuickSmallest(list[1:5], 2, nil) // *third == 5
//
// Panics:
//
//	QuickSmallest panics when k is out of range for the slice — a caller
//	precondition violation, not a recoverable condition.
//
// Concurrency:
//
//	The function is synchronous and owns no state beyond the call, but it
//	mutates the caller's slice; the usual shared-mutable-data discipline
//	applies. A *rand.Rand is not goroutine-safe either — give each
//	concurrent caller its own.
package selection
