// Package permutation lazily enumerates all permutations of a sequence
// via two distinct minimal-change algorithms, through resumable
// generator handles.
//
// 🚀 What is permutation?
//
//	Two stateful generators with the same resumable shape:
//	  • HeapGen — Heap's algorithm; each permutation differs from the
//	    previous by a single (possibly non-adjacent) swap
//	  • SJTGen — Steinhaus–Johnson–Trotter with Even's speedup; each
//	    permutation differs by a single swap of two *adjacent* elements
//
// ✨ Key behaviors:
//   - the first call to Next returns the sequence unmodified
//   - each full cycle emits exactly n! permutations, then Next signals
//     exhaustion once and the generator resets itself; the following
//     call starts the next full cycle — restarting is intentional,
//     not an error state
//   - every emitted permutation is a fresh copy, safe to retain
//
// ⚙️ Usage:
//
//	import "github.com/victorhuberta/ult-algo/permutation"
//
//	gen := permutation.NewHeap([]int{1, 2, 3})
//	for p, ok := gen.Next(); ok; p, ok = gen.Next() {
//	    fmt.Println(p)
//	}
//
// Concurrency:
//
//	A generator instance carries mutable state across calls and must be
//	owned by a single consumer at a time; instances are not safe for
//	concurrent use. Distinct instances are independent.
//
// Performance:
//
//	Each Next call is O(n) (snapshot copy dominates; the state update is
//	O(1) amortized for Heap and O(n) for SJT). Memory is O(n) per handle.
package permutation
