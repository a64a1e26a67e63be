// Package search locates values in sorted sequences and extrema of
// unimodal functions, via four distinct algorithms plus derived
// relational queries.
//
// 🚀 What is search?
//
//	The ordered-search family in one place:
//	  • Binary — bisection returning both the match index and the rank
//	    (count of strictly smaller elements, i.e. the insertion point)
//	  • Predecessor / Successor / NearestNeighbor — relational queries
//	    derived from Binary's rank
//	  • Exponential — doubling probe then bisection; shines when the
//	    target sits near the front or the extent is not cheaply known
//	  • Interpolation — proportional probing; O(log log n) expected steps
//	    on uniformly distributed numeric keys
//	  • Ternary — extremum of a unimodal function over a real interval
//
// ⚙️ Usage:
//
//	import "github.com/victorhuberta/ult-algo/search"
//
//	res := search.Binary([]int{10, 20, 30}, 20) // {Index:1 Found:true Rank:1}
//	r := search.Rank([]int{10, 20, 30}, 25)     // 2 — insertion point
//	x := search.Ternary(search.Maximum, f, 0, 10, 1e-9)
//
// Preconditions:
//
//   - Binary, Exponential, Interpolation and the derived queries require
//     the sequence to be sorted ascending; behavior on unsorted input is
//     undefined.
//   - Interpolation and NearestNeighbor additionally require numeric
//     elements (subtraction and index conversion), expressed by the
//     Numeric constraint.
//   - Ternary requires f to be unimodal over the given interval and
//     panics when the precision is below the 1e-14 termination floor.
//
// Not-found is always an explicit (index, ok) or Result outcome, never an
// error. All functions are pure and safe for concurrent use on data that
// is not concurrently mutated.
package search
