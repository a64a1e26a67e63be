// Package search defines shared types for the ordered-search family.
package search

// Numeric constrains element types that support subtraction and lossless
// conversion through float64, as required by Interpolation's proportional
// probe and NearestNeighbor's distance comparison. The other search
// variants only need ordering.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Target selects which extremum Ternary converges to.
type Target int

const (
	// Minimum searches for the single local minimum of the function.
	Minimum Target = iota

	// Maximum searches for the single local maximum of the function.
	Maximum
)

// Result is the outcome of a Binary search.
//
// Fields:
//   - Index — position of an exact match; -1 when Found is false.
//   - Found — whether the probed value occurs in the sequence.
//   - Rank  — count of elements strictly less than the probed value,
//     which is also the insertion point keeping the sequence sorted.
//     Always in [0, len].
//
// Invariant: when Found is true, Index == Rank (the match reported is the
// leftmost occurrence). Result construction enforces this; a rank greater
// than a found index signals a defect in the algorithm itself and panics.
type Result struct {
	Index int
	Found bool
	Rank  int
}

// makeResult assembles a Result, guarding the Rank/Index invariant.
// index < 0 means not found.
func makeResult(index, rank int) Result {
	if index >= 0 && rank > index {
		panic("search: result rank exceeds matched index")
	}
	return Result{Index: index, Found: index >= 0, Rank: rank}
}
