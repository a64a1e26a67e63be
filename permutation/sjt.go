package permutation

import (
	"cmp"
	"slices"
)

// direction of an element, attached to its current position.
type direction int8

const (
	dirStay   direction = 0
	dirLower  direction = -1 // move toward lower index
	dirHigher direction = +1 // move toward higher index
)

// SJTGen — resumable permutation generator using the
// Steinhaus–Johnson–Trotter algorithm with Even's speedup.
//
// Description:
//
//	Every successive permutation is produced by swapping exactly two
//	adjacent elements, the strongest minimal-change guarantee. Elements
//	must be ordered (not just comparable): the algorithm always moves
//	the largest element that still has a nonzero direction.
//
// State:
//
//	A direction flag per element: initially the first element stays and
//	all others point toward lower indexes. After a move, the moved
//	element's direction is cleared when it hits a boundary or faces a
//	larger neighbor, and every larger element is re-aimed at the moved
//	element's new position. The full n!-cycle guarantee holds for
//	sequences given in ascending order of distinct elements.
//
// On exhaustion the generator restores both the directions and the
// original arrangement, so every cycle emits the identical set in the
// identical order. Not safe for concurrent use.
type SJTGen[T cmp.Ordered] struct {
	sequence []T
	initial  []T // pristine arrangement for the cycle reset
	dirs     []direction
	started  bool
}

// NewSJT returns a generator over sequence. The slice is retained and
// permuted in place across Next calls; the n!-cycle guarantee assumes
// distinct elements in ascending order.
func NewSJT[T cmp.Ordered](sequence []T) *SJTGen[T] {
	g := &SJTGen[T]{
		sequence: sequence,
		initial:  slices.Clone(sequence),
		dirs:     make([]direction, len(sequence)),
	}
	g.resetDirections()
	return g
}

// resetDirections restores the initial flags: first element stays, all
// others move toward lower indexes.
func (g *SJTGen[T]) resetDirections() {
	for i := range g.dirs {
		g.dirs[i] = dirLower
	}
	if len(g.dirs) > 0 {
		g.dirs[0] = dirStay
	}
}

// Next returns the next permutation, or (nil, false) once the cycle of
// n! permutations is exhausted. Exhaustion resets the generator; the
// call after it starts a fresh cycle.
//
// Complexity: O(n) per call.
func (g *SJTGen[T]) Next() ([]T, bool) {
	// The first call of a cycle emits the sequence unmodified.
	if !g.started {
		g.started = true
		return slices.Clone(g.sequence), true
	}

	n := len(g.sequence)

	// Largest-valued element with a nonzero direction whose move stays
	// inside the sequence.
	p := -1
	for i := 0; i < n; i++ {
		if g.dirs[i] == dirStay {
			continue
		}
		if j := i + int(g.dirs[i]); j < 0 || j >= n {
			continue
		}
		if p < 0 || g.sequence[i] > g.sequence[p] {
			p = i
		}
	}
	if p < 0 {
		// No mobile element: the cycle is complete. Restore the initial
		// configuration so the next call restarts it.
		copy(g.sequence, g.initial)
		g.resetDirections()
		g.started = false
		return nil, false
	}

	// Swap the chosen element with its neighbor in its direction; the
	// direction flags travel with their elements.
	d := g.dirs[p]
	q := p + int(d)
	g.sequence[p], g.sequence[q] = g.sequence[q], g.sequence[p]
	g.dirs[p], g.dirs[q] = g.dirs[q], g.dirs[p]

	// Clear the direction at a boundary or when facing a larger element.
	if next := q + int(d); next < 0 || next >= n || g.sequence[next] > g.sequence[q] {
		g.dirs[q] = dirStay
	}

	// Re-aim every larger element at the moved element's new position.
	for i := 0; i < n; i++ {
		if g.sequence[i] <= g.sequence[q] {
			continue
		}
		if i < q {
			g.dirs[i] = dirHigher
		} else {
			g.dirs[i] = dirLower
		}
	}

	return slices.Clone(g.sequence), true
}
