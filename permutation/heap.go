package permutation

import "slices"

// HeapGen — resumable permutation generator using Heap's algorithm.
//
// Description:
//
//	Heap's algorithm (B. R. Heap, 1963) produces every permutation of n
//	elements, each obtained from the previous one by a single swap. The
//	order is deterministic but not lexicographic, and the swaps are not
//	guaranteed to be adjacent — SJTGen offers that stronger property.
//
// State:
//
//	An interchange counter per position plus a cursor. The generator
//	permutes the caller's slice in place and emits copies; when a cycle
//	of n! permutations is exhausted, the counters and cursor reset so a
//	following call starts the next full cycle from the current
//	arrangement.
//
// Not safe for concurrent use by multiple goroutines.
type HeapGen[T any] struct {
	sequence []T
	swaps    []int // interchange counter per cursor position
	cursor   int
	started  bool
}

// NewHeap returns a generator over sequence. The slice is retained and
// permuted in place across Next calls; the caller must not mutate it
// while the generator is in use.
func NewHeap[T any](sequence []T) *HeapGen[T] {
	return &HeapGen[T]{
		sequence: sequence,
		swaps:    make([]int, len(sequence)),
	}
}

// Next returns the next permutation, or (nil, false) once the cycle of
// n! permutations is exhausted. Exhaustion resets the generator; the
// call after it starts a fresh cycle.
//
// Complexity: O(n) per call (dominated by the emitted copy).
func (g *HeapGen[T]) Next() ([]T, bool) {
	// The first call of a cycle emits the sequence unmodified.
	if !g.started {
		g.started = true
		return slices.Clone(g.sequence), true
	}

	// Walk cursor positions iteratively: the skip chain can be as long
	// as the sequence, so recursing here would grow the stack with n.
	for g.cursor < len(g.sequence) {
		c := g.cursor
		counter := g.swaps[c]
		if counter < c {
			if c%2 == 0 {
				g.sequence[0], g.sequence[c] = g.sequence[c], g.sequence[0]
			} else {
				g.sequence[counter], g.sequence[c] = g.sequence[c], g.sequence[counter]
			}
			g.swaps[c]++
			g.cursor = 0
			return slices.Clone(g.sequence), true
		}

		// Counter exhausted at this position: reset it and move on
		// without emitting.
		g.swaps[c] = 0
		g.cursor++
	}

	// Cycle complete: restore the initial control state so iteration may
	// continue with the next call.
	for i := range g.swaps {
		g.swaps[i] = 0
	}
	g.cursor = 0
	g.started = false
	return nil, false
}
