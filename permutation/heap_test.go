package permutation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victorhuberta/ult-algo/permutation"
)

// factorial returns n! for the small n used in tests.
func factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// drainCycle collects one full cycle of a generator, up to the
// exhaustion signal.
func drainCycle[T any](gen interface{ Next() ([]T, bool) }) [][]T {
	var out [][]T
	for p, ok := gen.Next(); ok; p, ok = gen.Next() {
		out = append(out, p)
	}
	return out
}

// distinct counts unique permutations by their string form.
func distinct[T any](perms [][]T) int {
	seen := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		seen[fmt.Sprint(p)] = struct{}{}
	}
	return len(seen)
}

// TestHeap_FirstCallUnmodified verifies the first emission is the input
// arrangement itself.
func TestHeap_FirstCallUnmodified(t *testing.T) {
	gen := permutation.NewHeap([]int{3, 1, 2})

	p, ok := gen.Next()
	require.True(t, ok)
	assert.Equal(t, []int{3, 1, 2}, p)
}

// TestHeap_FirstTenPermutations pins the deterministic emission order
// over [1,2,3,4].
func TestHeap_FirstTenPermutations(t *testing.T) {
	want := [][]int{
		{1, 2, 3, 4}, {2, 1, 3, 4},
		{3, 1, 2, 4}, {1, 3, 2, 4},
		{2, 3, 1, 4}, {3, 2, 1, 4},
		{4, 2, 1, 3}, {2, 4, 1, 3},
		{1, 4, 2, 3}, {4, 1, 2, 3},
	}

	gen := permutation.NewHeap([]int{1, 2, 3, 4})
	for i, w := range want {
		p, ok := gen.Next()
		require.True(t, ok, "emission %d", i)
		assert.Equal(t, w, p, "emission %d", i)
	}
}

// TestHeap_LastTenPermutations pins the tail of the cycle over [1,2,3,4].
func TestHeap_LastTenPermutations(t *testing.T) {
	want := [][]int{
		{4, 1, 3, 2}, {1, 4, 3, 2},
		{3, 4, 1, 2}, {4, 3, 1, 2},
		{4, 3, 2, 1}, {3, 4, 2, 1},
		{2, 4, 3, 1}, {4, 2, 3, 1},
		{3, 2, 4, 1}, {2, 3, 4, 1},
	}

	gen := permutation.NewHeap([]int{1, 2, 3, 4})
	perms := drainCycle[int](gen)
	require.Len(t, perms, 24)
	assert.Equal(t, want, perms[14:])
}

// TestHeap_FullCycleCount verifies exactly n! distinct permutations per
// cycle for several sizes.
func TestHeap_FullCycleCount(t *testing.T) {
	for n := 0; n <= 6; n++ {
		seq := make([]int, n)
		for i := range seq {
			seq[i] = i + 1
		}

		perms := drainCycle[int](permutation.NewHeap(seq))
		assert.Len(t, perms, factorial(n), "cycle length for n=%d", n)
		assert.Equal(t, factorial(n), distinct(perms), "distinct permutations for n=%d", n)
	}
}

// TestHeap_RestartsAfterExhaustion verifies that the cycle after an
// exhaustion signal emits the identical n!-permutation set again.
func TestHeap_RestartsAfterExhaustion(t *testing.T) {
	gen := permutation.NewHeap([]int{1, 2, 3, 4})

	first := drainCycle[int](gen)
	require.Len(t, first, 24)

	second := drainCycle[int](gen)
	require.Len(t, second, 24, "generator restarts after exhaustion")
	assert.Equal(t, 24, distinct(second))
	assert.Equal(t, 24, distinct(append(first, second...)),
		"both cycles enumerate the same set")
}

// TestHeap_SingleSwapSteps verifies the minimal-change property: each
// emission differs from the previous by exactly one swap (two positions).
func TestHeap_SingleSwapSteps(t *testing.T) {
	gen := permutation.NewHeap([]int{1, 2, 3, 4, 5})
	prev, ok := gen.Next()
	require.True(t, ok)

	for p, ok := gen.Next(); ok; p, ok = gen.Next() {
		diff := 0
		for i := range p {
			if p[i] != prev[i] {
				diff++
			}
		}
		assert.Equal(t, 2, diff, "exactly two positions change per step")
		prev = p
	}
}

// TestHeap_SnapshotIndependence verifies emitted slices are copies.
func TestHeap_SnapshotIndependence(t *testing.T) {
	gen := permutation.NewHeap([]int{1, 2, 3})

	p1, _ := gen.Next()
	p1[0] = 99
	p2, _ := gen.Next()
	assert.NotEqual(t, 99, p2[0], "mutating an emission must not affect the generator")
}

// TestHeap_StringElements verifies the generator is generic over any
// element type.
func TestHeap_StringElements(t *testing.T) {
	perms := drainCycle[string](permutation.NewHeap([]string{"a", "b", "c"}))
	assert.Len(t, perms, 6)
	assert.Equal(t, 6, distinct(perms))
}
