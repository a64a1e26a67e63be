package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victorhuberta/ult-algo/search"
)

// sortedRange returns the sorted sequence [0, n).
func sortedRange(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	return seq
}

// TestBinary_ExactMatch verifies the index/rank pair for a present value.
func TestBinary_ExactMatch(t *testing.T) {
	seq := sortedRange(100)

	res := search.Binary(seq, 87)
	assert.True(t, res.Found)
	assert.Equal(t, 87, res.Index)
	assert.Equal(t, 87, res.Rank, "index and rank coincide on a match")
}

// TestBinary_AbsentValue verifies that rank names the insertion point
// when the value is absent.
func TestBinary_AbsentValue(t *testing.T) {
	seq := sortedRange(100)

	res := search.Binary(seq, 500)
	assert.False(t, res.Found)
	assert.Equal(t, -1, res.Index)
	assert.Equal(t, 100, res.Rank, "all 100 elements are smaller")

	res = search.Binary(seq, -3)
	assert.False(t, res.Found)
	assert.Equal(t, 0, res.Rank, "no element is smaller")
}

// TestBinary_GapValue checks the rank for a value falling between elements.
func TestBinary_GapValue(t *testing.T) {
	seq := []int{10, 20, 30, 40}

	res := search.Binary(seq, 25)
	assert.False(t, res.Found)
	assert.Equal(t, 2, res.Rank, "10 and 20 are strictly smaller")
}

// TestBinary_EmptySequence checks the degenerate input.
func TestBinary_EmptySequence(t *testing.T) {
	res := search.Binary([]int{}, 7)
	assert.False(t, res.Found)
	assert.Equal(t, 0, res.Rank)
}

// TestBinary_SingleElement covers the one-element window on both outcomes.
func TestBinary_SingleElement(t *testing.T) {
	res := search.Binary([]int{5}, 5)
	require.True(t, res.Found)
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, 0, res.Rank)

	res = search.Binary([]int{5}, 6)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Rank)
}

// TestBinary_Duplicates verifies that the leftmost occurrence is reported,
// keeping the index equal to the rank.
func TestBinary_Duplicates(t *testing.T) {
	seq := []int{1, 3, 3, 3, 7}

	res := search.Binary(seq, 3)
	require.True(t, res.Found)
	assert.Equal(t, 1, res.Index, "leftmost occurrence")
	assert.Equal(t, 1, res.Rank, "only one element is strictly smaller")
}

// TestBinary_RankCountsSmaller verifies against a linear count for every
// probe value around a fixed sequence.
func TestBinary_RankCountsSmaller(t *testing.T) {
	seq := []int{2, 4, 4, 8, 16, 32}
	for v := -1; v <= 40; v++ {
		want := 0
		for _, e := range seq {
			if e < v {
				want++
			}
		}
		res := search.Binary(seq, v)
		assert.Equal(t, want, res.Rank, "rank for value %d", v)
		if res.Found {
			assert.Equal(t, v, seq[res.Index], "found index must hold the value")
			assert.Equal(t, res.Rank, res.Index, "rank/index invariant")
		}
	}
}

// TestBinary_Strings verifies ordering over a non-numeric element type.
func TestBinary_Strings(t *testing.T) {
	seq := []string{"ant", "bee", "cat", "dog"}

	res := search.Binary(seq, "cat")
	require.True(t, res.Found)
	assert.Equal(t, 2, res.Index)

	res = search.Binary(seq, "cow")
	assert.False(t, res.Found)
	assert.Equal(t, 3, res.Rank)
}

// TestRank_And_Index verify the sugar wrappers forward Binary's result.
func TestRank_And_Index(t *testing.T) {
	seq := sortedRange(10)

	assert.Equal(t, 4, search.Rank(seq, 4))
	assert.Equal(t, 10, search.Rank(seq, 99))

	idx, ok := search.Index(seq, 4)
	assert.True(t, ok)
	assert.Equal(t, 4, idx)

	_, ok = search.Index(seq, 99)
	assert.False(t, ok)
}
