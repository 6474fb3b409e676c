package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectPermutations(items []int) [][]int {
	var perms [][]int
	forEachPermutation(items, func(perm []int) {
		perms = append(perms, append([]int(nil), perm...))
	})
	return perms
}

func TestPermutationCounts(t *testing.T) {
	testCases := []struct {
		items []int
		want  int
	}{
		{items: []int{1}, want: 1},
		{items: []int{1, 2}, want: 2},
		{items: []int{1, 2, 3}, want: 6},
	}

	for _, tt := range testCases {
		perms := collectPermutations(tt.items)
		assert.Equal(t, tt.want, len(perms), "items=%v", tt.items)
	}
}

func TestPermutationsLexicographic(t *testing.T) {
	perms := collectPermutations([]int{1, 2, 3})
	want := [][]int{
		{1, 2, 3},
		{1, 3, 2},
		{2, 1, 3},
		{2, 3, 1},
		{3, 1, 2},
		{3, 2, 1},
	}
	assert.Equal(t, want, perms)
}

func TestNextPermutationLast(t *testing.T) {
	perm := []int{3, 2, 1}
	assert.False(t, nextPermutation(perm))
}
