package ordering

import "sort"

// forEachPermutation calls fn with every permutation of items in
// lexicographic order. the slice passed to fn is reused between calls.
// enumeration order is part of the optimizer contract (first minimum wins),
// so keep this lexicographic.
func forEachPermutation(items []int, fn func(perm []int)) {
	perm := append([]int(nil), items...)
	sort.Ints(perm)
	for {
		fn(perm)
		if !nextPermutation(perm) {
			return
		}
	}
}

// nextPermutation advances perm to its lexicographic successor in place,
// returning false once perm is the last (descending) permutation.
func nextPermutation(perm []int) bool {
	i := len(perm) - 2
	for i >= 0 && perm[i] >= perm[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(perm) - 1
	for perm[j] <= perm[i] {
		j--
	}
	perm[i], perm[j] = perm[j], perm[i]
	for l, r := i+1, len(perm)-1; l < r; l, r = l+1, r-1 {
		perm[l], perm[r] = perm[r], perm[l]
	}
	return true
}
