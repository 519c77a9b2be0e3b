// SPDX-License-Identifier: MIT
// File: methods_compare.go
// Role: Total ordering and multiset equality over O2M values.

package o2m

import (
	"sort"

	"github.com/vbrankov/sparserel/setops"
)

// Compare imposes a total order on O2M values: row count first, then
// row-wise lexicographic comparison (each row compared element-wise with
// length as its own tie-break). Returns -1, 0, or +1.
//
// Complexity: O(Count * avg row length).
func (a *O2M) Compare(b *O2M) int {
	switch {
	case len(a.rows) < len(b.rows):
		return -1
	case len(a.rows) > len(b.rows):
		return 1
	}
	for i := range a.rows {
		if c := setops.Compare(a.rows[i], b.rows[i]); c != 0 {
			return c
		}
	}

	return 0
}

// Equal reports whether a and b hold identical rows in identical order.
func (a *O2M) Equal(b *O2M) bool {
	return a.Compare(b) == 0
}

// IsPermutationOf reports whether a and b hold the same multiset of rows
// (rows compared as ordered sequences): the relations are equal up to a
// reordering of element ids. Implemented by sorting index slices by
// row-lex order on both sides and comparing pairwise.
//
// Complexity: O(Count log Count * avg row length).
func (a *O2M) IsPermutationOf(b *O2M) bool {
	if len(a.rows) != len(b.rows) {
		return false
	}
	ai := sortedRowIndices(a.rows)
	bi := sortedRowIndices(b.rows)
	for k := range ai {
		if setops.Compare(a.rows[ai[k]], b.rows[bi[k]]) != 0 {
			return false
		}
	}

	return true
}

// sortedRowIndices returns the indices of rows ordered by row-lex.
func sortedRowIndices(rows []Row) []int {
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return setops.Compare(rows[idx[i]], rows[idx[j]]) < 0
	})

	return idx
}
