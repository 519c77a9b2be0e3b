// SPDX-License-Identifier: MIT
// File: cliques.go
// Role: Dense clique expansion per element: the mesh-style |nodes(e)|²
// self-product of every element's node list over a compact node
// enumeration.
// Concurrency:
//   - Per-element output rows are independent; the fill is fanned out via
//     internal/pfor.Range.

package o2m

import (
	"sync"

	"github.com/vbrankov/sparserel/internal/pfor"
)

// cliqueScratch recycles the per-element compact-id buffer; only the
// flat output row escapes the fill loop.
var cliqueScratch = sync.Pool{
	New: func() any { return make([]int, 0, 64) },
}

// GetCliques expands every element of forward into the dense clique of
// its nodes. Node ids are first mapped to compact ids 0..C-1 by a
// sorted-unique enumeration of every node appearing in the relation (a
// node participates iff its row in inverse is non-empty). For an element
// e with nodes n_0..n_{k-1}, result[e] is the flat row-major sequence of
// the k×k Cartesian product of compact ids:
//
//	result[e] = [c(n_0),c(n_0), c(n_0),c(n_1), ..., c(n_{k-1}),c(n_{k-1})]
//
// i.e. 2·k² integers, two per ordered pair. Nodes absent from the compact
// enumeration (out of inverse's range) contribute no pairs.
//
// inverse must be the transpose of forward; m2m.M2M.GetCliques passes its
// synchronized inverse view.
//
// Complexity: O(total nodes + sum of k² over elements), parallelized
// across elements above pfor.Threshold.
func GetCliques(forward, inverse *O2M) [][]int {
	// Compact enumeration: ascending node ids with at least one
	// occurrence. inverse rows are indexed by node id, so a single scan
	// suffices and the result is already sorted and unique.
	compact := make([]int, inverse.Count())
	next := 0
	for n := range compact {
		if len(inverse.Row(n)) > 0 {
			compact[n] = next
			next++
		} else {
			compact[n] = -1
		}
	}

	out := make([][]int, forward.Count())
	pfor.Range(forward.Count(), func(e int) {
		row := forward.Row(e)
		ids := cliqueScratch.Get().([]int)[:0]
		for _, n := range row {
			if n >= 0 && n < len(compact) && compact[n] >= 0 {
				ids = append(ids, compact[n])
			}
		}
		flat := make([]int, 0, 2*len(ids)*len(ids))
		for _, u := range ids {
			for _, v := range ids {
				flat = append(flat, u, v)
			}
		}
		out[e] = flat
		cliqueScratch.Put(ids[:0])
	})

	return out
}
