// SPDX-License-Identifier: MIT
// File: methods_multiply.go
// Role: Symbolic boolean matrix multiplication, A*B.
// Row i of the result is the deduplicated union, over m in A[i], of
// B[m]. Row order within a result row is unspecified; callers must treat
// result rows as sets.
// Concurrency:
//   - Rows are independent; Multiply fans the outer element index out via
//     internal/pfor.Range, gated by pfor.Threshold.

package o2m

import "github.com/vbrankov/sparserel/internal/pfor"

// Multiply computes the symbolic boolean matrix product A*B: each
// A[i] is interpreted as a set of row indices into B, and result row i is
// the deduplicated union of B[m] for m in A[i].
//
// An unchecked fast path is used when a.MaxNode() < b.Count() (every
// value in every row of A is already a valid row index into B); otherwise
// a checked path bounds-checks each m against b.Count() and skips
// out-of-range values.
//
// Complexity: O(Count(A) * avg row length(A) * avg row length(B)),
// parallelized across rows of A above pfor.Threshold.
func (a *O2M) Multiply(b *O2M) *O2M {
	out := &O2M{rows: make([]Row, a.Count()), maxSet: false}
	unchecked := a.MaxNode() < b.Count()
	domain := b.MaxNode()

	pfor.Range(a.Count(), func(i int) {
		row := a.rows[i]
		seen := newMembershipFor(domain, len(row)*2)
		result := make(Row, 0, len(row)*2)
		for _, m := range row {
			if !unchecked && (m < 0 || m >= b.Count()) {
				continue
			}
			for _, v := range b.rows[m] {
				if !seen.has(v) {
					seen.add(v)
					result = append(result, v)
				}
			}
		}
		out.rows[i] = result
		releaseMembership(seen)
	})

	return out
}
