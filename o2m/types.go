// SPDX-License-Identifier: MIT
// File: types.go
// Role: Row and O2M domain types, construction, and the maxNode cache.
// Determinism:
//   - Element ids are always dense [0,Count); row order is preserved
//     across every operation unless a method explicitly sorts.
// AI-HINT (file):
//   - Adopt takes ownership of the given rows (no copy); FromRows copies.
//     Mixing the two on the same backing slice is a caller hazard.

package o2m

import "fmt"

// Row is an ordered sequence of non-negative node ids. Order is
// significant and preserved across all operations unless a method
// explicitly sorts (Transpose, ToBooleanMatrix round-trips).
type Row []int

// Clone returns an independent copy of r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)

	return out
}

// O2M is a sparse, row-indexed relation from elements (row indices,
// dense [0,Count)) to nodes (non-negative integers appearing in rows).
//
// maxNode caches the maximum integer appearing in any row, or -1 when
// O2M is empty; it is invalidated on every mutation and recomputed
// lazily on the next call to MaxNode.
type O2M struct {
	rows    []Row
	maxNode int
	maxSet  bool
}

// New returns an empty O2M.
func New() *O2M {
	return &O2M{maxNode: -1, maxSet: true}
}

// NewWithCapacity returns an empty O2M with capacity reserved for n rows.
func NewWithCapacity(n int) *O2M {
	return &O2M{rows: make([]Row, 0, n), maxNode: -1, maxSet: true}
}

// Adopt wraps the given rows as an O2M without copying: the caller gives
// up ownership of rows and must not mutate it afterward. Use FromRows to
// retain ownership of the input.
//
// This is the one place in the package where rows are not defensively
// copied; adoption is a documented hazard rather than a silent one.
func Adopt(rows []Row) *O2M {
	return &O2M{rows: rows, maxSet: false}
}

// FromRows returns an O2M that deep-copies rows; the caller's slice (and
// each Row within it) remains independently owned by the caller.
func FromRows(rows []Row) *O2M {
	cp := make([]Row, len(rows))
	for i, r := range rows {
		cp[i] = r.Clone()
	}

	return &O2M{rows: cp, maxSet: false}
}

// Count returns the number of elements (rows).
func (a *O2M) Count() int {
	return len(a.rows)
}

// Row returns element e's row. Returns nil if e is out of range.
func (a *O2M) Row(e int) Row {
	if e < 0 || e >= len(a.rows) {
		return nil
	}

	return a.rows[e]
}

// MaxNode returns the maximum node id appearing in any row, or -1 if
// O2M is empty. The value is cached and recomputed lazily after any
// mutation.
//
// Complexity: O(1) amortized; O(Count * avg row length) on first call
// after a mutation.
func (a *O2M) MaxNode() int {
	if a.maxSet {
		return a.maxNode
	}
	m := -1
	for _, row := range a.rows {
		for _, n := range row {
			if n > m {
				m = n
			}
		}
	}
	a.maxNode = m
	a.maxSet = true

	return m
}

// invalidate clears the cached maxNode; called by every mutation.
func (a *O2M) invalidate() {
	a.maxSet = false
}

// IsValid reports whether every node id is non-negative and no row
// contains duplicate node ids. Construction itself permits duplicates
// (AppendElement et al. do not validate); IsValid is an explicit check.
//
// Complexity: O(Count * avg row length).
func (a *O2M) IsValid() bool {
	return a.Validate() == nil
}

// Validate is the error-reporting form of IsValid: it returns
// ErrNodeNegative for the first negative node id, ErrDuplicateRow for
// the first row holding a duplicate, and nil for a valid relation.
func (a *O2M) Validate() error {
	seen := make(map[int]struct{})
	for e, row := range a.rows {
		for k := range seen {
			delete(seen, k)
		}
		for _, n := range row {
			if n < 0 {
				return fmt.Errorf("%w: element %d holds %d", ErrNodeNegative, e, n)
			}
			if _, dup := seen[n]; dup {
				return fmt.Errorf("%w: element %d holds %d twice", ErrDuplicateRow, e, n)
			}
			seen[n] = struct{}{}
		}
	}

	return nil
}

// Clone returns a deep copy: every row is independently copied so that
// mutating the clone never aliases the original through shared rows or
// cached views.
func (a *O2M) Clone() *O2M {
	cp := &O2M{
		rows:    make([]Row, len(a.rows)),
		maxNode: a.maxNode,
		maxSet:  a.maxSet,
	}
	for i, r := range a.rows {
		cp.rows[i] = r.Clone()
	}

	return cp
}
