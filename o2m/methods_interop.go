// SPDX-License-Identifier: MIT
// File: methods_interop.go
// Role: Interop with the two external matrix representations: CSR
// (rowPtr/col) and dense boolean byte matrices.
// Determinism:
//   - ToCSR preserves intra-row source order; FromBooleanMatrix emits
//     columns ascending.

package o2m

// ToCSR exports the relation in Compressed Sparse Row form:
// rowPtr has Count+1 entries with rowPtr[0] = 0 and
// rowPtr[i+1] = rowPtr[i] + len(row i); col is the concatenation of all
// rows in element-id order, each row's values in source order.
//
// Complexity: O(Count + total node occurrences).
func (a *O2M) ToCSR() (rowPtr, col []int) {
	rowPtr = make([]int, len(a.rows)+1)
	total := 0
	for i, row := range a.rows {
		total += len(row)
		rowPtr[i+1] = total
	}
	col = make([]int, 0, total)
	for _, row := range a.rows {
		col = append(col, row...)
	}

	return rowPtr, col
}

// FromCSR rebuilds an O2M from a (rowPtr, col) pair produced by ToCSR.
// Returns ErrBadCSR when rowPtr is empty, does not start at zero, is not
// monotonically non-decreasing, or does not end at len(col).
//
// Complexity: O(Count + len(col)).
func FromCSR(rowPtr, col []int) (*O2M, error) {
	if len(rowPtr) == 0 || rowPtr[0] != 0 || rowPtr[len(rowPtr)-1] != len(col) {
		return nil, ErrBadCSR
	}
	out := NewWithCapacity(len(rowPtr) - 1)
	for i := 0; i+1 < len(rowPtr); i++ {
		lo, hi := rowPtr[i], rowPtr[i+1]
		if lo > hi {
			return nil, ErrBadCSR
		}
		row := make(Row, hi-lo)
		copy(row, col[lo:hi])
		out.AppendElement(row)
	}

	return out, nil
}

// ToBooleanMatrix exports a dense byte matrix of shape
// Count x (MaxNode()+1) with m[i][j] = 1 iff node j appears in row i.
// Intra-row order and duplicates are not representable in this form;
// round-tripping through FromBooleanMatrix yields each row sorted
// ascending and deduplicated.
//
// Complexity: O(Count * (MaxNode()+1)).
func (a *O2M) ToBooleanMatrix() [][]byte {
	cols := a.MaxNode() + 1
	m := make([][]byte, len(a.rows))
	for i, row := range a.rows {
		m[i] = make([]byte, cols)
		for _, n := range row {
			if n >= 0 && n < cols {
				m[i][n] = 1
			}
		}
	}

	return m
}

// FromBooleanMatrix rebuilds an O2M from a dense byte matrix: row i of
// the result lists, ascending, every column j with m[i][j] != 0.
//
// Complexity: O(rows * cols).
func FromBooleanMatrix(m [][]byte) *O2M {
	out := NewWithCapacity(len(m))
	for _, mr := range m {
		row := make(Row, 0)
		for j, cell := range mr {
			if cell != 0 {
				row = append(row, j)
			}
		}
		out.AppendElement(row)
	}

	return out
}
