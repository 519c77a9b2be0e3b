// SPDX-License-Identifier: MIT
// File: methods_mutate.go
// Role: Element-level mutation: append, node add/remove, clear, replace.
// Each of these invalidates the cached maxNode.

package o2m

// AppendElement appends row as a new element and returns its id.
//
// Complexity: O(1) amortized.
func (a *O2M) AppendElement(row Row) int {
	a.rows = append(a.rows, row)
	a.invalidate()

	return len(a.rows) - 1
}

// AppendElements appends each row in rows as a new element, in order.
//
// Complexity: O(len(rows)) amortized.
func (a *O2M) AppendElements(rows ...Row) {
	for _, r := range rows {
		a.rows = append(a.rows, r)
	}
	if len(rows) > 0 {
		a.invalidate()
	}
}

// AppendNodeToElement appends node n to element e's row.
// Returns ErrElementOutOfRange if e is not a valid element id.
//
// Complexity: O(1) amortized.
func (a *O2M) AppendNodeToElement(e, n int) error {
	if e < 0 || e >= len(a.rows) {
		return ErrElementOutOfRange
	}
	a.rows[e] = append(a.rows[e], n)
	a.invalidate()

	return nil
}

// RemoveNodeFromElement removes the first occurrence of node n from
// element e's row. Returns (true, nil) if removed, (false, nil) if e's
// row had no such node, and (false, ErrElementOutOfRange) if e is
// invalid.
//
// Complexity: O(row length).
func (a *O2M) RemoveNodeFromElement(e, n int) (bool, error) {
	if e < 0 || e >= len(a.rows) {
		return false, ErrElementOutOfRange
	}
	row := a.rows[e]
	for i, v := range row {
		if v == n {
			a.rows[e] = append(row[:i], row[i+1:]...)
			a.invalidate()

			return true, nil
		}
	}

	return false, nil
}

// ClearElement empties element e's row without removing the element
// itself. Returns ErrElementOutOfRange if e is invalid.
//
// Complexity: O(1).
func (a *O2M) ClearElement(e int) error {
	if e < 0 || e >= len(a.rows) {
		return ErrElementOutOfRange
	}
	a.rows[e] = nil
	a.invalidate()

	return nil
}

// ReplaceElement replaces element e's row with row wholesale.
// Returns ErrElementOutOfRange if e is invalid.
//
// Complexity: O(1).
func (a *O2M) ReplaceElement(e int, row Row) error {
	if e < 0 || e >= len(a.rows) {
		return ErrElementOutOfRange
	}
	a.rows[e] = row
	a.invalidate()

	return nil
}
