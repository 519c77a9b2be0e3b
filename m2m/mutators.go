// SPDX-License-Identifier: MIT
// File: mutators.go
// Role: every O2M-shaped mutator, re-exposed (not promoted) so each can
// invalidate the derived views around delegation. ClearAll additionally
// drops the caches outright.

package m2m

import "github.com/vbrankov/sparserel/o2m"

// AppendElement appends row as a new element and returns its id.
func (m *M2M) AppendElement(row o2m.Row) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markDirtyLocked()

	return m.fwd.AppendElement(row)
}

// AppendElements appends each row in rows as a new element, in order.
func (m *M2M) AppendElements(rows ...o2m.Row) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(rows) == 0 {
		return
	}
	m.markDirtyLocked()
	m.fwd.AppendElements(rows...)
}

// AppendNodeToElement appends node n to element e's row.
func (m *M2M) AppendNodeToElement(e, n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markDirtyLocked()

	return m.fwd.AppendNodeToElement(e, n)
}

// RemoveNodeFromElement removes the first occurrence of node n from
// element e's row.
func (m *M2M) RemoveNodeFromElement(e, n int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markDirtyLocked()

	return m.fwd.RemoveNodeFromElement(e, n)
}

// ClearElement empties element e's row without removing the element.
func (m *M2M) ClearElement(e int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markDirtyLocked()

	return m.fwd.ClearElement(e)
}

// ReplaceElement replaces element e's row wholesale.
func (m *M2M) ReplaceElement(e int, row o2m.Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markDirtyLocked()

	return m.fwd.ReplaceElement(e, row)
}

// ClearAll empties the relation and drops the inverse and position
// caches immediately rather than leaving them for the next sync.
func (m *M2M) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markDirtyLocked()
	m.fwd = o2m.New()
	m.inv = nil
	m.elemeloc = nil
	m.nodeloc = nil
	m.log.Debug("clear all")
}

// RearrangeAfterRenumbering rewrites the relation in place: elements are
// compressed through newToOldElem, then every node value is remapped
// through oldToNewNode. Unlike the o2m method it mutates the receiver;
// typedmatrix.Compress renumbers every cell of a grid through this.
func (m *M2M) RearrangeAfterRenumbering(newToOldElem, oldToNewNode []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markDirtyLocked()
	m.fwd = m.fwd.RearrangeAfterRenumbering(newToOldElem, oldToNewNode)
}
