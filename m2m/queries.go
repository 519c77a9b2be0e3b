// SPDX-License-Identifier: MIT
// File: queries.go
// Role: neighborhood, superset-match, and product queries over the
// synchronized views.
// Silent-tolerance policy: any out-of-range node id makes the
// node-keyed queries return empty; GetElementNeighbours requires a
// bounded element index and returns ErrElementOutOfRange instead, while
// ElemLoc returns nil for an out-of-range element.

package m2m

import (
	"github.com/vbrankov/sparserel/o2m"
	"github.com/vbrankov/sparserel/setops"
)

// ElementsFromNode returns a copy of the inverse row for node n: every
// element id whose row contains n, ascending. Out-of-range n yields an
// empty slice.
func (m *M2M) ElementsFromNode(n int) o2m.Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncLocked()

	return m.inv.Row(n).Clone()
}

// ElemLoc returns a copy of element e's reciprocal index: ElemLoc(e)[k]
// is the position at which e appears within ElementsFromNode(Row(e)[k]).
// Out-of-range e yields nil.
func (m *M2M) ElemLoc(e int) []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncLocked()
	if e < 0 || e >= len(m.elemeloc) {
		return nil
	}

	out := make([]int, len(m.elemeloc[e]))
	copy(out, m.elemeloc[e])

	return out
}

// NodeLoc returns a copy of node n's position index: NodeLoc(n)[k] is
// the position at which n appears within the forward row of the k-th
// element of ElementsFromNode(n). Out-of-range n yields nil.
func (m *M2M) NodeLoc(n int) []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncLocked()
	if n < 0 || n >= len(m.nodeloc) {
		return nil
	}

	out := make([]int, len(m.nodeloc[n]))
	copy(out, m.nodeloc[n])

	return out
}

// GetElementsWithNodes returns, ascending, every element whose row is a
// superset of nodes: the iterated intersection of the inverse rows,
// short-circuiting on empty. Any out-of-range node id yields an empty
// result; an empty nodes slice also yields empty.
func (m *M2M) GetElementsWithNodes(nodes []int) []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.elementsWithNodesLocked(nodes)
}

func (m *M2M) elementsWithNodesLocked(nodes []int) []int {
	m.syncLocked()
	if len(nodes) == 0 {
		return []int{}
	}

	acc := []int(nil)
	for i, n := range nodes {
		if n < 0 || n >= m.inv.Count() {
			return []int{}
		}
		row := m.inv.Row(n)
		if i == 0 {
			acc = setops.SortUnique(row.Clone())
		} else {
			acc = setops.Intersect(acc, row)
		}
		if len(acc) == 0 {
			return []int{}
		}
	}

	return acc
}

// GetElementsFromNodes returns the subset of GetElementsWithNodes whose
// row holds exactly len(nodes) entries: the elements that ARE those
// nodes rather than a strict superset.
func (m *M2M) GetElementsFromNodes(nodes []int) []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	super := m.elementsWithNodesLocked(nodes)
	out := make([]int, 0, len(super))
	for _, e := range super {
		if len(m.fwd.Row(e)) == len(nodes) {
			out = append(out, e)
		}
	}

	return out
}

// GetElementNeighbours returns, ascending, every element sharing at
// least one node with element e, excluding e itself.
func (m *M2M) GetElementNeighbours(e int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e < 0 || e >= m.fwd.Count() {
		return nil, ErrElementOutOfRange
	}
	m.syncLocked()

	var acc []int
	for _, n := range m.fwd.Row(e) {
		acc = append(acc, m.inv.Row(n)...)
	}
	acc = setops.SortUnique(acc)

	return setops.Difference(acc, []int{e}), nil
}

// GetNodeNeighbours returns, ascending, every node sharing at least one
// element with node n, excluding n itself. Out-of-range n yields empty.
func (m *M2M) GetNodeNeighbours(n int) []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncLocked()
	if n < 0 || n >= m.inv.Count() {
		return []int{}
	}

	var acc []int
	for _, e := range m.inv.Row(n) {
		acc = append(acc, m.fwd.Row(e)...)
	}
	acc = setops.SortUnique(acc)

	return setops.Difference(acc, []int{n})
}

// GetElementsToElements returns the element-sharing-a-node graph:
// forward * inverse.
func (m *M2M) GetElementsToElements() *o2m.O2M {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncLocked()

	return m.fwd.Multiply(m.inv)
}

// GetNodesToNodes returns the node-sharing-an-element graph:
// inverse * forward.
func (m *M2M) GetNodesToNodes() *o2m.O2M {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncLocked()

	return m.inv.Multiply(m.fwd)
}

// GetCliques expands every element into the dense clique of its nodes
// over the synchronized inverse; see o2m.GetCliques for the layout.
func (m *M2M) GetCliques() [][]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncLocked()

	return o2m.GetCliques(m.fwd, m.inv)
}
