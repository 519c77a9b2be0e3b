// SPDX-License-Identifier: MIT
// Package m2m_test locks in the synchronization contract and the
// neighborhood/superset query semantics.

package m2m_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbrankov/sparserel/m2m"
	"github.com/vbrankov/sparserel/o2m"
)

// chain is the three-element relation used across the query tests:
// rows {0,1}, {1,2}, {2,3}.
func chain() *m2m.M2M {
	return m2m.FromRows([]o2m.Row{{0, 1}, {1, 2}, {2, 3}})
}

func TestInverseMatchesTranspose(t *testing.T) {
	m := chain()
	assert.Equal(t, o2m.Row{0}, m.ElementsFromNode(0))
	assert.Equal(t, o2m.Row{0, 1}, m.ElementsFromNode(1))
	assert.Equal(t, o2m.Row{1, 2}, m.ElementsFromNode(2))
	assert.Equal(t, o2m.Row{2}, m.ElementsFromNode(3))
	// Out-of-range nodes yield empty, not an error.
	assert.Empty(t, m.ElementsFromNode(99))
	assert.Empty(t, m.ElementsFromNode(-1))
}

func TestPositionCaches(t *testing.T) {
	m := chain()

	// elemeloc: for each element e and occurrence k, e sits at that
	// position within ElementsFromNode(Row(e)[k]).
	for e := 0; e < m.Count(); e++ {
		row := m.Row(e)
		loc := m.ElemLoc(e)
		require.Len(t, loc, len(row))
		for k, n := range row {
			assert.Equal(t, e, int(m.ElementsFromNode(n)[loc[k]]))
		}
	}

	// nodeloc: for each node n and occurrence k, n sits at that position
	// within the forward row of ElementsFromNode(n)[k].
	for n := 0; n <= m.MaxNode(); n++ {
		elems := m.ElementsFromNode(n)
		loc := m.NodeLoc(n)
		require.Len(t, loc, len(elems))
		for k, e := range elems {
			assert.Equal(t, n, int(m.Row(e)[loc[k]]))
		}
	}
}

func TestMutationInvalidatesSync(t *testing.T) {
	m := chain()
	m.Synchronize()
	require.True(t, m.InSync())

	require.NoError(t, m.AppendNodeToElement(0, 3))
	assert.False(t, m.InSync())

	// The next read re-syncs and observes the mutation.
	assert.Equal(t, o2m.Row{0, 2}, m.ElementsFromNode(3))
	assert.True(t, m.InSync())
}

func TestBatchModeDefersResync(t *testing.T) {
	m := chain()
	m.EnterBatch()
	m.AppendElement(o2m.Row{5})
	m.AppendElement(o2m.Row{5, 6})
	assert.False(t, m.InSync())

	m.LeaveBatch()
	assert.True(t, m.InSync())
	assert.Equal(t, o2m.Row{3, 4}, m.ElementsFromNode(5))
}

func TestGetElementsWithNodes(t *testing.T) {
	m := chain()
	assert.Equal(t, []int{0, 1}, m.GetElementsWithNodes([]int{1}))
	assert.Equal(t, []int{1}, m.GetElementsWithNodes([]int{1, 2}))
	assert.Empty(t, m.GetElementsWithNodes([]int{0, 3}))
	// Any out-of-range node empties the result.
	assert.Empty(t, m.GetElementsWithNodes([]int{1, 42}))
	assert.Empty(t, m.GetElementsWithNodes(nil))
}

func TestGetElementsFromNodes(t *testing.T) {
	m := chain()
	// No element is exactly {1}: both supersets carry two nodes.
	assert.Empty(t, m.GetElementsFromNodes([]int{1}))
	assert.Equal(t, []int{1}, m.GetElementsFromNodes([]int{1, 2}))
}

func TestNeighbourhoods(t *testing.T) {
	m := chain()

	n0, err := m.GetElementNeighbours(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, n0)

	n1, err := m.GetElementNeighbours(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, n1)

	_, err = m.GetElementNeighbours(7)
	assert.ErrorIs(t, err, m2m.ErrElementOutOfRange)

	assert.Equal(t, []int{0, 2}, m.GetNodeNeighbours(1))
	assert.Equal(t, []int{1, 3}, m.GetNodeNeighbours(2))
	assert.Empty(t, m.GetNodeNeighbours(77))
}

func TestElementsToElementsAndNodesToNodes(t *testing.T) {
	m := chain()

	ee := m.GetElementsToElements()
	require.Equal(t, 3, ee.Count())
	// Element 0 shares node 1 with element 1 (and trivially itself).
	assert.ElementsMatch(t, []int{0, 1}, []int(ee.Row(0)))
	assert.ElementsMatch(t, []int{0, 1, 2}, []int(ee.Row(1)))

	nn := m.GetNodesToNodes()
	require.Equal(t, 4, nn.Count())
	assert.ElementsMatch(t, []int{0, 1}, []int(nn.Row(0)))
	assert.ElementsMatch(t, []int{0, 1, 2}, []int(nn.Row(1)))
	assert.ElementsMatch(t, []int{1, 2, 3}, []int(nn.Row(2)))
}

func TestClearAll(t *testing.T) {
	m := chain()
	m.Synchronize()
	m.ClearAll()
	assert.Equal(t, 0, m.Count())
	assert.Empty(t, m.ElementsFromNode(0))
}

func TestFromO2M(t *testing.T) {
	_, err := m2m.FromO2M(nil)
	assert.ErrorIs(t, err, m2m.ErrNilRelation)

	m, err := m2m.FromO2M(o2m.FromRows([]o2m.Row{{0}}))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, o2m.Row{0}, m.ElementsFromNode(0))
}

func TestCloneIsIndependent(t *testing.T) {
	m := chain()
	c := m.Clone()
	assert.NotEqual(t, m.ID(), c.ID())

	c.AppendElement(o2m.Row{9})
	assert.Equal(t, 3, m.Count())
	assert.Equal(t, 4, c.Count())
	// The clone rebuilds its own views.
	assert.Equal(t, o2m.Row{3}, c.ElementsFromNode(9))
}

func TestRowReturnsCopies(t *testing.T) {
	m := chain()
	row := m.Row(0)
	row[0] = 99
	assert.Equal(t, o2m.Row{0, 1}, m.Row(0))

	inv := m.ElementsFromNode(1)
	inv[0] = 99
	assert.Equal(t, o2m.Row{0, 1}, m.ElementsFromNode(1))
}

func TestGetCliquesDelegates(t *testing.T) {
	m := m2m.FromRows([]o2m.Row{{2, 5}})
	cliques := m.GetCliques()
	require.Len(t, cliques, 1)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 0, 1, 1}, cliques[0])
}
