// SPDX-License-Identifier: MIT
// Package o2m_test: row algebra and symbolic multiplication contracts.
// Multiply result rows are order-unspecified and asserted as sets
// (ElementsMatch); the four set operators are order-specified and
// asserted exactly.

package o2m_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbrankov/sparserel/o2m"
)

func TestUnionKeepsLeftOrderThenRightAdditions(t *testing.T) {
	a := o2m.FromRows([]o2m.Row{{3, 1}, {5}})
	b := o2m.FromRows([]o2m.Row{{1, 2}, {5, 6}, {7}})

	u := a.Union(b)
	require.Equal(t, 3, u.Count())
	assert.Equal(t, o2m.Row{3, 1, 2}, u.Row(0))
	assert.Equal(t, o2m.Row{5, 6}, u.Row(1))
	// Short left rows pair with empty rows.
	assert.Equal(t, o2m.Row{7}, u.Row(2))

	assert.True(t, a.Or(b).Equal(u))
}

func TestIntersectKeepsLeftOrder(t *testing.T) {
	a := o2m.FromRows([]o2m.Row{{4, 2, 1, 2}, {9}})
	b := o2m.FromRows([]o2m.Row{{1, 2, 3}})

	i := a.Intersect(b)
	require.Equal(t, 1, i.Count())
	assert.Equal(t, o2m.Row{2, 1}, i.Row(0))
	assert.True(t, a.And(b).Equal(i))
}

func TestDifferenceAndSymmetricDifference(t *testing.T) {
	a := o2m.FromRows([]o2m.Row{{1, 2, 3}, {5, 5}})
	b := o2m.FromRows([]o2m.Row{{2}, {5}})

	d := a.Difference(b)
	assert.Equal(t, o2m.Row{1, 3}, d.Row(0))
	assert.Empty(t, d.Row(1))
	assert.True(t, a.Sub(b).Equal(d))

	// A^B == (A|B) − (A&B), row by row as sets.
	x := a.SymmetricDifference(b)
	ref := a.Union(b).Difference(a.Intersect(b))
	require.Equal(t, ref.Count(), x.Count())
	for i := 0; i < x.Count(); i++ {
		assert.ElementsMatch(t, []int(ref.Row(i)), []int(x.Row(i)))
	}
	assert.True(t, a.Xor(b).Equal(x))
}

func TestUnionCommutesAsSets(t *testing.T) {
	a := o2m.FromRows([]o2m.Row{{0, 3}, {2}})
	b := o2m.FromRows([]o2m.Row{{3, 1}})

	ab, ba := a.Union(b), b.Union(a)
	require.Equal(t, ab.Count(), ba.Count())
	for i := 0; i < ab.Count(); i++ {
		assert.ElementsMatch(t, []int(ab.Row(i)), []int(ba.Row(i)))
	}
}

func TestMultiply(t *testing.T) {
	// Row 0 = B[0] ∪ B[1] = {10, 20}; row 1 = B[2] = {30}.
	a := o2m.FromRows([]o2m.Row{{0, 1}, {2}})
	b := o2m.FromRows([]o2m.Row{{10}, {10, 20}, {30}})

	p := a.Multiply(b)
	require.Equal(t, 2, p.Count())
	assert.ElementsMatch(t, []int{10, 20}, []int(p.Row(0)))
	assert.ElementsMatch(t, []int{30}, []int(p.Row(1)))
}

func TestMultiplyCheckedPathSkipsOutOfRange(t *testing.T) {
	// a.MaxNode() = 7 >= b.Count() = 1, so the checked path runs and 7 is
	// skipped rather than indexing past b.
	a := o2m.FromRows([]o2m.Row{{0, 7}})
	b := o2m.FromRows([]o2m.Row{{5}})

	p := a.Multiply(b)
	require.Equal(t, 1, p.Count())
	assert.ElementsMatch(t, []int{5}, []int(p.Row(0)))
}

func TestMultiplyLargeDomainUsesHashMembership(t *testing.T) {
	// Node values beyond the bitset threshold exercise the hash path.
	a := o2m.FromRows([]o2m.Row{{0, 1}})
	b := o2m.FromRows([]o2m.Row{{1_000_000, 5}, {5, 2_000_000}})

	p := a.Multiply(b)
	assert.ElementsMatch(t, []int{5, 1_000_000, 2_000_000}, []int(p.Row(0)))
}
