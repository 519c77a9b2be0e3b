// SPDX-License-Identifier: MIT
// Package o2m_test: CSR and boolean-matrix round-trip anchors.

package o2m_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbrankov/sparserel/o2m"
)

func TestCSRRoundTrip(t *testing.T) {
	a := o2m.FromRows([]o2m.Row{{0, 2}, {}, {1, 0, 3}})

	rowPtr, col := a.ToCSR()
	assert.Equal(t, []int{0, 2, 2, 5}, rowPtr)
	assert.Equal(t, []int{0, 2, 1, 0, 3}, col)

	back, err := o2m.FromCSR(rowPtr, col)
	require.NoError(t, err)
	assert.True(t, back.Equal(a))
}

func TestCSREmpty(t *testing.T) {
	rowPtr, col := o2m.New().ToCSR()
	assert.Equal(t, []int{0}, rowPtr)
	assert.Empty(t, col)

	back, err := o2m.FromCSR(rowPtr, col)
	require.NoError(t, err)
	assert.Equal(t, 0, back.Count())
}

func TestFromCSRRejectsMalformed(t *testing.T) {
	_, err := o2m.FromCSR(nil, nil)
	assert.ErrorIs(t, err, o2m.ErrBadCSR)

	_, err = o2m.FromCSR([]int{1, 2}, []int{0, 0})
	assert.ErrorIs(t, err, o2m.ErrBadCSR)

	// rowPtr must end at len(col).
	_, err = o2m.FromCSR([]int{0, 1}, []int{7, 8})
	assert.ErrorIs(t, err, o2m.ErrBadCSR)

	// Non-monotone rowPtr.
	_, err = o2m.FromCSR([]int{0, 2, 1, 3}, []int{9, 9, 9})
	assert.ErrorIs(t, err, o2m.ErrBadCSR)
}

func TestBooleanMatrixRoundTrip(t *testing.T) {
	a := o2m.FromRows([]o2m.Row{{2, 0}, {1, 1}})

	m := a.ToBooleanMatrix()
	require.Len(t, m, 2)
	assert.Equal(t, []byte{1, 0, 1}, m[0])
	assert.Equal(t, []byte{0, 1, 0}, m[1])

	// Round-trip sorts and dedups each row.
	back := o2m.FromBooleanMatrix(m)
	assert.Equal(t, o2m.Row{0, 2}, back.Row(0))
	assert.Equal(t, o2m.Row{1}, back.Row(1))
}
