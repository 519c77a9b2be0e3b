// SPDX-License-Identifier: MIT
// Package typedmatrix_test: kill-list renumbering anchors.

package typedmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vbrankov/sparserel/typedmatrix"
)

func kill(ids ...int) map[int]struct{} {
	m := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}

	return m
}

func TestBuildRenumbering(t *testing.T) {
	oldToNew, newToOld := typedmatrix.BuildRenumbering(4, kill(1, 3))
	assert.Equal(t, []int{0, -1, 1, -1, 2}, oldToNew)
	assert.Equal(t, []int{0, 2, 4}, newToOld)
}

func TestBuildRenumberingIgnoresOutOfRangeKills(t *testing.T) {
	oldToNew, newToOld := typedmatrix.BuildRenumbering(2, kill(-7, 1, 99))
	assert.Equal(t, []int{0, -1, 1}, oldToNew)
	assert.Equal(t, []int{0, 2}, newToOld)
}

func TestBuildRenumberingEdgeCases(t *testing.T) {
	oldToNew, newToOld := typedmatrix.BuildRenumbering(-1, kill(0))
	assert.Empty(t, oldToNew)
	assert.Empty(t, newToOld)

	// Killing everything leaves no survivors.
	oldToNew, newToOld = typedmatrix.BuildRenumbering(1, kill(0, 1))
	assert.Equal(t, []int{-1, -1}, oldToNew)
	assert.Empty(t, newToOld)

	// Killing nothing is the identity.
	oldToNew, newToOld = typedmatrix.BuildRenumbering(2, nil)
	assert.Equal(t, []int{0, 1, 2}, oldToNew)
	assert.Equal(t, []int{0, 1, 2}, newToOld)
}
