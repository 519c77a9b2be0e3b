// SPDX-License-Identifier: MIT
// Package pfor: coverage anchors for the serial and parallel paths.

package pfor

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeCoversEveryIndexSerial(t *testing.T) {
	n := Threshold - 1
	seen := make([]int32, n)
	Range(n, func(i int) { atomic.AddInt32(&seen[i], 1) })
	for i, c := range seen {
		require.EqualValues(t, 1, c, "index %d", i)
	}
}

func TestRangeCoversEveryIndexParallel(t *testing.T) {
	n := Threshold * 3
	seen := make([]int32, n)
	Range(n, func(i int) { atomic.AddInt32(&seen[i], 1) })
	for i, c := range seen {
		require.EqualValues(t, 1, c, "index %d", i)
	}
}

func TestRangeDegenerate(t *testing.T) {
	called := false
	Range(0, func(int) { called = true })
	Range(-5, func(int) { called = true })
	assert.False(t, called)
}

func TestChunksPartition(t *testing.T) {
	for _, n := range []int{1, 7, Threshold, Threshold*4 + 3} {
		chunks := Chunks(n)
		require.NotEmpty(t, chunks)
		next := 0
		for _, ch := range chunks {
			assert.Equal(t, next, ch[0])
			assert.Greater(t, ch[1], ch[0])
			next = ch[1]
		}
		assert.Equal(t, n, next)
	}
	assert.Nil(t, Chunks(0))
}
