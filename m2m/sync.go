// SPDX-License-Identifier: MIT
// File: sync.go
// Role: lazy rebuild of the inverse view and position caches, plus the
// batch-mode switch.
// Concurrency:
//   - syncLocked runs with the container mutex held; the position-table
//     fills fan out across elements/nodes via internal/pfor.Range, which
//     only reads fwd/inv and writes disjoint output rows.

package m2m

import (
	"sort"
	"time"

	"github.com/vbrankov/sparserel/internal/pfor"
	"github.com/vbrankov/sparserel/o2m"
)

// Synchronize forces a rebuild of the derived views if they are dirty.
// It is called implicitly by every read that names them; an explicit
// call is only useful to front-load the cost.
func (m *M2M) Synchronize() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncLocked()
}

// InSync reports whether the derived views currently reflect the
// forward adjacency.
func (m *M2M) InSync() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.synced
}

// EnterBatch suppresses automatic synchronization between successive
// mutations until LeaveBatch. Reads during batch mode still force a
// rebuild when they need the views.
func (m *M2M) EnterBatch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batch = true
	m.log.Debug("batch enter")
}

// LeaveBatch ends batch mode and re-syncs if dirty.
func (m *M2M) LeaveBatch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batch = false
	m.log.Debug("batch leave", "dirty", !m.synced)
	m.syncLocked()
}

// markDirtyLocked invalidates the views; the next read rebuilds them
// lazily, in or out of batch mode. Mutations never rebuild eagerly.
func (m *M2M) markDirtyLocked() {
	m.synced = false
	m.met.IncMutation()
}

// syncLocked rebuilds inv, elemeloc, and nodeloc from fwd. Idempotent;
// no-op while already in sync.
func (m *M2M) syncLocked() {
	if m.synced {
		return
	}
	start := time.Now()

	m.inv = m.fwd.Transpose()

	// elemeloc[e][k]: position of e in inv[fwd[e][k]]. Inverse rows are
	// ascending in e, so a binary search per occurrence suffices.
	m.elemeloc = make([][]int, m.fwd.Count())
	pfor.Range(m.fwd.Count(), func(e int) {
		row := m.fwd.Row(e)
		loc := make([]int, len(row))
		for k, n := range row {
			loc[k] = positionOf(m.inv.Row(n), e)
		}
		m.elemeloc[e] = loc
	})

	// nodeloc[n][k]: position of n in fwd[inv[n][k]]. Forward rows are
	// unordered, so this is a linear scan per occurrence.
	m.nodeloc = make([][]int, m.inv.Count())
	pfor.Range(m.inv.Count(), func(n int) {
		row := m.inv.Row(n)
		loc := make([]int, len(row))
		for k, e := range row {
			loc[k] = indexOf(m.fwd.Row(e), n)
		}
		m.nodeloc[n] = loc
	})

	m.synced = true
	elapsed := time.Since(start)
	m.met.ObserveSync(elapsed)
	m.log.Debug("sync", "elements", m.fwd.Count(), "nodes", m.inv.Count(), "took", elapsed)
}

// positionOf returns the index of the first occurrence of v in the
// ascending row, or -1 when absent.
func positionOf(row o2m.Row, v int) int {
	i := sort.SearchInts(row, v)
	if i < len(row) && row[i] == v {
		return i
	}

	return -1
}

// indexOf returns the index of the first occurrence of v in row, or -1.
func indexOf(row o2m.Row, v int) int {
	for i, x := range row {
		if x == v {
			return i
		}
	}

	return -1
}
