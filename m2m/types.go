// SPDX-License-Identifier: MIT
// File: types.go
// Role: M2M container type, construction, guarded accessors, clone.
// AI-HINT (file):
//   - Public getters return copies of rows, never internal slices; the
//     derived views are rebuilt lazily so a returned copy is always
//     consistent with the forward adjacency at call time.

package m2m

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vbrankov/sparserel/o2m"
	"github.com/vbrankov/sparserel/obs"
)

// M2M is a OneToMany relation with a maintained inverse view and cached
// position indices. All public methods are guarded by a single mutex.
type M2M struct {
	mu sync.Mutex

	fwd *o2m.O2M // forward relation, element→node
	inv *o2m.O2M // elementsFromNode, rebuilt on sync

	// elemeloc[e][k]: position of e within inv row fwd[e][k].
	// nodeloc[n][k]: position of n within fwd row inv[n][k].
	elemeloc [][]int
	nodeloc  [][]int

	synced bool
	batch  bool

	id  uuid.UUID
	log *obs.Logger
	met *obs.Metrics
}

// New returns an empty M2M.
func New(opts ...Option) *M2M {
	m := &M2M{fwd: o2m.New(), synced: false, id: uuid.New()}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With("m2m", m.id.String())

	return m
}

// FromRows returns an M2M over a deep copy of rows.
func FromRows(rows []o2m.Row, opts ...Option) *M2M {
	m := New(opts...)
	m.fwd = o2m.FromRows(rows)

	return m
}

// FromO2M returns an M2M adopting relation a (no copy; the caller gives
// up ownership). Returns ErrNilRelation when a is nil.
func FromO2M(a *o2m.O2M, opts ...Option) (*M2M, error) {
	if a == nil {
		return nil, ErrNilRelation
	}
	m := New(opts...)
	m.fwd = a

	return m, nil
}

// ID returns the container's correlation id.
func (m *M2M) ID() uuid.UUID {
	return m.id
}

// Count returns the number of elements.
func (m *M2M) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.fwd.Count()
}

// MaxNode returns the maximum node id in any row, or -1 when empty.
func (m *M2M) MaxNode() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.fwd.MaxNode()
}

// Row returns a copy of element e's forward row, or nil when e is out
// of range.
func (m *M2M) Row(e int) o2m.Row {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.fwd.Row(e).Clone()
}

// Relation returns a deep copy of the forward relation as a plain O2M.
func (m *M2M) Relation() *o2m.O2M {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.fwd.Clone()
}

// Clone returns a deep copy of the forward relation under a fresh
// container identity. The derived views are dropped rather than copied;
// the clone rebuilds them on its first synchronized read.
func (m *M2M) Clone(opts ...Option) *M2M {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := &M2M{fwd: m.fwd.Clone(), synced: false, id: uuid.New(), met: m.met}
	c.log = m.log.With("clone", c.id.String())
	for _, opt := range opts {
		opt(c)
	}

	return c
}
