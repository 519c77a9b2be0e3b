// SPDX-License-Identifier: MIT
// File: types.go
// Role: MM2M grid type, TypedID, construction, cell access, options.

package typedmatrix

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vbrankov/sparserel/m2m"
	"github.com/vbrankov/sparserel/obs"
)

// TypedID addresses an entity in the grid: an id within a type.
type TypedID struct {
	Type int
	ID   int
}

// Less orders TypedIDs by type, then id.
func (t TypedID) Less(o TypedID) bool {
	if t.Type != o.Type {
		return t.Type < o.Type
	}

	return t.ID < o.ID
}

// sortUniqueTypedIDs sorts s by (Type, ID) and removes consecutive
// duplicates in place.
func sortUniqueTypedIDs(s []TypedID) []TypedID {
	sort.Slice(s, func(i, j int) bool { return s[i].Less(s[j]) })
	out := s[:0]
	for i, t := range s {
		if i == 0 || t != s[i-1] {
			out = append(out, t)
		}
	}

	return out
}

// Option configures an MM2M at construction time.
type Option func(*MM2M)

// WithLogger attaches a debug logger traced on mark/compress with the
// grid id as a correlation field.
func WithLogger(l *obs.Logger) Option {
	return func(g *MM2M) { g.log = l }
}

// WithMetrics attaches a metrics sink; the cascading-delete fan-out per
// MarkToErase call is observed on it alongside mutation counts.
func WithMetrics(mt *obs.Metrics) Option {
	return func(g *MM2M) { g.met = mt }
}

// MM2M is a T×T grid of m2m.M2M cells plus a per-type kill list. All
// public methods are guarded by a single grid mutex.
type MM2M struct {
	mu sync.Mutex

	t      int
	cells  [][]*m2m.M2M
	marked []map[int]struct{}

	id  uuid.UUID
	log *obs.Logger
	met *obs.Metrics
}

// NewMM2M allocates a grid of numberOfTypes × numberOfTypes fresh cells
// and an empty kill list per type. Returns ErrInvalidTypeCount when
// numberOfTypes < 1.
func NewMM2M(numberOfTypes int, opts ...Option) (*MM2M, error) {
	if numberOfTypes < 1 {
		return nil, ErrInvalidTypeCount
	}
	g := &MM2M{
		t:      numberOfTypes,
		cells:  make([][]*m2m.M2M, numberOfTypes),
		marked: make([]map[int]struct{}, numberOfTypes),
		id:     uuid.New(),
	}
	for i := 0; i < numberOfTypes; i++ {
		g.cells[i] = make([]*m2m.M2M, numberOfTypes)
		for j := 0; j < numberOfTypes; j++ {
			g.cells[i][j] = m2m.New()
		}
		g.marked[i] = make(map[int]struct{})
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With("mm2m", g.id.String())

	return g, nil
}

// ID returns the grid's correlation id.
func (g *MM2M) ID() uuid.UUID {
	return g.id
}

// NumberOfTypes returns T.
func (g *MM2M) NumberOfTypes() int {
	return g.t
}

// Cell returns the M2M at (elemType, nodeType). The cell is the live
// container, not a copy: mutations through it are visible to the grid
// but bypass the grid mutex.
func (g *MM2M) Cell(elemType, nodeType int) (*m2m.M2M, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkType(elemType); err != nil {
		return nil, err
	}
	if err := g.checkType(nodeType); err != nil {
		return nil, err
	}

	return g.cells[elemType][nodeType], nil
}

// checkType validates a type index against [0, T).
func (g *MM2M) checkType(t int) error {
	if t < 0 || t >= g.t {
		return ErrTypeOutOfRange
	}

	return nil
}
