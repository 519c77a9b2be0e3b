// SPDX-License-Identifier: MIT
// File: typedag.go
// Role: type-level DAG analysis: the auxiliary relation over types with
// an edge e→n iff cell (e,n) is non-empty and e≠n.

package typedmatrix

import "github.com/vbrankov/sparserel/o2m"

// typeGraphLocked builds the auxiliary O2M over [0,T) and reports
// whether it carries any edge at all.
func (g *MM2M) typeGraphLocked() (*o2m.O2M, bool) {
	d := o2m.NewWithCapacity(g.t)
	hasEdges := false
	for e := 0; e < g.t; e++ {
		row := make(o2m.Row, 0)
		for n := 0; n < g.t; n++ {
			if e != n && g.cells[e][n].Count() > 0 {
				row = append(row, n)
				hasEdges = true
			}
		}
		d.AppendElement(row)
	}

	return d, hasEdges
}

// AreTypesAcyclic reports whether the type-level dependency graph is
// acyclic.
func (g *MM2M) AreTypesAcyclic() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	d, _ := g.typeGraphLocked()

	return d.IsAcyclic()
}

// GetTypeTopOrder returns a topological ordering of the type-level
// dependency graph, or the identity order [0..T) when the graph has no
// edges at all.
func (g *MM2M) GetTypeTopOrder() []int {
	g.mu.Lock()
	defer g.mu.Unlock()

	d, hasEdges := g.typeGraphLocked()
	if !hasEdges {
		order := make([]int, g.t)
		for i := range order {
			order[i] = i
		}

		return order
	}

	return d.GetTopOrder()
}
