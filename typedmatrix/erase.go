// SPDX-License-Identifier: MIT
// File: erase.go
// Role: the cascading mark-and-sweep deletion protocol.
// MarkToErase walks cross-type relations with an explicit (type, id)
// stack; the marked sets double as the visited set, which bounds the
// walk to linear work and guarantees termination on cyclic relation
// graphs.

package typedmatrix

// IsMarked reports whether (entityType, id) is currently on the kill
// list.
func (g *MM2M) IsMarked(entityType, id int) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkType(entityType); err != nil {
		return false, err
	}
	_, ok := g.marked[entityType][id]

	return ok, nil
}

// MarkToErase inserts (nodeType, node) into its type's kill list and
// transitively marks every element, in any type, that references a
// marked entity. Marking an already-marked entity is a no-op.
func (g *MM2M) MarkToErase(nodeType, node int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkType(nodeType); err != nil {
		return err
	}
	if _, ok := g.marked[nodeType][node]; ok {
		return nil
	}

	fanout := 0
	stack := []TypedID{{Type: nodeType, ID: node}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := g.marked[cur.Type][cur.ID]; ok {
			continue
		}
		g.marked[cur.Type][cur.ID] = struct{}{}
		fanout++
		for _, ref := range g.allElementsLocked(cur.Type, cur.ID) {
			if _, ok := g.marked[ref.Type][ref.ID]; !ok {
				stack = append(stack, ref)
			}
		}
	}

	g.met.ObserveEraseFanout(fanout)
	g.log.Debug("mark to erase", "type", nodeType, "id", node, "fanout", fanout)

	return nil
}

// Compress sweeps the kill lists: for every type it renumbers the
// survivors densely in ascending order, rewrites every cell of the grid
// through the joint (newToOld element, oldToNew node) maps, and finally
// clears all kill lists. After Compress no surviving row in any cell
// contains a killed id and the relative order of survivors is
// preserved.
func (g *MM2M) Compress() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	oldToNew := make([][]int, g.t)
	newToOld := make([][]int, g.t)
	for t := 0; t < g.t; t++ {
		oldToNew[t], newToOld[t] = BuildRenumbering(g.maxIDLocked(t), g.marked[t])
	}

	for i := 0; i < g.t; i++ {
		for j := 0; j < g.t; j++ {
			g.cells[i][j].RearrangeAfterRenumbering(newToOld[i], oldToNew[j])
		}
	}

	for t := 0; t < g.t; t++ {
		g.log.Debug("compress", "type", t, "killed", len(g.marked[t]), "survivors", len(newToOld[t]))
		g.marked[t] = make(map[int]struct{})
	}
	g.met.IncMutation()

	return nil
}

// maxIDLocked returns the largest entity id in use for type t across
// the whole grid: the diagonal row count, every row count of t's
// element axis, and every node value of t's node axis all bound it.
func (g *MM2M) maxIDLocked(t int) int {
	maxID := g.cells[t][t].Count() - 1
	for j := 0; j < g.t; j++ {
		if c := g.cells[t][j].Count() - 1; c > maxID {
			maxID = c
		}
		if n := g.cells[j][t].MaxNode(); n > maxID {
			maxID = n
		}
	}

	return maxID
}
