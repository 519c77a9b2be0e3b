// SPDX-License-Identifier: MIT
// File: queries.go
// Role: cross-type queries over the grid, all under the grid mutex.
// Node-keyed lookups tolerate out-of-range ids by returning empty, type
// indices are always validated.

package typedmatrix

// GetAllElements returns, sorted by (type, id), every (elemType, elem)
// such that elem's row in cell (elemType, nodeType) contains node, for
// every elemType other than nodeType itself.
func (g *MM2M) GetAllElements(nodeType, node int) ([]TypedID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkType(nodeType); err != nil {
		return nil, err
	}

	return g.allElementsLocked(nodeType, node), nil
}

func (g *MM2M) allElementsLocked(nodeType, node int) []TypedID {
	out := make([]TypedID, 0)
	for elemType := 0; elemType < g.t; elemType++ {
		if elemType == nodeType {
			continue
		}
		for _, e := range g.cells[elemType][nodeType].ElementsFromNode(node) {
			out = append(out, TypedID{Type: elemType, ID: e})
		}
	}

	return sortUniqueTypedIDs(out)
}

// GetAllNodes returns, sorted by (type, id), every (nodeType, node)
// appearing in elem's row of cell (elemType, nodeType), across all node
// types.
func (g *MM2M) GetAllNodes(elemType, elem int) ([]TypedID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkType(elemType); err != nil {
		return nil, err
	}

	out := make([]TypedID, 0)
	for nodeType := 0; nodeType < g.t; nodeType++ {
		for _, n := range g.cells[elemType][nodeType].Row(elem) {
			out = append(out, TypedID{Type: nodeType, ID: n})
		}
	}

	return sortUniqueTypedIDs(out), nil
}

// GetAllElementsOfType returns, sorted and deduplicated, every
// (elemType, elem) related to any node of nodeType: the union of
// GetAllElements over the whole node axis.
func (g *MM2M) GetAllElementsOfType(nodeType int) ([]TypedID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkType(nodeType); err != nil {
		return nil, err
	}

	out := make([]TypedID, 0)
	for elemType := 0; elemType < g.t; elemType++ {
		if elemType == nodeType {
			continue
		}
		cell := g.cells[elemType][nodeType]
		for e := 0; e < cell.Count(); e++ {
			if len(cell.Row(e)) > 0 {
				out = append(out, TypedID{Type: elemType, ID: e})
			}
		}
	}

	return sortUniqueTypedIDs(out), nil
}

// GetAllNodesOfType returns, sorted and deduplicated, every
// (nodeType, node) used by any element of elemType: the union of
// GetAllNodes over the whole element axis.
func (g *MM2M) GetAllNodesOfType(elemType int) ([]TypedID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkType(elemType); err != nil {
		return nil, err
	}

	out := make([]TypedID, 0)
	for nodeType := 0; nodeType < g.t; nodeType++ {
		cell := g.cells[elemType][nodeType]
		for e := 0; e < cell.Count(); e++ {
			for _, n := range cell.Row(e) {
				out = append(out, TypedID{Type: nodeType, ID: n})
			}
		}
	}

	return sortUniqueTypedIDs(out), nil
}

// GetNumberOfElements returns the entity count of elemType: the row
// count of the diagonal cell.
func (g *MM2M) GetNumberOfElements(elemType int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkType(elemType); err != nil {
		return 0, err
	}

	return g.cells[elemType][elemType].Count(), nil
}

// GetNumberOfActiveElements returns the count of diagonal-cell rows
// whose first entry is currently on elemType's kill list. "Active" here
// means mark-and-sweep activity: entities whose deletion is pending
// between MarkToErase and Compress.
func (g *MM2M) GetNumberOfActiveElements(elemType int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkType(elemType); err != nil {
		return 0, err
	}

	diag := g.cells[elemType][elemType]
	count := 0
	for e := 0; e < diag.Count(); e++ {
		row := diag.Row(e)
		if len(row) == 0 {
			continue
		}
		if _, ok := g.marked[elemType][row[0]]; ok {
			count++
		}
	}

	return count, nil
}
