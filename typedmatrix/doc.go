// SPDX-License-Identifier: MIT

// Package typedmatrix implements MM2M: a fixed T×T grid of m2m.M2M
// cells modelling typed multi-relations, with a cascading mark-and-sweep
// deletion protocol across types.
//
// Cell (i,j) models "elements of type i are made of nodes of type j".
// The diagonal cell (t,t) carries the canonical self-list of entities of
// type t; its Count is the number of entities of that type. All T² cells
// exist for the lifetime of the grid, and type indices are validated on
// every call.
//
// Deletion is two-phase: MarkToErase inserts an entity into its type's
// kill list and walks every cross-type relation transitively (an
// explicit stack over (type, id) pairs with the marked sets as the
// visited set, so termination is guaranteed and work is linear), then a
// single Compress renumbers all surviving entities densely and rewrites
// every cell jointly, leaving no dangling references.
//
// Every public method runs under one grid-level mutex for cross-cell
// coherence. Mutating a cell obtained from Cell directly bypasses that
// mutex; do so only while no other goroutine uses the grid.
package typedmatrix
