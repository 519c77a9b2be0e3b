// SPDX-License-Identifier: MIT

// Package m2m implements ManyToMany: a OneToMany relation paired with a
// lazily-synchronized inverse view (node→elements) and cached position
// indices, behind a single mutex.
//
// The derived views are pure functions of the forward adjacency:
//
//   - ElementsFromNode(n): the transpose row for node n.
//   - ElemLoc(e)[k]: the position at which element e appears within
//     ElementsFromNode(row(e)[k]).
//   - NodeLoc(n)[k]: the position at which node n appears within the
//     forward row of the k-th element of ElementsFromNode(n).
//
// Synchronization contract: every mutation marks the views dirty; the
// first read that names them rebuilds all three. EnterBatch suppresses
// the rebuild between successive mutations; LeaveBatch re-syncs if
// dirty. Sync is idempotent, and the dirty-flag transitions are
// protected by the container mutex.
//
// Every public method acquires the mutex for its full duration, which
// yields sequential consistency per operation; multi-step atomicity
// requires external serialization. Row slices returned by public
// methods are copies: callers never hold references into internal
// state across a mutation boundary.
package m2m
