// SPDX-License-Identifier: MIT
// Package m2m: sentinel error set.

package m2m

import "errors"

var (
	// ErrElementOutOfRange indicates an element id outside [0, Count)
	// where a bounded element index is required.
	ErrElementOutOfRange = errors.New("m2m: element id out of range")

	// ErrNilRelation indicates a nil *o2m.O2M passed where a relation is
	// required.
	ErrNilRelation = errors.New("m2m: nil relation")
)
