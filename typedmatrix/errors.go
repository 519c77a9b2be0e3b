// SPDX-License-Identifier: MIT
// Package typedmatrix: sentinel error set.

package typedmatrix

import "errors"

var (
	// ErrInvalidTypeCount indicates an MM2M construction with fewer than
	// one type.
	ErrInvalidTypeCount = errors.New("typedmatrix: number of types must be at least 1")

	// ErrTypeOutOfRange indicates a type index outside [0, T).
	ErrTypeOutOfRange = errors.New("typedmatrix: type index out of range")
)
