// SPDX-License-Identifier: MIT
// Package o2m: sentinel error set.
// All algorithms return these sentinels rather than panicking on
// user-triggered conditions; panics are reserved for programmer errors in
// private helpers.

package o2m

import "errors"

var (
	// ErrElementOutOfRange indicates an element id outside [0, Count).
	ErrElementOutOfRange = errors.New("o2m: element id out of range")

	// ErrNodeNegative indicates a negative node id, which is never valid.
	ErrNodeNegative = errors.New("o2m: node id is negative")

	// ErrBadCSR indicates a malformed (rowPtr, col) pair passed to FromCSR.
	ErrBadCSR = errors.New("o2m: malformed CSR input")

	// ErrDuplicateRow indicates a row contains duplicate node ids, which
	// IsValid rejects even though construction itself permits it.
	ErrDuplicateRow = errors.New("o2m: row contains duplicate node ids")
)
