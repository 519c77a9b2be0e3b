// SPDX-License-Identifier: MIT

// Package setops provides the sorted-sequence set primitives shared by
// o2m and m2m: canonicalization (sort + dedup), the four
// ascending-output set operations, and lexicographic comparison.
//
// Every sequence accepted by this package is treated as a set: inputs are
// canonicalized internally before the merge, and outputs are always
// ascending and duplicate-free, regardless of input order or duplicates.
// The source-order-preserving row algebra of o2m (o2m.Union,
// o2m.Intersect, ...) does not use these primitives; it keeps its own
// membership sets.
package setops
