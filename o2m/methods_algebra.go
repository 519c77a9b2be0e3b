// SPDX-License-Identifier: MIT
// File: methods_algebra.go
// Role: Row-order-preserving boolean algebra over O2M: Union, Intersect,
// Difference, SymmetricDifference. Each produces a new O2M; short
// rows pair with empty rows when operand row counts differ.
// AI-HINT (file):
//   - These preserve row ORDER (left-first, then right-additions); for
//     ascending canonical-set variants over plain slices, see the setops
//     package instead.

package o2m

// Union returns A|B (also written A+B): for each row index i up to
// max(A.Count(), B.Count()), the result row is A[i] in source order
// (deduplicated), followed by the elements of B[i] not already present.
//
// Complexity: O(Count * avg row length).
func (a *O2M) Union(b *O2M) *O2M {
	n := max(a.Count(), b.Count())
	out := NewWithCapacity(n)
	for i := 0; i < n; i++ {
		out.AppendElement(rowUnion(a.Row(i), b.Row(i)))
	}

	return out
}

// Or is an alias for Union.
func (a *O2M) Or(b *O2M) *O2M { return a.Union(b) }

// Intersect returns A&B: for each row index i up to min(A.Count(),
// B.Count()), the result row holds the elements of A[i], in A's order,
// that also appear in B[i] (deduplicated).
//
// Complexity: O(Count * avg row length).
func (a *O2M) Intersect(b *O2M) *O2M {
	n := min(a.Count(), b.Count())
	out := NewWithCapacity(n)
	for i := 0; i < n; i++ {
		out.AppendElement(rowIntersect(a.Row(i), b.Row(i)))
	}

	return out
}

// And is an alias for Intersect.
func (a *O2M) And(b *O2M) *O2M { return a.Intersect(b) }

// Difference returns A−B: A[i] minus B[i], preserving A's order, for each
// row index i < A.Count(). Rows at indices beyond B.Count() are returned
// unchanged (deduplicated).
//
// Complexity: O(Count * avg row length).
func (a *O2M) Difference(b *O2M) *O2M {
	out := NewWithCapacity(a.Count())
	for i := 0; i < a.Count(); i++ {
		out.AppendElement(rowDifference(a.Row(i), b.Row(i)))
	}

	return out
}

// Sub is an alias for Difference.
func (a *O2M) Sub(b *O2M) *O2M { return a.Difference(b) }

// SymmetricDifference returns A^B ≡ (A|B) − (A&B).
//
// Complexity: O(Count * avg row length).
func (a *O2M) SymmetricDifference(b *O2M) *O2M {
	return a.Union(b).Difference(a.Intersect(b))
}

// Xor is an alias for SymmetricDifference.
func (a *O2M) Xor(b *O2M) *O2M { return a.SymmetricDifference(b) }

// rowUnion returns a's elements (order preserved, deduplicated) followed
// by b's elements not already present.
func rowUnion(a, b Row) Row {
	domain := max(rowMax(a), rowMax(b))
	seen := newMembershipFor(domain, len(a)+len(b))
	out := make(Row, 0, len(a)+len(b))
	for _, v := range a {
		if !seen.has(v) {
			seen.add(v)
			out = append(out, v)
		}
	}
	for _, v := range b {
		if !seen.has(v) {
			seen.add(v)
			out = append(out, v)
		}
	}

	return out
}

// rowIntersect returns a's elements, in a's order, that also appear in b.
func rowIntersect(a, b Row) Row {
	inB := setFromRow(b, rowMax(b))
	emitted := newMembershipFor(rowMax(a), len(a))
	out := make(Row, 0, min(len(a), len(b)))
	for _, v := range a {
		if inB.has(v) && !emitted.has(v) {
			emitted.add(v)
			out = append(out, v)
		}
	}

	return out
}

// rowDifference returns a's elements, in a's order, absent from b.
func rowDifference(a, b Row) Row {
	inB := setFromRow(b, rowMax(b))
	emitted := newMembershipFor(rowMax(a), len(a))
	out := make(Row, 0, len(a))
	for _, v := range a {
		if !inB.has(v) && !emitted.has(v) {
			emitted.add(v)
			out = append(out, v)
		}
	}

	return out
}
