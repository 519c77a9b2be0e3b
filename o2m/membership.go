// SPDX-License-Identifier: MIT
// File: membership.go
// Role: membership set abstraction backing the row-algebra operators:
// a bitset fast path for small node domains, a hash set otherwise.

package o2m

import "sync"

// bitsetThreshold is the domain size (maxNode+1) at or below which a
// bitset backs membership tests instead of a map[int]struct{}.
const bitsetThreshold = 4096

// bitsetPool recycles bitset backing arrays; Multiply hands each one it
// borrows back through releaseMembership. Entries are returned
// zero-length; the borrower re-slices and clears to its domain.
var bitsetPool = sync.Pool{
	New: func() any { return make([]uint64, 0, bitsetThreshold/64+1) },
}

// membership is a set of non-negative ints, backed by whichever
// representation suits the observed domain size.
type membership interface {
	add(v int)
	has(v int) bool
}

// bitsetMembership backs small domains with a []uint64 bitset.
type bitsetMembership struct {
	words []uint64
}

func newBitsetMembership(domain int) *bitsetMembership {
	need := (domain+63)/64 + 1
	words := bitsetPool.Get().([]uint64)
	if cap(words) < need {
		words = make([]uint64, need)
	} else {
		words = words[:need]
		clear(words)
	}

	return &bitsetMembership{words: words}
}

func (b *bitsetMembership) add(v int) {
	b.words[v/64] |= 1 << uint(v%64)
}

func (b *bitsetMembership) has(v int) bool {
	w := v / 64
	if w < 0 || w >= len(b.words) {
		return false
	}

	return b.words[w]&(1<<uint(v%64)) != 0
}

// hashMembership backs large domains with a hash set.
type hashMembership struct {
	set map[int]struct{}
}

func newHashMembership(capacity int) *hashMembership {
	return &hashMembership{set: make(map[int]struct{}, capacity)}
}

func (h *hashMembership) add(v int) { h.set[v] = struct{}{} }

func (h *hashMembership) has(v int) bool {
	_, ok := h.set[v]

	return ok
}

// newMembershipFor returns a bitsetMembership when domain is small enough
// to make a flat bitset worthwhile, and a hashMembership otherwise.
func newMembershipFor(domain, capacityHint int) membership {
	if domain >= 0 && domain+1 <= bitsetThreshold {
		return newBitsetMembership(domain)
	}

	return newHashMembership(capacityHint)
}

// setFromRow builds a membership set over row's values, sized for the
// given domain (row's own max, typically).
func setFromRow(row Row, domain int) membership {
	m := newMembershipFor(domain, len(row))
	for _, v := range row {
		m.add(v)
	}

	return m
}

// releaseMembership returns a bitset's backing array to the pool. The
// caller must not touch m afterward. Hash-backed sets are left to the
// garbage collector.
func releaseMembership(m membership) {
	if b, ok := m.(*bitsetMembership); ok {
		bitsetPool.Put(b.words[:0])
	}
}

func rowMax(row Row) int {
	mx := -1
	for _, v := range row {
		if v > mx {
			mx = v
		}
	}

	return mx
}
