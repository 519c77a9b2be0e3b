// SPDX-License-Identifier: MIT
// Package pfor provides the chunked parallel-for primitive used by
// o2m.Transpose, o2m.Multiply, and o2m.GetCliques for bulk per-row work.
// Below Threshold items, Range runs serially on the calling goroutine to
// avoid goroutine-launch overhead dominating small inputs.
//
// The shape (partition the outer index into contiguous chunks, run each
// chunk in its own goroutine, wait for all of them) is generalized here
// into a single reusable helper rather than re-inlining the WaitGroup
// bookkeeping at every call site.
package pfor

import (
	"runtime"
	"sync"
)

// Threshold is the nominal workload size below which Range runs serially.
const Threshold = 4096

// Range calls fn(i) for every i in [0, n). When n is at least Threshold,
// the index space is split into contiguous chunks, one goroutine per
// chunk, bounded by GOMAXPROCS; fn must be safe to call concurrently for
// distinct i (typically because it only writes to index i of a
// pre-allocated output).
//
// Complexity: O(n) total work plus O(min(n,GOMAXPROCS)) goroutines.
func Range(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if n < Threshold {
		for i := 0; i < n; i++ {
			fn(i)
		}

		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}

// Chunks splits [0, n) into contiguous [lo,hi) ranges, one per worker
// (bounded by GOMAXPROCS), for callers that need the boundaries
// themselves, e.g. Transpose's count/offset/fill passes, which reconcile
// per-chunk counts via a prefix sum between passes rather than writing
// through fn directly.
func Chunks(n int) [][2]int {
	if n <= 0 {
		return nil
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	out := make([][2]int, 0, workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		out = append(out, [2]int{lo, hi})
	}

	return out
}
