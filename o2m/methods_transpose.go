// SPDX-License-Identifier: MIT
// File: methods_transpose.go
// Role: Transpose via a three-pass count/allocate/fill scheme.
// Concurrency:
//   - Above pfor.Threshold elements, the count and fill passes are
//     chunked across goroutines; per-chunk counts are reconciled into
//     per-chunk write offsets by a prefix sum between passes, so every
//     target-row slot is written by exactly one writer.

package o2m

import (
	"sync"

	"github.com/vbrankov/sparserel/internal/pfor"
)

// Transpose returns the inverse relation: row n of the result lists the
// element ids e such that n appears in a's row e, in ascending e order
// (with e repeated once per occurrence when a row holds duplicates).
// The result has max(Count, MaxNode()+1) rows so that both the element
// and node spaces survive a round-trip.
//
// Negative node ids, which IsValid rejects, are skipped silently.
//
// Complexity: O(Count + total node occurrences), parallelized across
// element chunks above pfor.Threshold.
func (a *O2M) Transpose() *O2M {
	count := len(a.rows)
	outCount := max(count, a.MaxNode()+1)
	out := &O2M{rows: make([]Row, outCount), maxSet: false}
	if count == 0 {
		return out
	}
	if count < pfor.Threshold {
		a.transposeSerial(out, outCount)

		return out
	}
	a.transposeParallel(out, outCount)

	return out
}

func (a *O2M) transposeSerial(out *O2M, outCount int) {
	counts := make([]int, outCount)
	for _, row := range a.rows {
		for _, n := range row {
			if n >= 0 {
				counts[n]++
			}
		}
	}
	for n, c := range counts {
		out.rows[n] = make(Row, 0, c)
	}
	for e, row := range a.rows {
		for _, n := range row {
			if n >= 0 {
				out.rows[n] = append(out.rows[n], e)
			}
		}
	}
}

func (a *O2M) transposeParallel(out *O2M, outCount int) {
	chunks := pfor.Chunks(len(a.rows))

	// Pass 1: per-chunk occurrence counts.
	perChunk := make([][]int, len(chunks))
	var wg sync.WaitGroup
	for ci, ch := range chunks {
		wg.Add(1)
		go func(ci, lo, hi int) {
			defer wg.Done()
			counts := make([]int, outCount)
			for e := lo; e < hi; e++ {
				for _, n := range a.rows[e] {
					if n >= 0 {
						counts[n]++
					}
				}
			}
			perChunk[ci] = counts
		}(ci, ch[0], ch[1])
	}
	wg.Wait()

	// Prefix sum: offsets[ci][n] is where chunk ci starts writing within
	// target row n; successive chunks partition each row exactly.
	offsets := make([][]int, len(chunks))
	total := make([]int, outCount)
	for ci := range chunks {
		offs := make([]int, outCount)
		for n := 0; n < outCount; n++ {
			offs[n] = total[n]
			total[n] += perChunk[ci][n]
		}
		offsets[ci] = offs
	}

	// Pass 2: allocate every target row at its final length.
	for n := 0; n < outCount; n++ {
		out.rows[n] = make(Row, total[n])
	}

	// Pass 3: fill. Each chunk advances only its own offset cursor, and
	// element ids ascend within a chunk, so target rows come out in
	// ascending e order overall.
	for ci, ch := range chunks {
		wg.Add(1)
		go func(ci, lo, hi int) {
			defer wg.Done()
			offs := offsets[ci]
			for e := lo; e < hi; e++ {
				for _, n := range a.rows[e] {
					if n >= 0 {
						out.rows[n][offs[n]] = e
						offs[n]++
					}
				}
			}
		}(ci, ch[0], ch[1])
	}
	wg.Wait()
}
