// SPDX-License-Identifier: MIT
// Package o2m_test: benchmarks for the bulk paths (transpose, multiply,
// union) over a seeded random relation large enough to cross the
// parallel threshold.

package o2m_test

import (
	"testing"

	"github.com/vbrankov/sparserel/o2m"
	"github.com/vbrankov/sparserel/randrel"
)

func benchRelation(b *testing.B, elems, nodes int, density float64) *o2m.O2M {
	b.Helper()
	a, err := randrel.RandomO2M(elems, nodes, density, randrel.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	return a
}

func BenchmarkTranspose(b *testing.B) {
	a := benchRelation(b, 20_000, 2_000, 0.01)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Transpose()
	}
}

func BenchmarkMultiply(b *testing.B) {
	a := benchRelation(b, 10_000, 10_000, 0.002)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Multiply(a)
	}
}

func BenchmarkUnion(b *testing.B) {
	x := benchRelation(b, 10_000, 4_000, 0.01)
	y := benchRelation(b, 10_000, 4_000, 0.01)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Union(y)
	}
}
