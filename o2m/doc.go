// SPDX-License-Identifier: MIT

// Package o2m implements OneToMany, a sparse row-indexed relation from
// elements to nodes, and the algebraic and structural operations over it.
//
// An O2M is a sequence of rows indexed 0..Count-1; each index is an
// element id, and the integers inside a row are node ids drawn from an
// implicit domain [0, MaxNode()]. Row order is significant and preserved
// across every operation unless a method explicitly sorts.
//
// Operation families:
//
//   - Mutation: AppendElement, AppendElements, AppendNodeToElement,
//     RemoveNodeFromElement, ClearElement, ReplaceElement. Each
//     invalidates the cached MaxNode.
//   - Renumbering: CompressElements, PermuteElements, PermuteNodes,
//     RearrangeAfterRenumbering.
//   - Algebra: Multiply (symbolic boolean matmul), Union/Or,
//     Intersect/And, Difference/Sub, SymmetricDifference/Xor. Each
//     produces a new O2M; row order follows the left operand with right
//     additions appended.
//   - Structure: Transpose, GetTopOrder (Kahn), IsAcyclic (iterative
//     3-color DFS), GetCliques.
//   - Interop: ToCSR/FromCSR, ToBooleanMatrix/FromBooleanMatrix.
//   - Ordering: Compare, Equal, IsPermutationOf.
//
// Concurrency: O2M is NOT internally synchronized. Bulk per-row work in
// Transpose, Multiply, and GetCliques is parallelized internally above a
// workload threshold. Transpose and Multiply call MaxNode, which
// refreshes the cached value after a mutation, so even concurrent
// read-only calls on the same O2M need external synchronization.
// m2m.M2M and typedmatrix.MM2M wrap O2M behind a mutex for callers that
// need guarded access.
//
// Determinism: every operation is deterministic except the intra-row
// order of Multiply results, which callers must treat as sets.
package o2m
