// SPDX-License-Identifier: MIT

// Package sparserel is a library for typed multi-relational sparse
// graphs: a family of adjacency containers for bipartite element–node
// relations and their matrix-algebra operations.
//
// The module is organized leaves-first:
//
//   - setops: sorted-sequence set primitives (intersect, union,
//     difference, symmetric difference, lexicographic compare).
//   - o2m: OneToMany, the core sparse adjacency: mutation,
//     renumbering, transpose, boolean row algebra, symbolic
//     multiplication, topological ordering, acyclicity, CSR and
//     boolean-matrix interop, clique expansion.
//   - m2m: ManyToMany: an O2M with a lazily-synchronized inverse view
//     and cached position indices, behind a mutex, exposing
//     neighborhood, superset-match, and product queries.
//   - typedmatrix: MM2M: a T×T grid of M2M cells with cross-type
//     traversal, type-level DAG analysis, and a cascading
//     mark-and-sweep deletion protocol.
//   - randrel: seedable Bernoulli-trial random relation factory.
//   - viz: EPS and Graphviz DOT debug exports.
//   - obs: optional structured logging and Prometheus metrics seams.
//
// Typical workloads are mesh/topology, combinatorial, and
// relational-analytics code that repeatedly queries neighborhoods,
// composes relations, extracts connected structure, and performs
// coordinated deletions across multiple interacting relations.
package sparserel
