// SPDX-License-Identifier: MIT

// Package viz renders OneToMany relations for debugging: an EPS
// document laying the bipartite relation out as a column of elements
// against a row of nodes, and a Graphviz DOT export with an optional
// PNG rasterizer. No correctness property of the containers depends on
// this output.
package viz
