// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning trees of undirected,
// weighted *core.Graph values with Prim's and Kruskal's algorithms.
//
// Both algorithms return the tree as a list of core.Edge (From < To) and
// its total weight. Edges without a weight attribute weigh 1.
//
//   - Kruskal sorts all edges by (weight, From, To) and merges components
//     with a disjoint-set forest. O(E log E).
//   - Prim grows the tree from a root vertex through a binary heap of
//     candidate edges. O(E log V).
//
// On a disconnected graph both return ErrDisconnected; Forest returns a
// minimum spanning forest instead. Ties are broken by vertex index, so
// for a fixed graph the result is deterministic and, when weights are
// distinct, both algorithms return the same edge set.
//
//	g, _ := dot.Parse(`graph { a -- b [weight=1]; b -- c [weight=2]; a -- c [weight=3] }`)
//	tree, total, err := prim_kruskal.Kruskal(g) // total == 3
package prim_kruskal
