// SPDX-License-Identifier: MIT

// Package core provides the index-based Graph used by every graphkit
// algorithm, together with the AttributeStore (Attributes) that carries
// graph, vertex and edge metadata.
//
// Vertices are addressed by position 0..N-1 in insertion order. Each vertex
// carries a label (value.Value, unique within the graph), an attribute store
// and an ordered neighbour map (red-black tree from neighbour index to the
// edge's attribute store).
//
// Canonical edge form:
//
//	undirected: (min(i,j), max(i,j)) stored only in the lower vertex
//	directed:   (i,j) stored in vertex i; (j,i) is an independent arc
//
// Every edge operation routes through MakeEdge, so HasEdge(i,j) and
// HasEdge(j,i) agree on undirected graphs by construction.
//
// A reverse index (tree set of predecessors per vertex) is maintained on
// every insert and removal, which makes InDegree O(1) and AdjacentNodes a
// linear merge of two sorted sequences.
//
// Failure policy:
//
//   - Mutators that would break an invariant (bad index, self-loop, duplicate
//     edge) return false or -1 and leave the graph untouched.
//   - Operations with richer failure modes return one of the sentinel errors
//     declared in errors.go; these double as the user-facing error taxonomy.
//
// Graph is not safe for concurrent mutation. Callers that share a graph
// across goroutines must synchronize externally.
package core
