// SPDX-License-Identifier: MIT

// Package connectivity answers connectivity questions about a core.Graph:
// connected components, articulation (cut) vertices, biconnected components
// ("blocks") and bridges.
//
// Components treats a directed graph as its underlying undirected graph, so
// it reports weakly connected components. The low-link analyses (CutVertices,
// Blocks, Bridges, IsBiconnected) require an undirected graph.
//
// Complexity: every operation runs in O(V + E) time and O(V + E) memory.
//
// Errors:
//
//   - core.ErrNotAGraph           if g is nil.
//   - core.ErrUndirectedRequired  for low-link analyses on a directed graph.
//   - ctx.Err()                   if the context passed via WithContext is done.
package connectivity
