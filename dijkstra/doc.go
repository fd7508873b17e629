// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted graphs.
//
// Dijkstra computes the minimum-cost path from a source vertex to every
// reachable vertex of a graph with non-negative edge weights, taken from
// the weight attribute. Vertices are settled in order of increasing
// distance using a gods priority queue with lazy decrease-key: stale
// entries are pushed and skipped on extraction.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (the queue may hold one entry per relaxation)
//
// Options:
//
//   - WithContext(ctx):          cancellation, checked once per settled vertex.
//   - WithMaxDistance(d):        vertices farther than d stay unreached.
//   - WithInfEdgeThreshold(t):   edges with weight ≥ t are impassable.
//
// Errors:
//
//   - core.ErrNotAGraph, core.ErrWeightedRequired from Graph.Require.
//   - core.ErrVertexNotFound if the source is out of range.
//   - ErrNegativeWeight if any edge weighs less than zero.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, src)
//	path, _ := res.PathTo(dst)
package dijkstra
