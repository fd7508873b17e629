// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links and visit order.
//
// What
//
//   - BFS(g, start) explores vertices in non-decreasing distance (edge count)
//     from start.
//   - Forest(g) restarts from every unreached vertex in index order and
//     records the root of each tree, which is how connectivity labels
//     components.
//   - Result holds Order, Depth, Parent and Root as index-addressed slices;
//     unreached vertices carry -1.
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (which may abort with an error).
//   - WithFilterNeighbor prunes individual edges, WithMaxDepth bounds the
//     search, WithUnderlying ignores edge direction.
//
// Determinism
//
//	core keeps out-neighbours in ascending index order and BFS enqueues in
//	that order, so the visit sequence is reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - core.ErrNotAGraph       if the graph pointer is nil.
//   - core.ErrVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      for a negative MaxDepth.
//   - context errors and wrapped OnVisit errors.
package bfs
