// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search traversal, cycle finding and
// topological sort on a core.Graph.
//
// What:
//
//   - DFS(g, start): explores as far as possible along each branch before
//     backtracking, with pre-order and post-order hooks, cancellation,
//     depth limiting, neighbour filtering and forest mode
//     (WithFullTraversal).
//   - FindCycle(g): returns one cycle as a vertex sequence, or nil when g
//     is acyclic (a forest, for undirected graphs).
//   - TopologicalSort(g): orders the vertices of a directed acyclic graph
//     so that every arc points forward; ErrCycleDetected otherwise.
//
// Vertex states follow the usual colouring: White (unvisited), Gray (on the
// recursion stack) and Black (finished). Neighbours are explored in
// ascending index order, so results are deterministic.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the recursion stack and state slices.
package dfs
