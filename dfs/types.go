// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

// Vertex states during a search.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // it and all its descendants are explored
)

// ErrCycleDetected is returned by TopologicalSort on a graph with a cycle.
var ErrCycleDetected = errors.New("dfs: cycle detected")

// Option configures DFS.
type Option func(*Options)

// Options holds the parameters of DFS.
type Options struct {
	// Ctx allows cancellation; checked on every vertex discovery.
	Ctx context.Context

	// OnVisit is invoked when a vertex is discovered (pre-order). An error
	// aborts the traversal.
	OnVisit func(v int) error

	// OnExit is invoked after all descendants of a vertex are explored
	// (post-order). An error aborts the traversal.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits recursion depth. 0 visits only the
	// start vertex.
	MaxDepth int

	// FilterNeighbor, if set, is asked before descending into a neighbour.
	FilterNeighbor func(v int) bool

	// FullTraversal restarts from every unvisited vertex in index order.
	FullTraversal bool
}

// DefaultOptions returns a background context, no hooks, no depth limit
// and single-source traversal.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the cancellation context. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("dfs: WithContext(nil)")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; a negative limit removes it.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbours for which fn returns false; they are
// counted in Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(v int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers every component.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a traversal. Slices are indexed by vertex.
type Result struct {
	// Order records vertices as they finish (post-order).
	Order []int
	// Depth is the tree depth of each vertex, -1 if not visited.
	Depth []int
	// Parent is the discovering vertex, -1 for roots and unvisited ones.
	Parent []int
	// SkippedNeighbors counts neighbours rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Visited reports whether v was reached.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
