// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/graphkit/core"
)

// nodeItem is a queue entry; dist is the distance at push time.
type nodeItem struct {
	v    int
	dist float64
}

// byDist orders queue entries by distance, then by vertex index.
func byDist(a, b interface{}) int {
	x, y := a.(nodeItem), b.(nodeItem)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	}
	return x.v - y.v
}

// Dijkstra computes shortest distances from source to every vertex of the
// weighted graph g. Edges without a weight attribute weigh 1. Undirected
// edges are traversed both ways.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if err := g.Require(core.NeedWeighted); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("dijkstra: source %d: %w", source, core.ErrVertexNotFound)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var bad error
	g.ForEachEdge(func(e core.Edge, _ *core.Attributes) bool {
		if w := weight(g, e.From, e.To); w < 0 || math.IsNaN(w) {
			bad = fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, g.Node(e.From), g.Node(e.To), w)
			return false
		}
		return true
	})
	if bad != nil {
		return nil, bad
	}

	n := g.NodeCount()
	r := &runner{
		g:       g,
		opts:    cfg,
		visited: make([]bool, n),
		pq:      priorityqueue.NewWith(byDist),
		res:     &Result{Source: source, Dist: make([]float64, n), Prev: make([]int, n)},
	}
	for i := 0; i < n; i++ {
		r.res.Dist[i], r.res.Prev[i] = math.Inf(1), -1
	}
	r.res.Dist[source] = 0
	r.pq.Enqueue(nodeItem{v: source})
	if err := r.process(); err != nil {
		return nil, err
	}
	return r.res, nil
}

func weight(g *core.Graph, u, v int) float64 {
	if w, ok := g.Weight(u, v); ok {
		return w
	}
	return 1
}

// runner holds the mutable state of one execution.
type runner struct {
	g       *core.Graph
	opts    Options
	visited []bool
	pq      *priorityqueue.Queue
	res     *Result
}

// process settles vertices in distance order until the queue is empty or
// the nearest entry lies beyond MaxDistance.
func (r *runner) process() error {
	for !r.pq.Empty() {
		if err := r.opts.Ctx.Err(); err != nil {
			return err
		}
		raw, _ := r.pq.Dequeue()
		item := raw.(nodeItem)
		if r.visited[item.v] {
			continue
		}
		if item.dist > r.opts.MaxDistance {
			break
		}
		r.visited[item.v] = true
		r.relax(item.v, item.dist)
	}
	// Entries left past the cap were tentative.
	for v, d := range r.res.Dist {
		if !r.visited[v] && !math.IsInf(d, 1) {
			r.res.Dist[v], r.res.Prev[v] = math.Inf(1), -1
		}
	}
	return nil
}

func (r *runner) relax(u int, d float64) {
	for _, v := range r.g.OutNeighbors(u) {
		if r.visited[v] {
			continue
		}
		w := weight(r.g, u, v)
		if w >= r.opts.InfEdgeThreshold {
			continue
		}
		if nd := d + w; nd < r.res.Dist[v] {
			r.res.Dist[v] = nd
			r.res.Prev[v] = u
			r.pq.Enqueue(nodeItem{v: v, dist: nd})
		}
	}
}
