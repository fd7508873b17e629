// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// queueItem pairs a vertex with its depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from start.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("bfs: start %d: %w", start, core.ErrVertexNotFound)
	}
	return w.res, w.tree(start)
}

// Forest runs BFS from every vertex not reached so far, in index order.
func Forest(g *core.Graph, opts ...Option) (*Result, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	for s := 0; s < g.NodeCount(); s++ {
		if w.res.Depth[s] >= 0 {
			continue
		}
		if err = w.tree(s); err != nil {
			return w.res, err
		}
	}
	return w.res, nil
}

func newWalker(g *core.Graph, opts []Option) (*walker, error) {
	if err := g.Require(); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.NodeCount()
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
		Root:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i], res.Parent[i], res.Root[i] = -1, -1, -1
	}
	return &walker{graph: g, opts: o, queue: make([]queueItem, 0, n), res: res}, nil
}

// tree grows one BFS tree rooted at s.
func (w *walker) tree(s int) error {
	w.queue = w.queue[:0]
	w.enqueue(s, 0, -1, s)
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.v, item.depth)

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.neighbors(item.v) {
			if w.res.Depth[nbr] >= 0 || !w.opts.FilterNeighbor(item.v, nbr) {
				continue
			}
			w.enqueue(nbr, next, item.v, s)
		}
	}
	return nil
}

func (w *walker) enqueue(v, depth, parent, root int) {
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Root[v] = root
	w.opts.OnEnqueue(v, depth)
	w.queue = append(w.queue, queueItem{v: v, depth: depth})
}

func (w *walker) neighbors(v int) []int {
	if w.opts.Underlying {
		return w.graph.AdjacentNodes(v)
	}
	return w.graph.OutNeighbors(v)
}
