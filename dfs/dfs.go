// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search from start, or over every component
// when WithFullTraversal is set (start is then ignored). On an error the
// partial result is returned with Order cleared.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if err := g.Require(); err != nil {
		return nil, fmt.Errorf("dfs: %w", err)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("dfs: start %d: %w", start, core.ErrVertexNotFound)
	}

	n := g.NodeCount()
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i], res.Parent[i] = -1, -1
	}
	w := &walker{graph: g, opts: o, res: res}

	if !o.FullTraversal {
		return res, w.abort(w.traverse(start, 0))
	}
	for v := 0; v < n; v++ {
		if res.Depth[v] < 0 {
			if err := w.traverse(v, 0); err != nil {
				return res, w.abort(err)
			}
		}
	}
	return res, nil
}

func (w *walker) abort(err error) error {
	if err != nil {
		w.res.Order = nil
	}
	return err
}

func (w *walker) traverse(v, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}
	w.res.Depth[v] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	for _, u := range w.graph.OutNeighbors(v) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(u) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Depth[u] >= 0 {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[u] = v
		if err := w.traverse(u, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)
	return nil
}
