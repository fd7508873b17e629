// SPDX-License-Identifier: MIT
//
// TopologicalSort computes a linear ordering of vertices such that for
// every arc u→v, u appears before v.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)

package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

type topoSorter struct {
	graph *core.Graph
	ctx   context.Context
	state []int
	order []int
}

// TopologicalSort orders the vertices of a directed graph. Ties are broken
// so that the result is the reverse post-order of a search started from
// each unvisited vertex in index order. Undirected graphs yield
// core.ErrDirectedRequired; cyclic ones ErrCycleDetected. Only WithContext
// is honoured among the options.
func TopologicalSort(g *core.Graph, opts ...Option) ([]int, error) {
	if err := g.Require(core.NeedDirected); err != nil {
		return nil, fmt.Errorf("dfs: TopologicalSort: %w", err)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	n := g.NodeCount()
	t := &topoSorter{graph: g, ctx: o.Ctx, state: make([]int, n), order: make([]int, 0, n)}
	for v := 0; v < n; v++ {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}
	return t.order, nil
}

func (t *topoSorter) visit(v int) error {
	if err := t.ctx.Err(); err != nil {
		return err
	}
	switch t.state[v] {
	case Gray:
		return fmt.Errorf("%w: back arc into %s", ErrCycleDetected, t.graph.Node(v))
	case Black:
		return nil
	}
	t.state[v] = Gray
	for _, u := range t.graph.OutNeighbors(v) {
		if err := t.visit(u); err != nil {
			return err
		}
	}
	t.state[v] = Black
	t.order = append(t.order, v)
	return nil
}
