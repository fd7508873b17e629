// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/graphkit/core"
)

// byWeight is the heap comparator for candidate edges.
func byWeight(a, b interface{}) int {
	x, y := a.(weightedEdge), b.(weightedEdge)
	switch {
	case less(x, y):
		return -1
	case less(y, x):
		return 1
	}
	return 0
}

// Prim grows a minimum spanning tree of g from root and returns it with
// its total weight. Tree edges are reported with From < To in the order
// they were attached.
//
// Errors are those of Kruskal plus core.ErrVertexNotFound for a bad root.
func Prim(g *core.Graph, root int) ([]core.Edge, float64, error) {
	if _, err := collect(g); err != nil {
		return nil, 0, err
	}
	n := g.NodeCount()
	if n == 0 {
		return []core.Edge{}, 0, nil
	}
	if !g.HasNode(root) {
		return nil, 0, fmt.Errorf("prim_kruskal: root %d: %w", root, core.ErrVertexNotFound)
	}

	inTree := make([]bool, n)
	pq := priorityqueue.NewWith(byWeight)
	attach := func(u int) {
		inTree[u] = true
		for _, v := range g.OutNeighbors(u) {
			if inTree[v] || u == v {
				continue
			}
			e := weightedEdge{Edge: core.Edge{From: u, To: v}, w: weight(g, u, v)}
			if e.From > e.To {
				e.From, e.To = e.To, e.From
			}
			pq.Enqueue(e)
		}
	}

	tree := make([]core.Edge, 0, n-1)
	var total float64
	attach(root)
	for len(tree) < n-1 {
		item, ok := pq.Dequeue()
		if !ok {
			return nil, 0, ErrDisconnected
		}
		e := item.(weightedEdge)
		next := e.To
		if inTree[next] {
			next = e.From
		}
		if inTree[next] {
			continue
		}
		tree = append(tree, e.Edge)
		total += e.w
		attach(next)
	}
	return tree, total, nil
}
