// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/graphkit/core"
)

// dsu is a disjoint-set forest with path halving and union by rank.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// union merges the sets of a and b and reports whether they were distinct.
func (d *dsu) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	return true
}

// Kruskal returns a minimum spanning tree of g and its total weight.
//
// Errors: core.ErrNotAGraph, core.ErrUndirectedRequired,
// core.ErrWeightedRequired, ErrBadWeight, ErrDisconnected.
// The empty graph and a single vertex yield an empty tree.
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	tree, total, err := Forest(g)
	if err != nil {
		return nil, 0, err
	}
	if n := g.NodeCount(); n > 1 && len(tree) != n-1 {
		return nil, 0, ErrDisconnected
	}
	return tree, total, nil
}

// Forest returns a minimum spanning forest of g: one tree per connected
// component, concatenated in Kruskal order.
func Forest(g *core.Graph) ([]core.Edge, float64, error) {
	edges, err := collect(g)
	if err != nil {
		return nil, 0, err
	}
	sort.Slice(edges, func(i, j int) bool { return less(edges[i], edges[j]) })

	n := g.NodeCount()
	d := newDSU(n)
	tree := make([]core.Edge, 0, n)
	var total float64
	for _, e := range edges {
		if len(tree) == n-1 {
			break
		}
		if d.union(e.From, e.To) {
			tree = append(tree, e.Edge)
			total += e.w
		}
	}
	return tree, total, nil
}
