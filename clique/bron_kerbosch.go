// SPDX-License-Identifier: MIT

package clique

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphkit/core"
)

// enumerator carries the state shared by one Bron–Kerbosch run.
type enumerator struct {
	adj  [][]int
	opts Options
	emit func(clique []int) bool
	r    []int
	err  error
}

// Enumerate calls fn once for every maximal clique of g with at least
// MinSize vertices. fn receives a fresh sorted slice it may keep; returning
// false stops the enumeration early without error.
//
// A graph with no vertices has no cliques.
func Enumerate(g *core.Graph, fn func(clique []int) bool, opts ...Option) error {
	if err := g.Require(core.NeedUndirected); err != nil {
		return fmt.Errorf("Enumerate: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NodeCount()
	if n == 0 {
		return nil
	}
	e := &enumerator{adj: make([][]int, n), opts: o, emit: fn}
	p := make([]int, n)
	for i := 0; i < n; i++ {
		e.adj[i] = g.AdjacentNodes(i)
		p[i] = i
	}
	e.expand(p, nil)
	return e.err
}

// expand reports every maximal clique extending e.r with vertices of p and
// none of x. It returns false once the run must stop.
func (e *enumerator) expand(p, x []int) bool {
	if err := e.opts.Ctx.Err(); err != nil {
		e.err = err
		return false
	}
	if len(p) == 0 {
		if len(x) == 0 && len(e.r) >= e.opts.MinSize {
			c := make([]int, len(e.r))
			copy(c, e.r)
			sort.Ints(c)
			return e.emit(c)
		}
		return true
	}

	pivot := e.pivot(p, x)
	for _, v := range difference(p, e.adj[pivot]) {
		e.r = append(e.r, v)
		ok := e.expand(intersect(p, e.adj[v]), intersect(x, e.adj[v]))
		e.r = e.r[:len(e.r)-1]
		if !ok {
			return false
		}
		p = difference(p, []int{v})
		x = union(x, []int{v})
	}
	return true
}

// pivot returns the vertex of p ∪ x with the most neighbours in p; ties go
// to the first one met, scanning p before x.
func (e *enumerator) pivot(p, x []int) int {
	best, bestCount := p[0], -1
	for _, set := range [2][]int{p, x} {
		for _, u := range set {
			if c := intersectCount(p, e.adj[u]); c > bestCount {
				best, bestCount = u, c
			}
		}
	}
	return best
}

// MaximalCliques returns every maximal clique of g in enumeration order.
func MaximalCliques(g *core.Graph, opts ...Option) ([][]int, error) {
	cliques := [][]int{}
	err := Enumerate(g, func(c []int) bool {
		cliques = append(cliques, c)
		return true
	}, opts...)
	if err != nil {
		return nil, err
	}
	return cliques, nil
}

// MaximumClique returns a largest clique of g; among equal sizes the first
// enumerated wins. The empty graph yields an empty clique.
func MaximumClique(g *core.Graph, opts ...Option) ([]int, error) {
	best := []int{}
	err := Enumerate(g, func(c []int) bool {
		if len(c) > len(best) {
			best = c
		}
		return true
	}, opts...)
	if err != nil {
		return nil, err
	}
	return best, nil
}

// CliqueNumber returns ω(g), the size of a maximum clique.
func CliqueNumber(g *core.Graph, opts ...Option) (int, error) {
	c, err := MaximumClique(g, opts...)
	if err != nil {
		return 0, err
	}
	return len(c), nil
}
