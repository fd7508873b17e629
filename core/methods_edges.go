// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and queries. Every operation canonicalizes through MakeEdge.
// Determinism:
//   - Edges() and ForEachEdge visit edges by (From asc, To asc).

package core

import (
	"github.com/katalvlaran/graphkit/value"
)

// MakeEdge returns the canonical form of (i,j): (min,max) for undirected
// graphs, (i,j) unchanged for directed ones.
func (g *Graph) MakeEdge(i, j int) Edge {
	if !g.directed && j < i {
		return Edge{From: j, To: i}
	}
	return Edge{From: i, To: j}
}

// AddEdge inserts the edge (i,j) with an empty attribute store.
// It returns false when an index is out of range, i == j, or the canonical
// edge already exists.
//
// Complexity: O(log d).
func (g *Graph) AddEdge(i, j int) bool {
	return g.AddEdgeAttrs(i, j, nil)
}

// AddEdgeAttrs inserts the edge (i,j) carrying a copy of attrs.
// Existing edges are never overwritten.
func (g *Graph) AddEdgeAttrs(i, j int, attrs *Attributes) bool {
	if !g.HasNode(i) || !g.HasNode(j) || i == j {
		return false
	}
	e := g.MakeEdge(i, j)
	src := g.vertices[e.From]
	if _, ok := src.out.Get(e.To); ok {
		return false
	}
	src.out.Put(e.To, attrs.Clone())
	g.vertices[e.To].in.Add(e.From)
	return true
}

// RemoveEdge deletes the edge (i,j); false when it does not exist.
func (g *Graph) RemoveEdge(i, j int) bool {
	if !g.HasEdge(i, j) {
		return false
	}
	e := g.MakeEdge(i, j)
	g.vertices[e.From].out.Remove(e.To)
	g.vertices[e.To].in.Remove(e.From)
	return true
}

// HasEdge reports whether the canonical edge (i,j) exists.
//
// Complexity: O(log d).
func (g *Graph) HasEdge(i, j int) bool {
	if !g.HasNode(i) || !g.HasNode(j) {
		return false
	}
	e := g.MakeEdge(i, j)
	_, ok := g.vertices[e.From].out.Get(e.To)
	return ok
}

// EdgeAttributes returns the live attribute store of edge (i,j).
func (g *Graph) EdgeAttributes(i, j int) (*Attributes, bool) {
	if !g.HasNode(i) || !g.HasNode(j) {
		return nil, false
	}
	e := g.MakeEdge(i, j)
	a, ok := g.vertices[e.From].out.Get(e.To)
	if !ok {
		return nil, false
	}
	return a.(*Attributes), true
}

// ForEachEdge calls fn for every stored edge in canonical order; fn
// returning false stops the walk.
func (g *Graph) ForEachEdge(fn func(e Edge, attrs *Attributes) bool) {
	for i, v := range g.vertices {
		it := v.out.Iterator()
		for it.Next() {
			if !fn(Edge{From: i, To: it.Key().(int)}, it.Value().(*Attributes)) {
				return
			}
		}
	}
}

// Edges returns every canonical edge.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	g.ForEachEdge(func(e Edge, _ *Attributes) bool {
		out = append(out, e)
		return true
	})
	return out
}

// EdgeCount sums the neighbour-map sizes; each undirected edge counts once.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, v := range g.vertices {
		n += v.out.Size()
	}
	return n
}

// Weight returns the numeric weight attribute of edge (i,j).
func (g *Graph) Weight(i, j int) (float64, bool) {
	a, ok := g.EdgeAttributes(i, j)
	if !ok {
		return 0, false
	}
	w, ok := a.Get(KeyWeight)
	if !ok {
		return 0, false
	}
	return w.AsFloat()
}

// SetWeight stores w as the weight of edge (i,j).
func (g *Graph) SetWeight(i, j int, w float64) bool {
	a, ok := g.EdgeAttributes(i, j)
	if !ok {
		return false
	}
	a.Set(KeyWeight, value.Float(w))
	return true
}

// CollapseEdge contracts the edge between i and j into i: every other edge
// of j is moved to i (keeping its direction and attributes unless i already
// has that edge) and j is left isolated. Vertex j is not removed.
func (g *Graph) CollapseEdge(i, j int) bool {
	if !g.HasEdge(i, j) && !(g.directed && g.HasEdge(j, i)) {
		return false
	}
	vj := g.vertices[j]
	for _, k := range keysOf(vj.out) {
		a, _ := vj.out.Get(k)
		g.RemoveEdge(j, k)
		if k != i {
			g.AddEdgeAttrs(i, k, a.(*Attributes))
		}
	}
	for _, x := range vj.in.Values() {
		k := x.(int)
		a, _ := g.EdgeAttributes(k, j)
		a = a.Clone()
		g.RemoveEdge(k, j)
		if k != i {
			g.AddEdgeAttrs(k, i, a)
		}
	}
	return true
}
