// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Mode conversions (underlying graph, weighting) and derived graphs
//       (complement, induced subgraph).

package core

import (
	"fmt"

	"github.com/katalvlaran/graphkit/value"
)

// MakeUnderlying turns g into its underlying undirected graph in place: an
// arc in either direction becomes a single edge, an arc pair collapses to one
// edge, and every weight attribute is dropped.
//
// For an arc pair (i,j),(j,i) with i<j the attributes of (i,j) are kept.
func (g *Graph) MakeUnderlying() {
	if g.directed {
		type arc struct {
			e Edge
			a *Attributes
		}
		var arcs []arc
		g.ForEachEdge(func(e Edge, a *Attributes) bool {
			arcs = append(arcs, arc{e, a})
			return true
		})
		for _, v := range g.vertices {
			v.out.Clear()
			v.in.Clear()
		}
		g.directed = false
		// Arcs stored at the lower endpoint first so their attributes win.
		for _, x := range arcs {
			if x.e.From < x.e.To {
				g.AddEdgeAttrs(x.e.From, x.e.To, x.a)
			}
		}
		for _, x := range arcs {
			if x.e.From > x.e.To {
				g.AddEdgeAttrs(x.e.From, x.e.To, x.a)
			}
		}
	}
	g.MakeUnweighted()
}

// MakeWeighted assigns matrix[i][j] as the weight of every stored edge (i,j)
// and marks g weighted. The matrix must be N×N.
func (g *Graph) MakeWeighted(matrix [][]float64) error {
	n := g.NodeCount()
	if len(matrix) != n {
		return fmt.Errorf("MakeWeighted: %d rows for %d vertices: %w", len(matrix), n, ErrNonSquareMatrix)
	}
	for r, row := range matrix {
		if len(row) != n {
			return fmt.Errorf("MakeWeighted: row %d has %d columns: %w", r, len(row), ErrNonSquareMatrix)
		}
	}
	g.ForEachEdge(func(e Edge, a *Attributes) bool {
		a.Set(KeyWeight, value.Float(matrix[e.From][e.To]))
		return true
	})
	g.weighted = true
	return nil
}

// MakeUnweighted strips every weight attribute and marks g unweighted.
func (g *Graph) MakeUnweighted() {
	g.ForEachEdge(func(_ Edge, a *Attributes) bool {
		a.Delete(KeyWeight)
		return true
	})
	g.weighted = false
}

// WeightMatrix returns the N×N matrix of edge weights (0 where no edge).
// On unweighted graphs every edge counts 1. Undirected edges fill both cells.
func (g *Graph) WeightMatrix() [][]float64 {
	n := g.NodeCount()
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	g.ForEachEdge(func(e Edge, a *Attributes) bool {
		w := 1.0
		if g.weighted {
			if x, ok := a.Get(KeyWeight); ok {
				w, _ = x.AsFloat()
			}
		}
		m[e.From][e.To] = w
		if !g.directed {
			m[e.To][e.From] = w
		}
		return true
	})
	return m
}

// Complement returns the unweighted graph on the same vertices whose edges
// are exactly the non-edges of g (no self-loops).
func (g *Graph) Complement() *Graph {
	h := NewGraph()
	g.copyHeader(h)
	h.weighted = false
	for _, v := range g.vertices {
		h.vertices = append(h.vertices, newVertex(v.label, v.attrs.Clone()))
	}
	n := g.NodeCount()
	for i := 0; i < n; i++ {
		start := i + 1
		if g.directed {
			start = 0
		}
		for j := start; j < n; j++ {
			if i != j && !g.HasEdge(i, j) {
				h.AddEdge(i, j)
			}
		}
	}
	return h
}

// InducedSubgraph returns the subgraph induced by the given vertex indices,
// in the given order. Repeated indices are ignored.
func (g *Graph) InducedSubgraph(indices []int) (*Graph, error) {
	h := NewGraph()
	g.copyHeader(h)
	pos := make(map[int]int, len(indices))
	for _, i := range indices {
		if !g.HasNode(i) {
			return nil, fmt.Errorf("InducedSubgraph: index %d: %w", i, ErrVertexNotFound)
		}
		if _, dup := pos[i]; dup {
			continue
		}
		pos[i] = len(h.vertices)
		h.vertices = append(h.vertices, newVertex(g.vertices[i].label, g.vertices[i].attrs.Clone()))
	}
	g.ForEachEdge(func(e Edge, a *Attributes) bool {
		u, okU := pos[e.From]
		v, okV := pos[e.To]
		if okU && okV {
			h.AddEdgeAttrs(u, v, a)
		}
		return true
	})
	return h, nil
}
