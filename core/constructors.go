// SPDX-License-Identifier: MIT
//
// File: constructors.go
// Role: Graph constructors from vertex lists, edge sets, adjacency/weight
//       matrices and trails.

package core

import (
	"fmt"

	"github.com/katalvlaran/graphkit/value"
)

// FromVertices returns an edgeless graph on the given labels (duplicates merge).
func FromVertices(labels []value.Value, opts ...GraphOption) *Graph {
	g := NewGraph(opts...)
	g.AddNodes(labels...)
	return g
}

// FromEdges builds a graph from label pairs. Endpoints are added on first
// use; repeated pairs are ignored. A pair joining a label to itself yields
// ErrMalformedEdge.
func FromEdges(pairs [][2]value.Value, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for k, p := range pairs {
		if p[0].Equal(p[1]) {
			return nil, fmt.Errorf("FromEdges: pair %d (%s,%s) is a loop: %w", k, p[0], p[1], ErrMalformedEdge)
		}
		g.AddEdge(g.AddNode(p[0]), g.AddNode(p[1]))
	}
	return g, nil
}

// FromMatrix builds a graph on vertices labelled 0..n-1 from an adjacency
// or weight matrix: every non-zero entry (i,j) is an edge. When the options
// make the graph weighted the entries become edge weights.
//
// Errors: ErrNonSquareMatrix, ErrAsymmetricWeights (undirected, m[i][j] != m[j][i]),
// ErrMalformedEdge (non-zero diagonal).
func FromMatrix(m [][]float64, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	n := len(m)
	for r, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("FromMatrix: row %d has %d columns, want %d: %w", r, len(row), n, ErrNonSquareMatrix)
		}
	}
	for i := 0; i < n; i++ {
		if m[i][i] != 0 {
			return nil, fmt.Errorf("FromMatrix: diagonal entry %d is non-zero: %w", i, ErrMalformedEdge)
		}
		if g.directed {
			continue
		}
		for j := i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				return nil, fmt.Errorf("FromMatrix: m[%d][%d]=%g, m[%d][%d]=%g: %w",
					i, j, m[i][j], j, i, m[j][i], ErrAsymmetricWeights)
			}
		}
	}
	for i := 0; i < n; i++ {
		g.AddNode(value.Int(int64(i)))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m[i][j] == 0 || (!g.directed && j < i) {
				continue
			}
			g.AddEdge(i, j)
			if g.weighted {
				g.SetWeight(i, j, m[i][j])
			}
		}
	}
	return g, nil
}

// FromTrail builds a graph from a trail: consecutive labels are joined by an
// edge. Two equal consecutive labels yield ErrMalformedEdge.
func FromTrail(labels []value.Value, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	prev := -1
	for k, l := range labels {
		cur := g.AddNode(l)
		if prev >= 0 {
			if prev == cur {
				return nil, fmt.Errorf("FromTrail: position %d repeats %s: %w", k, l, ErrMalformedEdge)
			}
			g.AddEdge(prev, cur)
		}
		prev = cur
	}
	return g, nil
}
