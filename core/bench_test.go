package core_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/value"
)

// BenchmarkAddEdge measures canonical insertion into a ring of 1000 vertices.
func BenchmarkAddEdge(b *testing.B) {
	const n = 1000
	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		for k := 0; k < n; k++ {
			g.AddNode(value.Int(int64(k)))
		}
		for k := 0; k < n; k++ {
			g.AddEdge(k, (k+1)%n)
		}
	}
}

// BenchmarkAdjacentNodes measures the sorted merge on a directed graph.
func BenchmarkAdjacentNodes(b *testing.B) {
	const n = 500
	g := core.NewGraph(core.WithDirected(true))
	for k := 0; k < n; k++ {
		g.AddNode(value.Int(int64(k)))
	}
	for k := 1; k < n; k++ {
		g.AddEdge(0, k)
		g.AddEdge(k, 0)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AdjacentNodes(0)
	}
}
