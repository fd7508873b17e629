package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/value"
)

// ExampleGraph demonstrates canonical edge storage on an undirected graph.
func ExampleGraph() {
	g := core.NewGraph()
	a := g.AddNode(value.Ident("A"))
	b := g.AddNode(value.Ident("B"))
	c := g.AddNode(value.Ident("C"))

	g.AddEdge(b, a)
	g.AddEdge(c, b)
	fmt.Println("edges:", g.Edges())
	fmt.Println("B~A:", g.HasEdge(a, b), "duplicate:", g.AddEdge(a, b))
	fmt.Println("adjacent to B:", g.AdjacentNodes(b))

	// Output:
	// edges: [{0 1} {1 2}]
	// B~A: true duplicate: false
	// adjacent to B: [0 2]
}

// ExampleGraph_Require shows how callers translate mode mismatches into
// taxonomy errors.
func ExampleGraph_Require() {
	g := core.NewGraph(core.WithDirected(true))
	fmt.Println(g.Require(core.NeedUndirected))
	// Output:
	// core: undirected graph required
}
