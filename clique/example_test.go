package clique_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/clique"
)

// ExampleMaximalCliques lists the two triangles of a bowtie.
func ExampleMaximalCliques() {
	g := build(5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 2})
	cliques, _ := clique.MaximalCliques(g)
	fmt.Println(len(cliques))
	// Output: 2
}
