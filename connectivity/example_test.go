package connectivity_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/connectivity"
)

// ExampleCutVertices finds the shared vertex of two triangles.
func ExampleCutVertices() {
	g := bowtie()
	cut, _ := connectivity.CutVertices(g)
	for _, v := range cut {
		fmt.Println(g.Node(v))
	}
	blocks, _ := connectivity.Blocks(g)
	fmt.Println(len(blocks))
	// Output:
	// C
	// 2
}
