package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/dijkstra"
	"github.com/katalvlaran/graphkit/dot"
)

// ExampleDijkstra prefers two cheap hops over one expensive edge.
func ExampleDijkstra() {
	g, err := dot.Parse(`graph { a -- b [weight=1]; b -- c [weight=1]; a -- c [weight=4] }`)
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	path, _ := res.PathTo(2)
	fmt.Println(res.Dist[2], path)

	// Output:
	// 2 [0 1 2]
}
