package layout_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphkit/layout"
)

// ExampleForceDirected spreads a single edge to its natural length.
func ExampleForceDirected() {
	g := build(2, [2]int{0, 1})
	x := layout.Layout{{0, 0}, {0.5, 0}}
	st, err := layout.ForceDirected(g, x, layout.WithTolerance(1e-4), layout.WithAdaptiveCooling(false))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(st.Converged, math.Round(dist(x[0], x[1])*10)/10)
	// Output: true 1
}
