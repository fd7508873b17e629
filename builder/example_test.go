package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/builder"
)

func ExampleLCFNotation() {
	g, err := builder.BuildGraph(nil, nil, builder.LCFNotation("[5,-5]^7"))
	if err != nil {
		panic(err)
	}
	fmt.Println(g.NodeCount(), g.EdgeCount())
	// Output: 14 21
}

func ExampleSierpinskiTriangle() {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithLabelFn(builder.SymbolLabelFn)},
		builder.SierpinskiTriangle(2))
	if err != nil {
		panic(err)
	}
	fmt.Println(g.Nodes())
	// Output: [A B C D E F]
}
