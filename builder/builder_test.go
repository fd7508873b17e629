package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/value"
)

// build runs cons on a fresh undirected graph and fails the test on error.
func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)
	return g
}

// degrees returns the sorted-by-index degree sequence of g.
func degrees(g *core.Graph) []int {
	out := make([]int, g.NodeCount())
	for i := range out {
		out[i] = g.Degree(i)
	}
	return out
}

// assertRegular checks that every vertex has degree d.
func assertRegular(t *testing.T, g *core.Graph, d int) {
	t.Helper()
	for i, got := range degrees(g) {
		assert.Equalf(t, d, got, "degree of %s", g.Node(i))
	}
}

func TestBuilders_Counts(t *testing.T) {
	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
	}{
		{"Cycle(5)", builder.Cycle(5), 5, 5},
		{"Path(4)", builder.Path(4), 4, 3},
		{"Star(6)", builder.Star(6), 6, 5},
		{"Wheel(5)", builder.Wheel(5), 5, 8},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17},
		{"Grid(1,1)", builder.Grid(1, 1), 1, 0},
		{"Complete(1)", builder.Complete(1), 1, 0},
		{"Complete(5)", builder.Complete(5), 5, 10},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), 5, 6},
		{"CompleteMultipartite(1,2,3)", builder.CompleteMultipartite(1, 2, 3), 6, 11},
		{"Petersen(5,2)", builder.Petersen(5, 2), 10, 15},
		{"Petersen(10,3)", builder.Petersen(10, 3), 20, 30},
		{"LCF([5,-5],7)", builder.LCF([]int{5, -5}, 7), 14, 21},
		{"LCF([2],4)", builder.LCF([]int{2}, 4), 4, 6},
		{"Hypercube(1)", builder.Hypercube(1), 2, 1},
		{"Hypercube(4)", builder.Hypercube(4), 16, 32},
		{"Sierpinski(1,4)", builder.Sierpinski(1, 4), 4, 6},
		{"Sierpinski(2,3)", builder.Sierpinski(2, 3), 9, 12},
		{"Sierpinski(3,3)", builder.Sierpinski(3, 3), 27, 39},
		{"Sierpinski(2,4)", builder.Sierpinski(2, 4), 16, 30},
		{"SierpinskiTriangle(1)", builder.SierpinskiTriangle(1), 3, 3},
		{"SierpinskiTriangle(2)", builder.SierpinskiTriangle(2), 6, 9},
		{"SierpinskiTriangle(3)", builder.SierpinskiTriangle(3), 15, 27},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.ctor)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

func TestCycle_Labels(t *testing.T) {
	g := build(t, builder.Cycle(5))
	for i := 0; i < 5; i++ {
		assert.True(t, g.Node(i).Equal(value.Int(int64(i))))
		assert.True(t, g.HasEdge(i, (i+1)%5))
	}

	g = build(t, builder.CycleOf(value.Ident("a"), value.Ident("b"), value.Ident("c"), value.Ident("d")))
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge(g.NodeIndex(value.Ident("d")), g.NodeIndex(value.Ident("a"))))

	_, err := builder.BuildGraph(nil, nil, builder.CycleOf(value.Int(1), value.Int(2), value.Int(1)))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestStarWheel_Hub(t *testing.T) {
	g := build(t, builder.Star(5))
	assert.Equal(t, 4, g.Degree(0))

	g = build(t, builder.Wheel(6))
	assert.Equal(t, 5, g.Degree(5))
	for i := 0; i < 5; i++ {
		assert.Equal(t, 3, g.Degree(i))
	}
}

func TestGrid_Labels(t *testing.T) {
	g := build(t, builder.Grid(2, 3))
	a := g.NodeIndex(builder.GridLabel(1, 1))
	require.GreaterOrEqual(t, a, 0)
	assert.Equal(t, "1,1", g.Node(a).Text())
	assert.True(t, g.HasEdge(a, g.NodeIndex(builder.GridLabel(0, 1))))
	assert.True(t, g.HasEdge(a, g.NodeIndex(builder.GridLabel(1, 2))))
	assert.False(t, g.HasEdge(a, g.NodeIndex(builder.GridLabel(0, 0))))
}

func TestRegularFamilies(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		deg  int
	}{
		{"Petersen", builder.Petersen(5, 2), 3},
		{"Nauru", builder.Petersen(12, 5), 3},
		{"Cube LCF", builder.LCFNotation("[3,-3]^4"), 3},
		{"Hypercube(5)", builder.Hypercube(5), 5},
		{"Octahedron", builder.CompleteMultipartite(2, 2, 2), 4},
		{"K5", builder.Complete(5), 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertRegular(t, build(t, tc.ctor), tc.deg)
		})
	}
}

func TestLCFNotation_Cube(t *testing.T) {
	g := build(t, builder.LCFNotation("[3,-3]^4"))
	assert.Equal(t, 8, g.NodeCount())
	assert.Equal(t, 12, g.EdgeCount())
	assertRegular(t, g, 3)
	assert.True(t, g.HasEdge(0, 3))
	assert.True(t, g.HasEdge(1, 6))
}

func TestParseLCF(t *testing.T) {
	jumps, e, err := builder.ParseLCF("[5, -5]^4")
	require.NoError(t, err)
	assert.Equal(t, []int{5, -5}, jumps)
	assert.Equal(t, 4, e)

	jumps, e, err = builder.ParseLCF("[12,7,-7]")
	require.NoError(t, err)
	assert.Equal(t, []int{12, 7, -7}, jumps)
	assert.Equal(t, 1, e)

	for _, bad := range []string{"", "[", "[]", "3,-3", "[3,-3]^0", "[3,-3]^-2", "[a]", "[3,-3]^4x"} {
		_, _, err := builder.ParseLCF(bad)
		assert.ErrorIsf(t, err, builder.ErrBadNotation, "input %q", bad)
	}
}

func TestLCF_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"empty", builder.LCF(nil, 3), builder.ErrBadNotation},
		{"zero exp", builder.LCF([]int{3}, 0), builder.ErrBadNotation},
		{"too small", builder.LCF([]int{1}, 2), builder.ErrTooFewVertices},
		{"loop jump", builder.LCF([]int{4}, 4), builder.ErrBadNotation},
		{"bad notation", builder.LCFNotation("[3;3]"), builder.ErrBadNotation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestHypercube_Labels(t *testing.T) {
	g := build(t, builder.Hypercube(3))
	assert.Equal(t, "000", g.Node(0).Text())
	assert.Equal(t, "101", g.Node(5).Text())
	assert.Equal(t, value.KindString, g.Node(0).Kind())
	assert.True(t, g.HasEdge(g.NodeIndex(value.Str("011")), g.NodeIndex(value.Str("111"))))
	assert.False(t, g.HasEdge(g.NodeIndex(value.Str("000")), g.NodeIndex(value.Str("011"))))
}

func TestSierpinski_Adjacency(t *testing.T) {
	// Tuples (a,b) are indexed 3a+b: three triangles joined by the bridges
	// (0,1)-(1,0), (0,2)-(2,0) and (1,2)-(2,1).
	g := build(t, builder.Sierpinski(2, 3))
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}, {3, 4}, {6, 8}, {1, 3}, {2, 6}, {5, 7}} {
		assert.Truef(t, g.HasEdge(e[0], e[1]), "edge %v", e)
	}
	assert.False(t, g.HasEdge(0, 4))
	assert.Equal(t, []int{2, 3, 3, 3, 2, 3, 3, 3, 2}, degrees(g))
}

func TestSierpinskiTriangle_Shape(t *testing.T) {
	g := build(t, builder.SierpinskiTriangle(2))
	// Three corners of degree 2, three merged midpoints of degree 4.
	deg := degrees(g)
	count := map[int]int{}
	for _, d := range deg {
		count[d]++
	}
	assert.Equal(t, map[int]int{2: 3, 4: 3}, count)
	for i := 0; i < g.NodeCount(); i++ {
		assert.True(t, g.Node(i).Equal(value.Int(int64(i))))
	}
}

func TestPlatonicSolid(t *testing.T) {
	tests := []struct {
		name      builder.PlatonicName
		v, e, deg int
	}{
		{builder.Tetrahedron, 4, 6, 3},
		{builder.Cube, 8, 12, 3},
		{builder.Octahedron, 6, 12, 4},
		{builder.Dodecahedron, 20, 30, 3},
		{builder.Icosahedron, 12, 30, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name.String(), func(t *testing.T) {
			g := build(t, builder.PlatonicSolid(tc.name, false))
			assert.Equal(t, tc.v, g.NodeCount())
			assert.Equal(t, tc.e, g.EdgeCount())
			assertRegular(t, g, tc.deg)

			c := build(t, builder.PlatonicSolid(tc.name, true))
			assert.Equal(t, tc.v+1, c.NodeCount())
			assert.Equal(t, tc.e+tc.v, c.EdgeCount())
			assert.Equal(t, tc.v, c.Degree(tc.v))
		})
	}

	_, err := builder.BuildGraph(nil, nil, builder.PlatonicSolid(builder.PlatonicName(9), false))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	assert.Equal(t, "PlatonicName(9)", builder.PlatonicName(9).String())
}

func TestNamed(t *testing.T) {
	tests := []struct {
		name string
		v, e int
	}{
		{"petersen", 10, 15},
		{"Durer", 12, 18},
		{"mobius-kantor", 16, 24},
		{"desargues", 20, 30},
		{"heawood", 14, 21},
		{"franklin", 12, 18},
		{"mcgee", 24, 36},
		{"pappus", 18, 27},
		{"dyck", 32, 48},
		{"harries", 70, 105},
		{"ljubljana", 112, 168},
		{"shrikhande", 16, 48},
		{"icosahedron", 12, 30},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, builder.Named(tc.name))
			assert.Equal(t, tc.v, g.NodeCount())
			assert.Equal(t, tc.e, g.EdgeCount())
		})
	}
	assertRegular(t, build(t, builder.Named("shrikhande")), 6)
	assert.Contains(t, builder.NamedGraphs(), "heawood")
	assert.IsIncreasing(t, builder.NamedGraphs())

	_, err := builder.BuildGraph(nil, nil, builder.Named("nope"))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle", builder.Cycle(2), builder.ErrTooFewVertices},
		{"CycleOf", builder.CycleOf(value.Int(1)), builder.ErrTooFewVertices},
		{"Path", builder.Path(1), builder.ErrTooFewVertices},
		{"Star", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Grid", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Complete", builder.Complete(0), builder.ErrTooFewVertices},
		{"Multipartite empty", builder.CompleteMultipartite(), builder.ErrTooFewVertices},
		{"Multipartite zero part", builder.CompleteMultipartite(2, 0), builder.ErrTooFewVertices},
		{"Petersen n", builder.Petersen(2, 1), builder.ErrTooFewVertices},
		{"Petersen k", builder.Petersen(5, 5), builder.ErrBadNotation},
		{"Hypercube", builder.Hypercube(0), builder.ErrTooFewVertices},
		{"Hypercube huge", builder.Hypercube(40), builder.ErrConstructFailed},
		{"Sierpinski n", builder.Sierpinski(0, 3), builder.ErrTooFewVertices},
		{"Sierpinski k", builder.Sierpinski(2, 0), builder.ErrTooFewVertices},
		{"SierpinskiTriangle", builder.SierpinskiTriangle(0), builder.ErrTooFewVertices},
		{"RandomSparse n", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse p", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"RandomRegular d", builder.RandomRegular(4, 4), builder.ErrTooFewVertices},
		{"RandomRegular parity", builder.RandomRegular(5, 3), builder.ErrTooFewVertices},
		{"RandomRegular rng", builder.RandomRegular(4, 2), builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildGraph_Composition(t *testing.T) {
	g := build(t, builder.Cycle(3), builder.Star(4))
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())

	_, err := builder.BuildGraph(nil, nil, builder.Cycle(3), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Cycle(3)), core.ErrNotAGraph)

	h := core.NewGraph()
	h.AddNode(value.Ident("x"))
	require.NoError(t, builder.Apply(h, nil, builder.Path(2)))
	assert.Equal(t, 3, h.NodeCount())
	assert.True(t, h.HasEdge(1, 2))
}

func TestDirectedTargets(t *testing.T) {
	dir := []core.GraphOption{core.WithDirected(true)}

	g, err := builder.BuildGraph(dir, nil, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge(3, 0))
	assert.False(t, g.HasEdge(0, 3))

	g, err = builder.BuildGraph(dir, nil, builder.Petersen(5, 2))
	require.NoError(t, err)
	assert.Equal(t, 30, g.EdgeCount())

	_, err = builder.BuildGraph(dir, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(6, 2))
	assert.ErrorIs(t, err, builder.ErrUnsupportedGraphMode)

	g, err = builder.BuildGraph(dir, nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())
}

func TestWeights(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithConstantWeight(2.5)},
		builder.Cycle(3),
	)
	require.NoError(t, err)
	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2.5, w)

	g, err = builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted(), core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
		builder.Complete(4),
	)
	require.NoError(t, err)
	g.ForEachEdge(func(e core.Edge, _ *core.Attributes) bool {
		w, _ := g.Weight(e.From, e.To)
		back, ok := g.Weight(e.To, e.From)
		assert.True(t, ok)
		assert.Equal(t, w, back)
		assert.GreaterOrEqual(t, w, 1.0)
		assert.Less(t, w, 10.0)
		return true
	})

	// Unweighted targets never carry a weight attribute.
	g = build(t, builder.Cycle(3))
	_, ok = g.Weight(0, 1)
	assert.False(t, ok)
}

func TestRandom_Determinism(t *testing.T) {
	run := func(seed int64, cons builder.Constructor) []core.Edge {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, cons)
		require.NoError(t, err)
		return g.Edges()
	}
	assert.Equal(t, run(42, builder.RandomSparse(30, 0.2)), run(42, builder.RandomSparse(30, 0.2)))
	assert.Equal(t, run(42, builder.RandomRegular(20, 3)), run(42, builder.RandomRegular(20, 3)))

	assert.Empty(t, build(t, builder.RandomSparse(5, 0)).Edges())
	assert.Equal(t, 10, build(t, builder.RandomSparse(5, 1)).EdgeCount())
}

func TestRandomRegular_Degrees(t *testing.T) {
	for _, d := range []int{0, 2, 3} {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomRegular(12, d))
		require.NoError(t, err)
		assert.Equal(t, 12, g.NodeCount())
		assertRegular(t, g, d)
	}
}
