package prim_kruskal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dot"
	"github.com/katalvlaran/graphkit/prim_kruskal"
)

func parse(t *testing.T, src string) *core.Graph {
	t.Helper()
	g, err := dot.Parse(src)
	require.NoError(t, err)
	return g
}

// triangle: a-b 1, b-c 2, a-c 3; the tree is a-b, b-c.
const triangle = `graph { a -- b [weight=1]; b -- c [weight=2]; a -- c [weight=3] }`

func TestKruskal_Triangle(t *testing.T) {
	g := parse(t, triangle)
	tree, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, tree)
	assert.Equal(t, 3.0, total)
}

func TestPrim_Triangle(t *testing.T) {
	g := parse(t, triangle)
	for root := 0; root < 3; root++ {
		tree, total, err := prim_kruskal.Prim(g, root)
		require.NoError(t, err)
		assert.ElementsMatch(t, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, tree, "root %d", root)
		assert.Equal(t, 3.0, total)
	}
}

func TestMST_Agree(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 100)},
		builder.Complete(12),
	)
	require.NoError(t, err)

	kt, kw, err := prim_kruskal.MST(g)
	require.NoError(t, err)
	pt, pw, err := prim_kruskal.MST(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(5))
	require.NoError(t, err)

	assert.Len(t, kt, 11)
	assert.ElementsMatch(t, kt, pt)
	assert.InDelta(t, kw, pw, 1e-9)
}

func TestMST_UnweightedEdgesCountOne(t *testing.T) {
	g := parse(t, `graph { a -- b [weight=4]; b -- c; a -- c }`)
	_, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 2.0, total)
}

func TestMST_Trivial(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	tree, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)

	tree, _, err = prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestMST_Disconnected(t *testing.T) {
	g := parse(t, `graph { a -- b [weight=1]; c -- d [weight=2] }`)
	_, _, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	forest, total, err := prim_kruskal.Forest(g)
	require.NoError(t, err)
	assert.Len(t, forest, 2)
	assert.Equal(t, 3.0, total)
}

func TestMST_Errors(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, core.ErrNotAGraph)

	_, _, err = prim_kruskal.Kruskal(parse(t, `digraph { a -> b [weight=1] }`))
	assert.ErrorIs(t, err, core.ErrUndirectedRequired)

	_, _, err = prim_kruskal.Kruskal(parse(t, `graph { a -- b }`))
	assert.ErrorIs(t, err, core.ErrWeightedRequired)

	_, _, err = prim_kruskal.Prim(parse(t, triangle), 9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	g := parse(t, triangle)
	g.SetWeight(0, 1, math.NaN())
	_, _, err = prim_kruskal.Prim(g, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrBadWeight)

	assert.Panics(t, func() { prim_kruskal.WithMethod("boruvka") })
}
