package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dijkstra"
	"github.com/katalvlaran/graphkit/dot"
	"github.com/katalvlaran/graphkit/value"
)

// roads: a-b 1, b-c 2, a-c 5, c-d 1, e isolated.
func roads(t *testing.T) *core.Graph {
	t.Helper()
	g, err := dot.Parse(`graph {
		a; b; c; d; e;
		a -- b [weight=1];
		b -- c [weight=2];
		a -- c [weight=5];
		c -- d [weight=1];
	}`)
	require.NoError(t, err)
	require.True(t, g.Weighted())
	return g
}

func TestDijkstra_Distances(t *testing.T) {
	g := roads(t)
	res, err := dijkstra.Dijkstra(g, g.NodeIndex(value.Ident("a")))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 3, 4}, res.Dist[:4])
	assert.True(t, math.IsInf(res.Dist[4], 1))

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	_, err = res.PathTo(4)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDijkstra_Caps(t *testing.T) {
	g := roads(t)
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Dist[2])
	assert.True(t, math.IsInf(res.Dist[3], 1))
	assert.Equal(t, -1, res.Prev[3])

	res, err = dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Dist[1])
	assert.True(t, math.IsInf(res.Dist[2], 1))
}

func TestDijkstra_Directed(t *testing.T) {
	g, err := dot.Parse(`digraph { a; b; c; a -> b [weight=2]; c -> a [weight=1] }`)
	require.NoError(t, err)
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Dist[1])
	assert.True(t, math.IsInf(res.Dist[2], 1))
}

func TestDijkstra_Errors(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, core.ErrNotAGraph)

	g, err := dot.Parse(`graph { a -- b }`)
	require.NoError(t, err)
	_, err = dijkstra.Dijkstra(g, 0)
	assert.ErrorIs(t, err, core.ErrWeightedRequired)

	w := roads(t)
	_, err = dijkstra.Dijkstra(w, 9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	w.SetWeight(0, 1, -1)
	_, err = dijkstra.Dijkstra(w, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dijkstra.Dijkstra(roads(t), 0, dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
	//nolint:staticcheck // exercising the nil guard
	assert.Panics(t, func() { dijkstra.WithContext(nil) })
}
