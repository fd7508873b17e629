package matching_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/matching"
	"github.com/katalvlaran/graphkit/value"
)

// build returns an undirected graph on n integer-labelled vertices.
func build(n int, edges ...[2]int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(value.Int(int64(i)))
	}
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func petersen() *core.Graph {
	var edges [][2]int
	for i := 0; i < 5; i++ {
		edges = append(edges,
			[2]int{i, (i + 1) % 5},
			[2]int{i, i + 5},
			[2]int{i + 5, (i+2)%5 + 5})
	}
	return build(10, edges...)
}

// bruteForce returns the maximum matching size by exhaustive search.
func bruteForce(g *core.Graph) int {
	edges := g.Edges()
	used := make([]bool, g.NodeCount())
	var rec func(k int) int
	rec = func(k int) int {
		if k == len(edges) {
			return 0
		}
		best := rec(k + 1)
		e := edges[k]
		if !used[e.From] && !used[e.To] {
			used[e.From], used[e.To] = true, true
			if s := 1 + rec(k+1); s > best {
				best = s
			}
			used[e.From], used[e.To] = false, false
		}
		return best
	}
	return rec(0)
}

func TestMaximal_IsMaximal(t *testing.T) {
	g := build(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	m, err := matching.Maximal(g)
	require.NoError(t, err)
	require.NoError(t, m.Validate(g))
	assert.Equal(t, matching.Matching{{From: 0, To: 1}, {From: 2, To: 3}}, m)

	mate := m.Mates(g.NodeCount())
	g.ForEachEdge(func(e core.Edge, _ *core.Attributes) bool {
		assert.False(t, mate[e.From] < 0 && mate[e.To] < 0, "edge %v could extend the matching", e)
		return true
	})
}

func TestMaximum_OddCycleBlossom(t *testing.T) {
	// Triangle 2-3-4 hangs off the stem 0-1-2; starting from {1-2, 3-4} the
	// only augmenting path to 5 leaves the triangle through 3 after entering
	// at 2 via 4, which requires contracting the blossom.
	g := build(6, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 2}, [2]int{3, 5})
	initial := matching.Matching{{From: 1, To: 2}, {From: 3, To: 4}}
	m, err := matching.Maximum(g, matching.WithInitial(initial))
	require.NoError(t, err)
	require.NoError(t, m.Validate(g))
	assert.Equal(t, matching.Matching{{From: 0, To: 1}, {From: 2, To: 4}, {From: 3, To: 5}}, m)
}

func TestMaximum_Petersen(t *testing.T) {
	g := petersen()
	m, err := matching.Maximum(g)
	require.NoError(t, err)
	require.NoError(t, m.Validate(g))
	assert.Equal(t, 5, m.Size())
}

func TestMaximum_Bipartite(t *testing.T) {
	// K_{3,4} has matching number 3.
	var edges [][2]int
	for i := 0; i < 3; i++ {
		for j := 3; j < 7; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g := build(7, edges...)
	m, err := matching.Maximum(g)
	require.NoError(t, err)
	require.NoError(t, m.Validate(g))
	assert.Equal(t, 3, m.Size())
}

func TestMaximum_EmptyAndEdgeless(t *testing.T) {
	m, err := matching.Maximum(core.NewGraph())
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Equal(t, 0, m.Size())

	m, err = matching.Maximum(build(3))
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestMaximum_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(9)
		g := build(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < 0.35 {
					g.AddEdge(i, j)
				}
			}
		}
		m, err := matching.Maximum(g)
		require.NoError(t, err)
		require.NoError(t, m.Validate(g))
		require.Equal(t, bruteForce(g), m.Size(), "trial %d n=%d edges=%v", trial, n, g.Edges())

		greedy, err := matching.Maximal(g)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, m.Size(), greedy.Size())
		assert.LessOrEqual(t, m.Size(), 2*greedy.Size())
	}
}

func TestMaximum_WithInitial(t *testing.T) {
	// Path 0-1-2-3 starting from the bad matching {1-2}.
	g := build(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	m, err := matching.Maximum(g, matching.WithInitial(matching.Matching{{From: 1, To: 2}}))
	require.NoError(t, err)
	assert.Equal(t, matching.Matching{{From: 0, To: 1}, {From: 2, To: 3}}, m)
}

func TestMaximum_InvalidInitial(t *testing.T) {
	g := build(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})

	_, err := matching.Maximum(g, matching.WithInitial(matching.Matching{{From: 0, To: 2}}))
	assert.ErrorIs(t, err, matching.ErrInvalidMatching)

	_, err = matching.Maximum(g, matching.WithInitial(matching.Matching{{From: 0, To: 1}, {From: 1, To: 2}}))
	assert.ErrorIs(t, err, matching.ErrInvalidMatching)
}

func TestMaximum_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddNodes(value.Int(0), value.Int(1))
	g.AddEdge(0, 1)

	_, err := matching.Maximum(g)
	assert.ErrorIs(t, err, core.ErrUndirectedRequired)
	_, err = matching.Maximal(g)
	assert.ErrorIs(t, err, core.ErrUndirectedRequired)
}

func TestMaximum_NilGraph(t *testing.T) {
	_, err := matching.Maximum(nil)
	assert.ErrorIs(t, err, core.ErrNotAGraph)
}

func TestMaximum_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// An edgeless graph leaves every vertex exposed, so the context is polled.
	_, err := matching.Maximum(build(3), matching.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithContext_NilPanics(t *testing.T) {
	assert.Panics(t, func() {
		//nolint:staticcheck // exercising the nil guard
		matching.WithContext(nil)
	})
}
