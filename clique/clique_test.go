package clique_test

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/clique"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/value"
)

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

// bruteMaximal lists every maximal clique by checking all vertex subsets.
func bruteMaximal(g *core.Graph) [][]int {
	n := g.NodeCount()
	isClique := func(mask int) bool {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if mask&(1<<i) != 0 && mask&(1<<j) != 0 && !g.HasEdge(i, j) {
					return false
				}
			}
		}
		return true
	}
	var out [][]int
	for mask := 1; mask < 1<<n; mask++ {
		if !isClique(mask) {
			continue
		}
		maximal := true
		for v := 0; v < n && maximal; v++ {
			if mask&(1<<v) == 0 && isClique(mask|1<<v) {
				maximal = false
			}
		}
		if maximal {
			var c []int
			for v := 0; v < n; v++ {
				if mask&(1<<v) != 0 {
					c = append(c, v)
				}
			}
			out = append(out, c)
		}
	}
	return out
}

func TestMaximalCliques_Bowtie(t *testing.T) {
	g := build(6,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{2, 3}, [2]int{3, 4}, [2]int{4, 2})
	cliques, err := clique.MaximalCliques(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int{{0, 1, 2}, {2, 3, 4}, {5}}, cliques)

	cliques, err = clique.MaximalCliques(g, clique.WithMinSize(2))
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int{{0, 1, 2}, {2, 3, 4}}, cliques)
}

func TestMaximalCliques_Complete(t *testing.T) {
	var edges [][2]int
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	cliques, err := clique.MaximalCliques(build(6, edges...))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4, 5}}, cliques)
}

func TestMaximalCliques_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(9)
		g := build(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < 0.5 {
					g.AddEdge(i, j)
				}
			}
		}
		cliques, err := clique.MaximalCliques(g)
		require.NoError(t, err)
		for _, c := range cliques {
			assert.True(t, sort.IntsAreSorted(c))
		}
		assert.ElementsMatch(t, bruteMaximal(g), cliques, "trial %d", trial)
	}
}

func TestMaximumClique(t *testing.T) {
	// Triangle 0-1-2 and K4 on 3..6 joined by 2-3.
	g := build(7,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 3},
		[2]int{3, 4}, [2]int{3, 5}, [2]int{3, 6}, [2]int{4, 5}, [2]int{4, 6}, [2]int{5, 6})
	c, err := clique.MaximumClique(g)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 6}, c)

	w, err := clique.CliqueNumber(g)
	require.NoError(t, err)
	assert.Equal(t, 4, w)
}

func TestEnumerate_EarlyStop(t *testing.T) {
	g := build(4)
	calls := 0
	err := clique.Enumerate(g, func([]int) bool {
		calls++
		return calls < 2
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestEnumerate_EmptyGraph(t *testing.T) {
	cliques, err := clique.MaximalCliques(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, cliques)
	w, err := clique.CliqueNumber(core.NewGraph())
	require.NoError(t, err)
	assert.Zero(t, w)
}

func TestEnumerate_Errors(t *testing.T) {
	_, err := clique.MaximalCliques(nil)
	assert.ErrorIs(t, err, core.ErrNotAGraph)

	d := core.NewGraph(core.WithDirected(true))
	_, err = clique.MaximalCliques(d)
	assert.ErrorIs(t, err, core.ErrUndirectedRequired)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = clique.MaximalCliques(build(3), clique.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { clique.WithMinSize(0) })
}

func TestMaximalCliques_PerfectMatching(t *testing.T) {
	var edges [][2]int
	for i := 0; i < 10; i += 2 {
		edges = append(edges, [2]int{i, i + 1})
	}
	g := build(10, edges...)

	got, err := clique.MaximalCliques(g)
	require.NoError(t, err)
	want := make([][]int, len(edges))
	for i, e := range edges {
		want[i] = []int{e[0], e[1]}
	}
	for _, c := range got {
		sort.Ints(c)
	}
	assert.ElementsMatch(t, want, got)

	n, err := clique.CliqueNumber(g)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestWithContext_NilPanics(t *testing.T) {
	assert.Panics(t, func() {
		//nolint:staticcheck // exercising the nil guard
		clique.WithContext(nil)
	})
}
