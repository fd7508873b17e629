// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/matching"
)

// MaximalIndependentSet returns an independent set of g that no vertex can
// join, in ascending order. Vertices are taken greedily by gain: a vertex's
// gain starts at its degree and grows by one for every neighbour of it that
// drops out of the candidate pool.
func MaximalIndependentSet(g *core.Graph) ([]int, error) {
	if err := g.Require(); err != nil {
		return nil, fmt.Errorf("MaximalIndependentSet: %w", err)
	}
	return maximalIndependentSet(adjacency(g)), nil
}

func maximalIndependentSet(adj [][]int) []int {
	n := len(adj)
	gain := make([]int, n)
	pool := make([]bool, n)
	for i := range adj {
		gain[i] = len(adj[i])
		pool[i] = true
	}
	set := []int{}
	for left := n; left > 0; {
		best := -1
		for i := 0; i < n; i++ {
			if pool[i] && (best < 0 || gain[i] > gain[best]) {
				best = i
			}
		}
		pool[best] = false
		left--
		set = append(set, best)
		for _, u := range adj[best] {
			if !pool[u] {
				continue
			}
			pool[u] = false
			left--
			for _, w := range adj[u] {
				if pool[w] {
					gain[w]++
				}
			}
		}
	}
	sort.Ints(set)
	return set
}

// adjacency returns the neighbour lists of g's underlying undirected graph.
func adjacency(g *core.Graph) [][]int {
	adj := make([][]int, g.NodeCount())
	for i := range adj {
		adj[i] = g.AdjacentNodes(i)
	}
	return adj
}

// incidence returns the symmetric 0/1 adjacency matrix of adj.
func incidence(adj [][]int) sparse {
	m := sparse{}
	for i, ngh := range adj {
		for _, j := range ngh {
			m.set(i, j, 1)
		}
	}
	return m
}

// galerkin builds the coarse graph on len(keep) vertices whose adjacency is
// the non-zero off-diagonal pattern of Pᵀ·I·P.
func galerkin(adj [][]int, p sparse, keep []int) [][]int {
	ig := p.transpose().mul(incidence(adj)).mul(p)
	coarse := make([][]int, len(keep))
	for i := range coarse {
		for _, j := range ig.sortedCols(i) {
			if j != i {
				coarse[i] = append(coarse[i], j)
			}
		}
	}
	return coarse
}

// coarsenMIS restricts adj to the independent set keep. Row i of the
// prolongation matrix has 1 at keep[j] = i, and 1/mdeg(i) at every kept
// neighbour, where mdeg(i) counts i's neighbours in keep.
func coarsenMIS(adj [][]int, keep []int) ([][]int, sparse) {
	col := make(map[int]int, len(keep))
	for j, v := range keep {
		col[v] = j
	}
	p := sparse{}
	for i, ngh := range adj {
		if j, ok := col[i]; ok {
			p.set(i, j, 1)
			continue
		}
		md := 0
		for _, u := range ngh {
			if _, ok := col[u]; ok {
				md++
			}
		}
		for _, u := range ngh {
			if j, ok := col[u]; ok {
				p.set(i, j, 1/float64(md))
			}
		}
	}
	return galerkin(adj, p, keep), p
}

// coarsenMatching contracts every edge of m into its lower endpoint. The
// prolongation matrix maps both endpoints to the same coarse vertex.
func coarsenMatching(adj [][]int, m matching.Matching) ([][]int, sparse, []int) {
	n := len(adj)
	partner := make([]int, n)
	removed := make([]bool, n)
	for i := range partner {
		partner[i] = -1
	}
	for _, e := range m {
		partner[e.From] = e.To
		removed[e.To] = true
	}
	keep := make([]int, 0, n-len(m))
	p := sparse{}
	for i := 0; i < n; i++ {
		if removed[i] {
			continue
		}
		j := len(keep)
		keep = append(keep, i)
		p.set(i, j, 1)
		if partner[i] >= 0 {
			p.set(partner[i], j, 1)
		}
	}
	return galerkin(adj, p, keep), p, keep
}
