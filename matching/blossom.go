// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// forest is the alternating forest of one augmenting-path search, stored as
// parent pointers over vertex indices.
//
//   - parent[w] is the even vertex from which odd vertex w was reached (-1 if none).
//   - base[v] is the base of the blossom currently containing v (v itself if none).
//   - even[v] marks vertices at even distance from the root (queued for scanning).
//   - inBlossom is scratch space for one contraction.
type forest struct {
	adj       [][]int
	mate      []int
	parent    []int
	base      []int
	even      []bool
	inBlossom []bool
	onPath    []bool
	queue     []int
}

func newForest(g *core.Graph, mate []int) *forest {
	n := g.NodeCount()
	f := &forest{
		adj:       make([][]int, n),
		mate:      mate,
		parent:    make([]int, n),
		base:      make([]int, n),
		even:      make([]bool, n),
		inBlossom: make([]bool, n),
		onPath:    make([]bool, n),
		queue:     make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		f.adj[i] = g.AdjacentNodes(i)
	}
	return f
}

// Maximum returns a maximum-cardinality matching of the undirected graph g
// using Edmonds' blossom algorithm.
//
// Steps:
//  1. Start from WithInitial (validated) or the greedy maximal matching.
//  2. For every exposed root, grow an alternating forest by BFS over even
//     vertices, contracting blossoms as they close.
//  3. When an exposed vertex is reached, flip the path back to the root.
//
// A root without an augmenting path never gains one later, so one pass over
// the vertices suffices.
//
// Complexity: O(V³) time, O(V+E) memory.
func Maximum(g *core.Graph, opts ...Option) (Matching, error) {
	const method = "Maximum"
	if err := checkGraph(method, g); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var mate []int
	if o.Initial != nil {
		if err := o.Initial.Validate(g); err != nil {
			return nil, fmt.Errorf("%s: initial matching: %w", method, err)
		}
		mate = o.Initial.Mates(g.NodeCount())
	} else {
		mate = greedy(g)
	}

	f := newForest(g, mate)
	for root := range f.mate {
		if f.mate[root] >= 0 {
			continue
		}
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		if v := f.findPath(root); v >= 0 {
			f.augment(v)
		}
	}
	return fromMates(f.mate), nil
}

// findPath searches an augmenting path from the exposed vertex root and
// returns its other (exposed) endpoint, or -1.
func (f *forest) findPath(root int) int {
	for i := range f.parent {
		f.parent[i] = -1
		f.base[i] = i
		f.even[i] = false
	}
	f.even[root] = true
	f.queue = append(f.queue[:0], root)

	for qh := 0; qh < len(f.queue); qh++ {
		v := f.queue[qh]
		for _, w := range f.adj[v] {
			// Same blossom, or the matched edge itself.
			if f.base[v] == f.base[w] || f.mate[v] == w {
				continue
			}
			if w == root || (f.mate[w] >= 0 && f.parent[f.mate[w]] >= 0) {
				// w is even: the edge v-w closes an odd cycle.
				f.contract(v, w)
				continue
			}
			if f.parent[w] >= 0 {
				// w is already odd.
				continue
			}
			f.parent[w] = v
			if f.mate[w] < 0 {
				return w
			}
			u := f.mate[w]
			f.even[u] = true
			f.queue = append(f.queue, u)
		}
	}
	return -1
}

// contract merges the blossom closed by edge v-w into its base, the nearest
// common ancestor of v and w, and enqueues its odd members as even.
func (f *forest) contract(v, w int) {
	b := f.lca(v, w)
	for i := range f.inBlossom {
		f.inBlossom[i] = false
	}
	f.markPath(v, b, w)
	f.markPath(w, b, v)
	for i := range f.base {
		if f.inBlossom[f.base[i]] {
			f.base[i] = b
			if !f.even[i] {
				f.even[i] = true
				f.queue = append(f.queue, i)
			}
		}
	}
}

// lca walks both tree paths by blossom base and returns the first common base.
func (f *forest) lca(a, b int) int {
	for i := range f.onPath {
		f.onPath[i] = false
	}
	for {
		a = f.base[a]
		f.onPath[a] = true
		if f.mate[a] < 0 {
			break
		}
		a = f.parent[f.mate[a]]
	}
	for {
		b = f.base[b]
		if f.onPath[b] {
			return b
		}
		b = f.parent[f.mate[b]]
	}
}

// markPath marks the blossoms on the tree path from v up to base b and
// rewires parent pointers so the path can later be unfolded through child.
func (f *forest) markPath(v, b, child int) {
	for f.base[v] != b {
		f.inBlossom[f.base[v]] = true
		f.inBlossom[f.base[f.mate[v]]] = true
		f.parent[v] = child
		child = f.mate[v]
		v = f.parent[f.mate[v]]
	}
}

// augment flips the alternating path ending at the exposed vertex v.
func (f *forest) augment(v int) {
	for v >= 0 {
		pv := f.parent[v]
		next := f.mate[pv]
		f.mate[v] = pv
		f.mate[pv] = v
		v = next
	}
}
