// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphkit/core"
)

// lowlinkWalker holds the state of one Tarjan depth-first pass.
//
// disc[v] is the 1-based discovery time (0 = unvisited) and low[v] the
// smallest discovery time reachable from v's subtree through one back edge.
// Tree and back edges are pushed on stack the first time they are seen, so
// an undirected edge is never stacked twice; when a child w of v finishes
// with low[w] >= disc[v], the edges down to (v,w) form one block.
type lowlinkWalker struct {
	graph  *core.Graph
	disc   []int
	low    []int
	clock  int
	cut    []bool
	stack  []core.Edge
	blocks []Block
}

// analyze runs the walker over every DFS tree of the undirected graph g.
func analyze(method string, g *core.Graph, opts []Option) (*lowlinkWalker, error) {
	if err := g.Require(core.NeedUndirected); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	o := buildOptions(opts)

	n := g.NodeCount()
	w := &lowlinkWalker{
		graph: g,
		disc:  make([]int, n),
		low:   make([]int, n),
		cut:   make([]bool, n),
	}
	for root := 0; root < n; root++ {
		if w.disc[root] != 0 {
			continue
		}
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		if children := w.visit(root, -1); children >= 2 {
			w.cut[root] = true
		}
	}
	return w, nil
}

// visit explores v (reached from parent) and returns its number of DFS children.
func (w *lowlinkWalker) visit(v, parent int) int {
	w.clock++
	w.disc[v], w.low[v] = w.clock, w.clock
	children := 0

	for _, u := range w.graph.AdjacentNodes(v) {
		switch {
		case w.disc[u] == 0:
			children++
			w.stack = append(w.stack, core.Edge{From: v, To: u})
			w.visit(u, v)
			if w.low[u] < w.low[v] {
				w.low[v] = w.low[u]
			}
			if w.low[u] >= w.disc[v] {
				if parent >= 0 {
					w.cut[v] = true
				}
				w.popBlock(v, u)
			}
		case u != parent && w.disc[u] < w.disc[v]:
			// back edge to an ancestor
			w.stack = append(w.stack, core.Edge{From: v, To: u})
			if w.disc[u] < w.low[v] {
				w.low[v] = w.disc[u]
			}
		}
	}
	return children
}

// popBlock pops edges down to and including (v,u) into a new block.
func (w *lowlinkWalker) popBlock(v, u int) {
	var (
		b    Block
		seen = map[int]bool{}
	)
	for {
		e := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if e.From > e.To {
			e.From, e.To = e.To, e.From
		}
		b.Edges = append(b.Edges, e)
		for _, x := range [2]int{e.From, e.To} {
			if !seen[x] {
				seen[x] = true
				b.Vertices = append(b.Vertices, x)
			}
		}
		if (e.From == v && e.To == u) || (e.From == u && e.To == v) {
			break
		}
	}
	sort.Ints(b.Vertices)
	sort.Slice(b.Edges, func(i, j int) bool {
		if b.Edges[i].From != b.Edges[j].From {
			return b.Edges[i].From < b.Edges[j].From
		}
		return b.Edges[i].To < b.Edges[j].To
	})
	w.blocks = append(w.blocks, b)
}

// CutVertices returns the articulation points of g in ascending order: the
// vertices whose removal increases the number of components.
func CutVertices(g *core.Graph, opts ...Option) ([]int, error) {
	w, err := analyze("CutVertices", g, opts)
	if err != nil {
		return nil, err
	}
	cut := []int{}
	for v, ok := range w.cut {
		if ok {
			cut = append(cut, v)
		}
	}
	return cut, nil
}

// Blocks returns the biconnected components of g, ordered by their first
// (smallest) edge. Isolated vertices belong to no block.
func Blocks(g *core.Graph, opts ...Option) ([]Block, error) {
	w, err := analyze("Blocks", g, opts)
	if err != nil {
		return nil, err
	}
	blocks := w.blocks
	sort.Slice(blocks, func(i, j int) bool {
		a, b := blocks[i].Edges[0], blocks[j].Edges[0]
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})
	if blocks == nil {
		blocks = []Block{}
	}
	return blocks, nil
}

// Bridges returns the edges whose removal disconnects their endpoints, that
// is the single-edge blocks, sorted by (From, To).
func Bridges(g *core.Graph, opts ...Option) ([]core.Edge, error) {
	blocks, err := Blocks(g, opts...)
	if err != nil {
		return nil, err
	}
	bridges := []core.Edge{}
	for _, b := range blocks {
		if len(b.Edges) == 1 {
			bridges = append(bridges, b.Edges[0])
		}
	}
	return bridges, nil
}

// IsBiconnected reports whether g is connected, has at least two vertices
// and no cut vertex. K2 counts as biconnected.
func IsBiconnected(g *core.Graph, opts ...Option) (bool, error) {
	w, err := analyze("IsBiconnected", g, opts)
	if err != nil {
		return false, err
	}
	n := g.NodeCount()
	return n >= 2 && len(w.blocks) == 1 && len(w.blocks[0].Vertices) == n, nil
}
