// SPDX-License-Identifier: MIT

package dfs

import (
	"github.com/katalvlaran/graphkit/core"
)

// FindCycle returns the vertices of one cycle of g in traversal order, or
// nil when g has none. On directed graphs the cycle follows arcs; on
// undirected graphs it has at least three vertices. A nil graph is acyclic.
//
// Complexity: O(V + E).
func FindCycle(g *core.Graph) []int {
	if g == nil {
		return nil
	}
	n := g.NodeCount()
	c := &cycleFinder{
		graph:  g,
		state:  make([]int, n),
		parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		if c.state[v] == White {
			c.parent[v] = -1
			if cyc := c.visit(v); cyc != nil {
				return cyc
			}
		}
	}
	return nil
}

type cycleFinder struct {
	graph  *core.Graph
	state  []int
	parent []int
}

func (c *cycleFinder) visit(v int) []int {
	c.state[v] = Gray
	for _, u := range c.graph.OutNeighbors(v) {
		switch c.state[u] {
		case White:
			c.parent[u] = v
			if cyc := c.visit(u); cyc != nil {
				return cyc
			}
		case Gray:
			if !c.graph.Directed() && u == c.parent[v] {
				continue
			}
			return c.unwind(u, v)
		}
	}
	c.state[v] = Black
	return nil
}

// unwind collects the tree path from top down to bottom.
func (c *cycleFinder) unwind(top, bottom int) []int {
	var cyc []int
	for x := bottom; x != top; x = c.parent[x] {
		cyc = append(cyc, x)
	}
	cyc = append(cyc, top)
	for i, j := 0, len(cyc)-1; i < j; i, j = i+1, j-1 {
		cyc[i], cyc[j] = cyc[j], cyc[i]
	}
	return cyc
}
