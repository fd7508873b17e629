// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighbourhood and degree queries.
// Determinism:
//   - All neighbour lists are sorted ascending.

package core

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/trees/redblacktree"
)

// keysOf snapshots the int keys of a neighbour tree in ascending order.
func keysOf(t *redblacktree.Tree) []int {
	out := make([]int, 0, t.Size())
	it := t.Iterator()
	for it.Next() {
		out = append(out, it.Key().(int))
	}
	return out
}

// valuesOf snapshots an int tree set in ascending order.
func valuesOf(s *treeset.Set) []int {
	out := make([]int, 0, s.Size())
	it := s.Iterator()
	for it.Next() {
		out = append(out, it.Value().(int))
	}
	return out
}

// OutNeighbors returns the indices stored in the neighbour map of i
// (successors for directed graphs, higher neighbours for undirected ones).
func (g *Graph) OutNeighbors(i int) []int {
	if !g.HasNode(i) {
		return nil
	}
	if !g.directed {
		return g.AdjacentNodes(i)
	}
	return keysOf(g.vertices[i].out)
}

// InNeighbors returns the predecessors of i (all neighbours for undirected graphs).
func (g *Graph) InNeighbors(i int) []int {
	if !g.HasNode(i) {
		return nil
	}
	if !g.directed {
		return g.AdjacentNodes(i)
	}
	return valuesOf(g.vertices[i].in)
}

// AdjacentNodes returns every vertex joined to i by an edge in either
// direction, sorted ascending without duplicates.
//
// Complexity: O(d).
func (g *Graph) AdjacentNodes(i int) []int {
	if !g.HasNode(i) {
		return nil
	}
	a := keysOf(g.vertices[i].out)
	b := valuesOf(g.vertices[i].in)
	out := make([]int, 0, len(a)+len(b))
	x, y := 0, 0
	for x < len(a) || y < len(b) {
		switch {
		case y == len(b) || (x < len(a) && a[x] < b[y]):
			out = append(out, a[x])
			x++
		case x == len(a) || b[y] < a[x]:
			out = append(out, b[y])
			y++
		default:
			out = append(out, a[x])
			x++
			y++
		}
	}
	return out
}

// OutDegree returns the size of i's stored neighbour map: the arcs leaving
// i, or on undirected graphs the edges whose canonical form starts at i
// (neighbours with a larger index).
func (g *Graph) OutDegree(i int) int {
	if !g.HasNode(i) {
		return 0
	}
	return g.vertices[i].out.Size()
}

// InDegree returns the number of stored edges ending at i: the arcs
// entering i, or on undirected graphs the neighbours with a smaller index.
// Degree(i) == InDegree(i) + OutDegree(i) in both modes.
//
// Complexity: O(1) via the maintained reverse index.
func (g *Graph) InDegree(i int) int {
	if !g.HasNode(i) {
		return 0
	}
	return g.vertices[i].in.Size()
}

// Degree returns InDegree+OutDegree, which on undirected graphs is the
// number of incident edges.
func (g *Graph) Degree(i int) int {
	if !g.HasNode(i) {
		return 0
	}
	v := g.vertices[i]
	return v.out.Size() + v.in.Size()
}
