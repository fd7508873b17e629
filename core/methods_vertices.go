// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and lookups: AddNode/NodeIndex/Node/RemoveNode.
// Determinism:
//   - Indices follow insertion order; removal shifts every higher index down by one.

package core

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/graphkit/value"
)

// AddNode returns the index of the vertex labelled label, appending a new
// vertex when no such label exists.
//
// Complexity: O(N) (linear label scan).
func (g *Graph) AddNode(label value.Value) int {
	if i := g.NodeIndex(label); i >= 0 {
		return i
	}
	g.vertices = append(g.vertices, newVertex(label, nil))
	return len(g.vertices) - 1
}

// AddNodeAttrs is AddNode that also merges attrs into the vertex attributes.
func (g *Graph) AddNodeAttrs(label value.Value, attrs *Attributes) int {
	i := g.AddNode(label)
	g.vertices[i].attrs.Merge(attrs)
	return i
}

// AddNodes adds every label and returns the resulting indices.
func (g *Graph) AddNodes(labels ...value.Value) []int {
	idx := make([]int, len(labels))
	for k, l := range labels {
		idx[k] = g.AddNode(l)
	}
	return idx
}

// NodeIndex returns the index of the vertex labelled label, or -1.
func (g *Graph) NodeIndex(label value.Value) int {
	for i, v := range g.vertices {
		if v.label.Equal(label) {
			return i
		}
	}
	return -1
}

// HasNode reports whether i is a valid vertex index.
func (g *Graph) HasNode(i int) bool { return i >= 0 && i < len(g.vertices) }

// Node returns the label of vertex i (zero Value when out of range).
func (g *Graph) Node(i int) value.Value {
	if !g.HasNode(i) {
		return value.Value{}
	}
	return g.vertices[i].label
}

// Nodes returns all labels in index order.
func (g *Graph) Nodes() []value.Value {
	out := make([]value.Value, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.label
	}
	return out
}

// SetNodeLabel relabels vertex i. It fails when i is out of range or the
// label already belongs to another vertex.
func (g *Graph) SetNodeLabel(i int, label value.Value) bool {
	if !g.HasNode(i) {
		return false
	}
	if j := g.NodeIndex(label); j >= 0 && j != i {
		return false
	}
	g.vertices[i].label = label
	return true
}

// NodeAttributes returns the live attribute store of vertex i, or nil.
func (g *Graph) NodeAttributes(i int) *Attributes {
	if !g.HasNode(i) {
		return nil
	}
	return g.vertices[i].attrs
}

// NodeCount returns the number of vertices.
func (g *Graph) NodeCount() int { return len(g.vertices) }

// RemoveNode deletes vertex i with all incident edges and renumbers every
// index above i down by one, rewriting all stored edge endpoints.
//
// Complexity: O(V + E·log d). Removal is expected to be rare.
func (g *Graph) RemoveNode(i int) bool {
	if !g.HasNode(i) {
		return false
	}
	shift := func(k int) int {
		if k > i {
			return k - 1
		}
		return k
	}
	g.vertices = append(g.vertices[:i], g.vertices[i+1:]...)
	for _, v := range g.vertices {
		out := redblacktree.NewWithIntComparator()
		it := v.out.Iterator()
		for it.Next() {
			k := it.Key().(int)
			if k == i {
				continue
			}
			out.Put(shift(k), it.Value())
		}
		v.out = out

		in := treeset.NewWithIntComparator()
		for _, x := range v.in.Values() {
			k := x.(int)
			if k == i {
				continue
			}
			in.Add(shift(k))
		}
		v.in = in
	}
	return true
}

// RemoveIsolatedNode removes vertex i after checking that it has no edges.
func (g *Graph) RemoveIsolatedNode(i int) error {
	if !g.HasNode(i) {
		return fmt.Errorf("RemoveIsolatedNode: index %d: %w", i, ErrVertexNotFound)
	}
	if d := g.Degree(i); d != 0 {
		return fmt.Errorf("RemoveIsolatedNode: vertex %s has degree %d: %w", g.Node(i), d, ErrNodeNotIsolated)
	}
	g.RemoveNode(i)
	return nil
}
