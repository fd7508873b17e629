// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies. Derived graphs (complement, subgraphs, underlying graphs)
//       are produced into fresh instances so that the source is never mutated.

package core

import "fmt"

// Copy returns a deep copy of g: name, flags, graph attributes, user tags,
// vertices with attributes and edges with attributes.
func (g *Graph) Copy() *Graph {
	dst := NewGraph()
	// dst is empty by construction.
	_ = g.CopyInto(dst)
	return dst
}

// CopyInto deep-copies g into dst, which must not hold any vertex.
func (g *Graph) CopyInto(dst *Graph) error {
	if dst == nil {
		return fmt.Errorf("CopyInto: %w", ErrNotAGraph)
	}
	if dst.NodeCount() != 0 {
		return fmt.Errorf("CopyInto: target has %d vertices: %w", dst.NodeCount(), ErrGraphNotEmpty)
	}
	g.copyHeader(dst)
	for _, v := range g.vertices {
		dst.vertices = append(dst.vertices, newVertex(v.label, v.attrs.Clone()))
	}
	g.ForEachEdge(func(e Edge, a *Attributes) bool {
		dst.AddEdgeAttrs(e.From, e.To, a)
		return true
	})
	return nil
}

// copyHeader copies everything except vertices and edges.
func (g *Graph) copyHeader(dst *Graph) {
	dst.name = g.name
	dst.directed = g.directed
	dst.weighted = g.weighted
	dst.attrs = g.attrs.Clone()
	dst.tags = append([]string(nil), g.tags...)
	dst.tagKeys = make(map[string]Key, len(g.tags))
	for k, name := range dst.tags {
		dst.tagKeys[name] = KeyUser + Key(k)
	}
}

// Clear removes every vertex and edge, keeping flags, attributes and tags.
func (g *Graph) Clear() {
	g.vertices = nil
}
