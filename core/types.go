// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, vertex and Edge types, GraphOption constructors, NewGraph.

package core

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/graphkit/value"
)

// Edge is a canonical vertex-index pair as produced by MakeEdge.
type Edge struct {
	From int
	To   int
}

// vertex is the per-index record owned by a Graph.
type vertex struct {
	label value.Value
	attrs *Attributes
	// out maps neighbour index (int) to the edge's *Attributes for every
	// edge stored canonically at this vertex.
	out *redblacktree.Tree
	// in holds every index whose out map contains this vertex.
	in *treeset.Set
}

func newVertex(label value.Value, attrs *Attributes) *vertex {
	if attrs == nil {
		attrs = NewAttributes()
	}
	return &vertex{
		label: label,
		attrs: attrs,
		out:   redblacktree.NewWithIntComparator(),
		in:    treeset.NewWithIntComparator(),
	}
}

// Graph is a mutable vertex/edge container, directed or undirected,
// weighted or unweighted.
type Graph struct {
	name     string
	directed bool
	weighted bool
	attrs    *Attributes

	// tags[k] is the name of user key KeyUser+k.
	tags    []string
	tagKeys map[string]Key

	vertices []*vertex
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets the graph direction mode.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted marks the graph as weighted.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithName sets the graph name.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// NewGraph returns an empty graph (undirected, unweighted unless configured).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		attrs:   NewAttributes(),
		tagKeys: make(map[string]Key),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the graph name ("" when unnamed).
func (g *Graph) Name() string { return g.name }

// SetName replaces the graph name.
func (g *Graph) SetName(name string) { g.name = name }

// Directed reports the direction mode.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether edges carry weights.
func (g *Graph) Weighted() bool { return g.weighted }

// SetWeighted flips the weighted flag without touching edge attributes.
// Use MakeWeighted/MakeUnweighted to keep the weight invariant.
func (g *Graph) SetWeighted(weighted bool) { g.weighted = weighted }

// Attributes returns the live graph-level attribute store.
func (g *Graph) Attributes() *Attributes { return g.attrs }

// Options returns GraphOptions reproducing the mode flags and name of g.
func (g *Graph) Options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed), WithName(g.name)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	return opts
}

// RegisterTag returns the stable key for a tag name. Reserved names resolve
// to their reserved keys; unknown names are appended to the user range.
// Registering the same name twice yields the same key.
func (g *Graph) RegisterTag(name string) Key {
	if k, ok := ReservedKey(name); ok {
		return k
	}
	if k, ok := g.tagKeys[name]; ok {
		return k
	}
	k := KeyUser + Key(len(g.tags))
	g.tags = append(g.tags, name)
	g.tagKeys[name] = k
	return k
}

// TagKey resolves a tag name without registering it.
func (g *Graph) TagKey(name string) (Key, bool) {
	if k, ok := ReservedKey(name); ok {
		return k, true
	}
	k, ok := g.tagKeys[name]
	return k, ok
}

// TagName resolves a key to its tag name.
func (g *Graph) TagName(k Key) (string, bool) {
	if k >= 0 && k < KeyUser {
		return reservedTags[k], true
	}
	idx := int(k - KeyUser)
	if idx < 0 || idx >= len(g.tags) {
		return "", false
	}
	return g.tags[idx], true
}

// UserTags returns the registered user tag names in key order.
func (g *Graph) UserTags() []string {
	out := make([]string, len(g.tags))
	copy(out, g.tags)
	return out
}

// Requirement names a graph mode an operation depends on.
type Requirement uint8

// Requirements accepted by Require.
const (
	NeedDirected Requirement = iota + 1
	NeedUndirected
	NeedWeighted
	NeedUnweighted
)

// Require checks g against the given requirements and returns the matching
// taxonomy error for the first one that fails. A nil graph yields ErrNotAGraph.
func (g *Graph) Require(reqs ...Requirement) error {
	if g == nil {
		return ErrNotAGraph
	}
	for _, r := range reqs {
		switch {
		case r == NeedDirected && !g.directed:
			return ErrDirectedRequired
		case r == NeedUndirected && g.directed:
			return ErrUndirectedRequired
		case r == NeedWeighted && !g.weighted:
			return ErrWeightedRequired
		case r == NeedUnweighted && g.weighted:
			return ErrUnweightedRequired
		}
	}
	return nil
}
