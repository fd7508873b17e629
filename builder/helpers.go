// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// helpers.go - vertex and edge emission shared by all constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/value"
)

// addVertices adds the vertices cfg.labelFn(0..n-1) and returns their
// indices in label order. Existing labels are reused.
func addVertices(g *core.Graph, cfg builderConfig, n int) []int {
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		idx[i] = g.AddNode(cfg.labelFn(i))
	}
	return idx
}

// addLabels adds explicit labels (coordinate-labelled families).
func addLabels(g *core.Graph, labels []value.Value) []int {
	return g.AddNodes(labels...)
}

// link emits the edge u→v. On a directed target with mirror set, v→u is
// emitted as well and both directions carry the same weight. An edge that
// already exists is kept as is; a loop is a construction failure.
func link(method string, g *core.Graph, cfg builderConfig, u, v int, mirror bool) error {
	if u == v {
		return fmt.Errorf("%s: loop at %s: %w", method, g.Node(u), ErrConstructFailed)
	}
	var w float64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	emit := func(a, b int) {
		if g.AddEdge(a, b) && g.Weighted() {
			g.SetWeight(a, b, w)
		}
	}
	emit(u, v)
	if mirror && g.Directed() {
		emit(v, u)
	}
	return nil
}

// linkAll connects every unordered pair drawn from the two index sets,
// i.e. the complete bipartite join of a and b.
func linkAll(method string, g *core.Graph, cfg builderConfig, a, b []int) error {
	for _, u := range a {
		for _, v := range b {
			if err := link(method, g, cfg, u, v, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// linkClique connects every pair in idx in lexicographic order.
func linkClique(method string, g *core.Graph, cfg builderConfig, idx []int) error {
	for i := 0; i < len(idx); i++ {
		for j := i + 1; j < len(idx); j++ {
			if err := link(method, g, cfg, idx[i], idx[j], true); err != nil {
				return err
			}
		}
	}
	return nil
}
