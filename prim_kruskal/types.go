// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphkit/core"
)

// ErrDisconnected indicates that no spanning tree covers every vertex.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrBadWeight indicates a NaN or infinite edge weight.
var ErrBadWeight = errors.New("prim_kruskal: weight is not finite")

// MethodPrim selects Prim's algorithm.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm.
const MethodKruskal = "kruskal"

// MSTOptions selects the algorithm and, for Prim, the root vertex.
type MSTOptions struct {
	Method string
	Root   int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm. Unknown names panic.
func WithMethod(m string) Option {
	if m != MethodPrim && m != MethodKruskal {
		panic(fmt.Sprintf("prim_kruskal: unknown method %q", m))
	}
	return func(o *MSTOptions) { o.Method = m }
}

// WithRoot sets the start vertex for Prim. Kruskal ignores it.
func WithRoot(root int) Option {
	return func(o *MSTOptions) { o.Root = root }
}

// DefaultOptions returns Kruskal rooted at vertex 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// MST runs the configured algorithm.
func MST(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Method == MethodPrim {
		return Prim(g, o.Root)
	}
	return Kruskal(g)
}

// weightedEdge is an undirected edge with From < To.
type weightedEdge struct {
	core.Edge
	w float64
}

// collect validates g and returns its edges normalised to From < To.
func collect(g *core.Graph) ([]weightedEdge, error) {
	if err := g.Require(core.NeedUndirected, core.NeedWeighted); err != nil {
		return nil, fmt.Errorf("prim_kruskal: %w", err)
	}
	var (
		out []weightedEdge
		bad error
	)
	g.ForEachEdge(func(e core.Edge, _ *core.Attributes) bool {
		w := weight(g, e.From, e.To)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			bad = fmt.Errorf("%w: edge %s--%s weight=%v", ErrBadWeight, g.Node(e.From), g.Node(e.To), w)
			return false
		}
		if e.From > e.To {
			e.From, e.To = e.To, e.From
		}
		out = append(out, weightedEdge{Edge: e, w: w})
		return true
	})
	if bad != nil {
		return nil, bad
	}
	return out, nil
}

func weight(g *core.Graph, u, v int) float64 {
	if w, ok := g.Weight(u, v); ok {
		return w
	}
	return 1
}

// less orders edges by weight, then endpoints.
func less(a, b weightedEdge) bool {
	if a.w != b.w {
		return a.w < b.w
	}
	if a.From != b.From {
		return a.From < b.From
	}
	return a.To < b.To
}
