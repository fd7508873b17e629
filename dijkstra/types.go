// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphkit/core"
)

// ErrNegativeWeight indicates that a negative edge weight was found.
var ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

// Options configures Dijkstra.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context
	// MaxDistance caps the distances explored. Default +Inf.
	MaxDistance float64
	// InfEdgeThreshold marks edges with weight ≥ it as walls. Default +Inf.
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns a background context and no caps.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithContext sets the cancellation context. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("dijkstra: WithContext(nil)")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithMaxDistance stops exploring beyond distance d. Panics unless d ≥ 0.
func WithMaxDistance(d float64) Option {
	if !(d >= 0) {
		panic(fmt.Sprintf("dijkstra: WithMaxDistance(%v) must be non-negative", d))
	}
	return func(o *Options) { o.MaxDistance = d }
}

// WithInfEdgeThreshold treats edges weighing at least t as impassable.
// Panics unless t > 0.
func WithInfEdgeThreshold(t float64) Option {
	if !(t > 0) {
		panic(fmt.Sprintf("dijkstra: WithInfEdgeThreshold(%v) must be positive", t))
	}
	return func(o *Options) { o.InfEdgeThreshold = t }
}

// Result holds distances and the shortest-path tree, indexed by vertex.
type Result struct {
	Source int
	// Dist is +Inf for unreached vertices.
	Dist []float64
	// Prev is the predecessor on a shortest path, -1 for the source and
	// unreached vertices.
	Prev []int
}

// PathTo returns the vertices of a shortest path from Source to v.
func (r *Result) PathTo(v int) ([]int, error) {
	if v < 0 || v >= len(r.Dist) || math.IsInf(r.Dist[v], 1) {
		return nil, fmt.Errorf("dijkstra: no path to %d: %w", v, core.ErrVertexNotFound)
	}
	var path []int
	for cur := v; cur >= 0; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
