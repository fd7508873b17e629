// SPDX-License-Identifier: MIT

package connectivity

import (
	"context"

	"github.com/katalvlaran/graphkit/core"
)

// Block is one biconnected component: a maximal set of edges in which every
// two edges lie on a common simple cycle, or a single bridge edge.
type Block struct {
	// Vertices in ascending index order.
	Vertices []int
	// Edges with From < To, sorted by (From, To).
	Edges []core.Edge
}

// Option configures a connectivity analysis.
type Option func(*Options)

// Options holds the parameters shared by all analyses.
type Options struct {
	// Ctx is checked before each new DFS tree; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("connectivity: WithContext(nil)")
	}
	return func(o *Options) { o.Ctx = ctx }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
