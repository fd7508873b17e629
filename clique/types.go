// SPDX-License-Identifier: MIT

package clique

import (
	"context"
	"fmt"
)

// Option configures an enumeration.
type Option func(*Options)

// Options holds the enumeration parameters.
type Options struct {
	// Ctx is polled at every recursion step; defaults to context.Background().
	Ctx context.Context
	// MinSize drops maximal cliques with fewer vertices. Default 1.
	MinSize int
}

// DefaultOptions returns Options with a background context and MinSize 1.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MinSize: 1}
}

// WithContext sets the cancellation context. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("clique: WithContext(nil)")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithMinSize reports only maximal cliques with at least k vertices.
// Panics if k < 1.
func WithMinSize(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("clique: WithMinSize(%d) must be >= 1", k))
	}
	return func(o *Options) { o.MinSize = k }
}
