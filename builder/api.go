// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// api.go - public entry point for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...) creates g,
//     resolves the configuration and runs cons in order.
//   - Factories live in impl_*.go; each returns a Constructor closure.
//   - Same inputs, options, seed and constructor order give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters before touching g
// and return wrapped sentinel errors; they never panic.
//
// Constructors compose: a label already present in g is reused, and an
// edge that already exists is left untouched.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts and applies every
// constructor in order. The first failure is returned as "BuildGraph: %w"
// and the partial graph is discarded.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}
	return g, nil
}

// Apply runs cons against an existing graph with the options bopts.
// Unlike BuildGraph it leaves the partial result in g on failure.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: %w", core.ErrNotAGraph)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return nil
}
