// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_cycle.go - Cycle(n) and CycleOf(labels...) constructors.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices are added via cfg.labelFn in ascending index order.
//   - Edges are emitted i → (i+1)%n for i = 0..n-1; a directed target
//     gets a directed ring.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.
//
// Determinism:
//   - Labels, edge order and weights are fixed for a given cfg.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/value"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the n-vertex cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		return ring(methodCycle, g, cfg, addVertices(g, cfg, n), false)
	}
}

// CycleOf builds a cycle through the given labels in order. Duplicate
// labels are rejected with ErrConstructFailed.
func CycleOf(labels ...value.Value) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", len(labels), minCycleNodes); err != nil {
			return err
		}
		for i := range labels {
			for j := i + 1; j < len(labels); j++ {
				if labels[i].Equal(labels[j]) {
					return fmt.Errorf("%s: duplicate label %s: %w", methodCycle, labels[i], ErrConstructFailed)
				}
			}
		}
		return ring(methodCycle, g, cfg, addLabels(g, labels), false)
	}
}

// ring links idx[i] → idx[(i+1)%n].
func ring(method string, g *core.Graph, cfg builderConfig, idx []int, mirror bool) error {
	n := len(idx)
	for i := 0; i < n; i++ {
		if err := link(method, g, cfg, idx[i], idx[(i+1)%n], mirror); err != nil {
			return err
		}
	}
	return nil
}
