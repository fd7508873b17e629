// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edges are emitted (i-1) → i for i = 1..n-1.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/graphkit/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		idx := addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := link(methodPath, g, cfg, idx[i-1], idx[i], false); err != nil {
				return err
			}
		}
		return nil
	}
}
