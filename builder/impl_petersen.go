// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_petersen.go - generalized Petersen graph G(n,k), Watkins notation.
//
// Contract:
//   - n ≥ 3 and 1 ≤ k < n (else ErrTooFewVertices / ErrBadNotation).
//   - Vertices cfg.labelFn(0..2n-1): 0..n-1 form the outer cycle, n..2n-1
//     the inner star polygon.
//   - Emission order: outer cycle i → (i+1)%n, then for each i the spoke
//     i → i+n and the inner edge i+n → (i+k)%n+n.
//   - Edges are mirrored on directed targets.
//
// Complexity: O(n).
//
// Named instances: G(5,2) Petersen, G(6,2) Dürer, G(8,3) Möbius-Kantor,
// G(10,2) dodecahedron, G(10,3) Desargues, G(12,5) Nauru.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodPetersen   = "Petersen"
	minPetersenOuter = 3
)

// Petersen returns a Constructor that builds G(n,k).
func Petersen(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPetersen, "n", n, minPetersenOuter); err != nil {
			return err
		}
		if k < 1 || k >= n {
			return fmt.Errorf("%s: k=%d not in [1,%d): %w", methodPetersen, k, n, ErrBadNotation)
		}
		idx := addVertices(g, cfg, 2*n)
		if err := ring(methodPetersen, g, cfg, idx[:n], true); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(methodPetersen, g, cfg, idx[i], idx[i+n], true); err != nil {
				return err
			}
			if err := link(methodPetersen, g, cfg, idx[i+n], idx[(i+k)%n+n], true); err != nil {
				return err
			}
		}
		return nil
	}
}
