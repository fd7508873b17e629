// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   - Star: n ≥ 2; hub is cfg.labelFn(0), leaves cfg.labelFn(1..n-1).
//   - Wheel: n ≥ 4; rim is the cycle over cfg.labelFn(0..n-2), hub is
//     cfg.labelFn(n-1).
//   - Spokes are mirrored on directed targets; the rim is not.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		idx := addVertices(g, cfg, n)
		return linkAll(methodStar, g, cfg, idx[:1], idx[1:])
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} plus a hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}
		idx := addVertices(g, cfg, n)
		if err := ring(methodWheel, g, cfg, idx[:n-1], false); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		return linkAll(methodWheel, g, cfg, idx[n-1:], idx[:n-1])
	}
}
