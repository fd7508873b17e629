// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// validators.go - parameter checks shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// validateMin checks got ≥ min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}
	return nil
}

// validateProbability checks 0 ≤ p ≤ 1 (NaN fails).
func validateProbability(method string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
	}
	return nil
}

// requireUndirected rejects directed targets.
func requireUndirected(method string, g *core.Graph) error {
	if g.Directed() {
		return fmt.Errorf("%s: only undirected graphs are supported: %w", method, ErrUnsupportedGraphMode)
	}
	return nil
}

// maxGeneratedVertices bounds exponential families (Hypercube, Sierpinski).
const maxGeneratedVertices = 1 << 20

// power returns base^exp, or -1 once the result exceeds maxGeneratedVertices.
func power(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
		if r > maxGeneratedVertices {
			return -1
		}
	}
	return r
}

// validateOrder checks that an exponential family stays within
// maxGeneratedVertices and returns its vertex count.
func validateOrder(method string, base, exp int) (int, error) {
	n := power(base, exp)
	if n < 0 {
		return 0, fmt.Errorf("%s: %d^%d vertices exceeds %d: %w", method, base, exp, maxGeneratedVertices, ErrConstructFailed)
	}
	return n, nil
}
