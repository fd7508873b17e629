// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_random_sparse.go - RandomSparse(n, p), the Erdős–Rényi G(n,p) model.
//
// Contract:
//   - n ≥ 1 and 0 ≤ p ≤ 1 (else ErrTooFewVertices / ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource); for
//     p ∈ {0,1} the edge set is fixed and no draws are made.
//   - Undirected: unordered pairs i<j; directed: ordered pairs i≠j.
//     Each admissible pair is kept with probability p.
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism: trial order is i asc, then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		idx := addVertices(g, cfg, n)
		keep := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			}
			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			j := i + 1
			if g.Directed() {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := link(methodRandomSparse, g, cfg, idx[i], idx[j], false); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
