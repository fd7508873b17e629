// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_hypercube.go - Hypercube(n) constructor.
//
// Contract:
//   - n ≥ 1 and 2^n within the generator size bound.
//   - Vertices are the n-bit strings "00..0" .. "11..1" (most significant
//     bit first), in numeric order; cfg.labelFn is ignored.
//   - Strings at Hamming distance 1 are linked, pairs (i,j) with i < j in
//     lexicographic order. Edges are mirrored on directed targets.
//
// Complexity: O(n·2^n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/value"
)

const (
	methodHypercube = "Hypercube"
	minHypercubeDim = 1
)

// HypercubeLabel returns the label of vertex i in the n-dimensional cube.
func HypercubeLabel(i, n int) value.Value {
	return value.Str(fmt.Sprintf("%0*b", n, i))
}

// Hypercube returns a Constructor that builds Q_n.
func Hypercube(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodHypercube, "n", n, minHypercubeDim); err != nil {
			return err
		}
		order, err := validateOrder(methodHypercube, 2, n)
		if err != nil {
			return err
		}
		labels := make([]value.Value, order)
		for i := range labels {
			labels[i] = HypercubeLabel(i, n)
		}
		idx := addLabels(g, labels)
		for i := 0; i < order; i++ {
			// Flipping a clear bit, low to high, yields ascending neighbours.
			for b := 0; b < n; b++ {
				if i&(1<<b) != 0 {
					continue
				}
				if err := link(methodHypercube, g, cfg, idx[i], idx[i|1<<b], true); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
