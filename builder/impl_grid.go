// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertices are labelled with the string "r,c" in row-major order and
//     ignore cfg.labelFn.
//   - Each cell links to its right then its lower neighbour; edges are
//     mirrored on directed targets.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/value"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridLabel returns the label Grid gives to cell (r, c).
func GridLabel(r, c int) value.Value {
	return value.Str(fmt.Sprintf(gridIDFmt, r, c))
}

// Grid returns a Constructor that builds the rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		labels := make([]value.Value, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				labels = append(labels, GridLabel(r, c))
			}
		}
		idx := addLabels(g, labels)
		at := func(r, c int) int { return idx[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(methodGrid, g, cfg, at(r, c), at(r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(methodGrid, g, cfg, at(r, c), at(r+1, c), true); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
