// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_complete.go - Complete, CompleteBipartite and CompleteMultipartite.
//
// Contract:
//   - Complete(n): n ≥ 1; every pair i<j linked in lexicographic order.
//   - CompleteMultipartite(sizes...): at least one part, each of size ≥ 1.
//     Parts are labelled consecutively (part 0 takes labelFn(0..s0-1), part
//     1 the next s1 labels, ...) and every cross-part pair is linked, part
//     pairs in lexicographic order.
//   - CompleteBipartite(n1, n2) is CompleteMultipartite(n1, n2).
//   - All edges are mirrored on directed targets.
//
// Complexity: O(V²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodComplete             = "Complete"
	methodCompleteMultipartite = "CompleteMultipartite"
	minCompleteNodes           = 1
	minPartitionSize           = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		return linkClique(methodComplete, g, cfg, addVertices(g, cfg, n))
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return CompleteMultipartite(n1, n2)
}

// CompleteMultipartite returns a Constructor that builds K_{s0,s1,...}.
func CompleteMultipartite(sizes ...int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(sizes) == 0 {
			return fmt.Errorf("%s: no parts: %w", methodCompleteMultipartite, ErrTooFewVertices)
		}
		total := 0
		for i, s := range sizes {
			if err := validateMin(methodCompleteMultipartite, fmt.Sprintf("sizes[%d]", i), s, minPartitionSize); err != nil {
				return err
			}
			total += s
		}
		idx := addVertices(g, cfg, total)
		parts := make([][]int, len(sizes))
		off := 0
		for i, s := range sizes {
			parts[i] = idx[off : off+s]
			off += s
		}
		for i := range parts {
			for j := i + 1; j < len(parts); j++ {
				if err := linkAll(methodCompleteMultipartite, g, cfg, parts[i], parts[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
