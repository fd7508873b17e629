// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_platonic.go - PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   - name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     anything else is ErrOptionViolation.
//   - Shells: Tetrahedron = K4, Cube = [3,-3]^4, Octahedron = K_{2,2,2},
//     Dodecahedron = [10,7,4,-4,-7,10,-4,7,-7,4]^2, Icosahedron from a
//     fixed two-rings-and-poles edge list.
//   - withCenter adds one hub, labelled after the shell, with a spoke to
//     every shell vertex.
//   - Edges are mirrored on directed targets.
//
// Complexity: O(V+E) with V ≤ 21, E ≤ 50.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return fmt.Sprintf("PlatonicName(%d)", int(p))
	}
}

// icosahedronEdges: pole 0, upper ring 1..5, lower ring 6..10, pole 11;
// upper vertex i meets lower vertices i+5 and i+6 (wrapping).
var icosahedronEdges = [][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
	{1, 2}, {1, 5}, {2, 3}, {3, 4}, {4, 5},
	{1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8},
	{3, 9}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
	{6, 7}, {6, 10}, {7, 8}, {8, 9}, {9, 10},
	{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
}

// platonicShell returns the constructor of the solid's shell and its order.
func platonicShell(name PlatonicName) (Constructor, int, bool) {
	switch name {
	case Tetrahedron:
		return Complete(4), 4, true
	case Cube:
		return LCF([]int{3, -3}, 4), 8, true
	case Octahedron:
		return CompleteMultipartite(2, 2, 2), 6, true
	case Dodecahedron:
		return LCF([]int{10, 7, 4, -4, -7, 10, -4, 7, -7, 4}, 2), 20, true
	case Icosahedron:
		return edgeList(methodPlatonicSolid, 12, icosahedronEdges), 12, true
	}
	return nil, 0, false
}

// PlatonicSolid returns a Constructor for the named solid's skeleton.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		shell, n, ok := platonicShell(name)
		if !ok {
			return fmt.Errorf("%s: unknown solid %s: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		if err := shell(g, cfg); err != nil {
			return fmt.Errorf("%s: %s: %w", methodPlatonicSolid, name, err)
		}
		if !withCenter {
			return nil
		}
		idx := addVertices(g, cfg, n+1)
		return linkAll(methodPlatonicSolid, g, cfg, idx[n:], idx[:n])
	}
}

// edgeList builds a fixed graph on cfg.labelFn(0..n-1) from index pairs.
func edgeList(method string, n int, edges [][2]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		idx := addVertices(g, cfg, n)
		for _, e := range edges {
			if err := link(method, g, cfg, idx[e[0]], idx[e[1]], true); err != nil {
				return err
			}
		}
		return nil
	}
}
