// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_named.go - Named(name) for well-known graphs.
//
// Every named graph is defined through another family of this package
// (generalized Petersen, LCF, Platonic) except Shrikhande, which is the
// Cayley graph of Z4×Z4 with connection set {±(1,0), ±(0,1), ±(1,1)}.
// Unknown names yield ErrOptionViolation.

package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodNamed     = "Named"
	shrikhandeSide  = 4
	shrikhandeNodes = shrikhandeSide * shrikhandeSide
)

var namedGraphs = map[string]func() Constructor{
	"petersen":      func() Constructor { return Petersen(5, 2) },
	"durer":         func() Constructor { return Petersen(6, 2) },
	"mobius-kantor": func() Constructor { return Petersen(8, 3) },
	"desargues":     func() Constructor { return Petersen(10, 3) },
	"nauru":         func() Constructor { return Petersen(12, 5) },
	"tetrahedron":   func() Constructor { return PlatonicSolid(Tetrahedron, false) },
	"cube":          func() Constructor { return PlatonicSolid(Cube, false) },
	"octahedron":    func() Constructor { return PlatonicSolid(Octahedron, false) },
	"dodecahedron":  func() Constructor { return PlatonicSolid(Dodecahedron, false) },
	"icosahedron":   func() Constructor { return PlatonicSolid(Icosahedron, false) },
	"franklin":      func() Constructor { return LCF([]int{5, -5}, 6) },
	"heawood":       func() Constructor { return LCF([]int{5, -5}, 7) },
	"mcgee":         func() Constructor { return LCF([]int{12, 7, -7}, 8) },
	"pappus":        func() Constructor { return LCF([]int{5, 7, -7, 7, -7, -5}, 3) },
	"dyck":          func() Constructor { return LCF([]int{5, -5, 13, -13}, 8) },
	"harries": func() Constructor {
		return LCF([]int{-35, -27, 27, -23, 15, -15, -9, -35, 23, -27, 27, 9, 15, -15}, 5)
	},
	"ljubljana": func() Constructor {
		return LCF([]int{
			47, -23, -31, 39, 25, -21, -31, -41, 25, 15, 29, -41, -19, 15, -49, 33, 39, -35, -21, 17, -33, 49, 41, 31,
			-15, -29, 41, 31, -15, -25, 21, 31, -51, -25, 23, 9, -17, 51, 35, -29, 21, -51, -39, 33, -9, -51, 51, -47,
			-33, 19, 51, -21, 29, 21, -31, -39,
		}, 2)
	},
	"shrikhande": func() Constructor { return shrikhande },
}

// NamedGraphs returns the names accepted by Named, sorted.
func NamedGraphs() []string {
	names := make([]string, 0, len(namedGraphs))
	for name := range namedGraphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Named returns a Constructor for a well-known graph; the lookup ignores
// case.
func Named(name string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		mk, ok := namedGraphs[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("%s: unknown graph %q: %w", methodNamed, name, ErrOptionViolation)
		}
		return mk()(g, cfg)
	}
}

func shrikhande(g *core.Graph, cfg builderConfig) error {
	idx := addVertices(g, cfg, shrikhandeNodes)
	for i := 0; i < shrikhandeNodes; i++ {
		for j := i + 1; j < shrikhandeNodes; j++ {
			m := (i/shrikhandeSide - j/shrikhandeSide + shrikhandeSide) % shrikhandeSide
			n := (i%shrikhandeSide - j%shrikhandeSide + shrikhandeSide) % shrikhandeSide
			if (m*n == 0 && (m+n)%2 != 0) || (m == n && (m*n)%2 != 0) {
				if err := link(methodNamed, g, cfg, idx[i], idx[j], true); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
