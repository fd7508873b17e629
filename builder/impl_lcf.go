// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_lcf.go - graphs from LCF notation [j0,j1,...,jm-1]^e.
//
// Contract:
//   - The graph has n = m·e vertices cfg.labelFn(0..n-1) on a Hamiltonian
//     cycle i → (i+1)%n.
//   - Vertex i additionally links to (i + j[i mod m]) mod n. Chords that
//     coincide with an existing edge are kept once.
//   - m ≥ 1, e ≥ 1, n ≥ 3 and no jump may be ≡ 0 (mod n)
//     (else ErrTooFewVertices / ErrBadNotation).
//   - Edges are mirrored on directed targets.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodLCF   = "LCF"
	minLCFNodes = 3
)

// lcfExpr is the grammar of "[5,-5]^4"; the exponent defaults to 1.
type lcfExpr struct {
	Jumps []int `parser:"\"[\" @Int ( \",\" @Int )* \"]\""`
	Exp   *int  `parser:"( \"^\" @Int )?"`
}

var lcfLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Punct", Pattern: `[\[\],^]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var lcfParser = participle.MustBuild[lcfExpr](
	participle.Lexer(lcfLexer),
)

// ParseLCF parses LCF notation such as "[3,-3]^4" or "[5,-5]" into its
// jump list and exponent.
func ParseLCF(notation string) (jumps []int, e int, err error) {
	expr, err := lcfParser.ParseString("", notation)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %q: %v: %w", methodLCF, notation, err, ErrBadNotation)
	}
	e = 1
	if expr.Exp != nil {
		e = *expr.Exp
	}
	if e < 1 {
		return nil, 0, fmt.Errorf("%s: %q: exponent %d < 1: %w", methodLCF, notation, e, ErrBadNotation)
	}
	return expr.Jumps, e, nil
}

// LCFNotation returns a Constructor for the graph written in LCF notation.
func LCFNotation(notation string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		jumps, e, err := ParseLCF(notation)
		if err != nil {
			return err
		}
		return LCF(jumps, e)(g, cfg)
	}
}

// LCF returns a Constructor for the graph [jumps]^e.
func LCF(jumps []int, e int) Constructor {
	jumps = append([]int(nil), jumps...)
	return func(g *core.Graph, cfg builderConfig) error {
		m := len(jumps)
		if m == 0 {
			return fmt.Errorf("%s: empty jump list: %w", methodLCF, ErrBadNotation)
		}
		if e < 1 {
			return fmt.Errorf("%s: exponent %d < 1: %w", methodLCF, e, ErrBadNotation)
		}
		n := m * e
		if err := validateMin(methodLCF, "n", n, minLCFNodes); err != nil {
			return err
		}
		for _, j := range jumps {
			if j%n == 0 {
				return fmt.Errorf("%s: jump %d is a loop on %d vertices: %w", methodLCF, j, n, ErrBadNotation)
			}
		}

		idx := addVertices(g, cfg, n)
		if err := ring(methodLCF, g, cfg, idx, true); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			k := (i + jumps[i%m]) % n
			if k < 0 {
				k += n
			}
			if err := link(methodLCF, g, cfg, idx[i], idx[k], true); err != nil {
				return err
			}
		}
		return nil
	}
}
