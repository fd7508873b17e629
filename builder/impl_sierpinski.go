// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_sierpinski.go - Sierpiński graphs S(n,k) and triangle graphs ST(n).
//
// Contract:
//   - S(n,k): n ≥ 1, k ≥ 1, k^n within the generator size bound. Vertex t
//     is the t-th n-tuple over {0..k-1} in lexicographic order, labelled
//     cfg.labelFn(t). Tuples u < v are adjacent when for some h they agree
//     before h, differ at h, and u[t] = v[h], v[t] = u[h] for every t > h.
//   - ST(n): S(n,3) with every bridging edge (a maximal clique of size 2)
//     contracted, then relabelled cfg.labelFn(0..m-1) in surviving order.
//   - Edges are mirrored on directed targets.
//
// Complexity:
//   - S(n,k): O(k^n · n·k) time, O(k^n) space.
//   - ST(n): S(n,3) plus clique enumeration on a graph of maximum degree 3.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphkit/clique"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/value"
)

const (
	methodSierpinski         = "Sierpinski"
	methodSierpinskiTriangle = "SierpinskiTriangle"
	minSierpinskiOrder       = 1
	minSierpinskiBase        = 1
	sierpinskiTriangleBase   = 3
)

// Sierpinski returns a Constructor that builds S(n,k).
func Sierpinski(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		adj, err := sierpinskiAdjacency(methodSierpinski, n, k)
		if err != nil {
			return err
		}
		idx := addVertices(g, cfg, len(adj))
		for u, nbrs := range adj {
			for _, v := range nbrs {
				if err := link(methodSierpinski, g, cfg, idx[u], idx[v], true); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// SierpinskiTriangle returns a Constructor that builds ST(n).
func SierpinskiTriangle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		adj, err := sierpinskiAdjacency(methodSierpinskiTriangle, n, sierpinskiTriangleBase)
		if err != nil {
			return err
		}

		// Work on a private undirected copy so cliques never span vertices
		// that g held before this constructor ran.
		s := core.NewGraph()
		for t := range adj {
			s.AddNode(value.Int(int64(t)))
		}
		for u, nbrs := range adj {
			for _, v := range nbrs {
				s.AddEdge(u, v)
			}
		}

		var bridges [][]int
		err = clique.Enumerate(s, func(c []int) bool {
			if len(c) == 2 {
				bridges = append(bridges, c)
			}
			return true
		})
		if err != nil {
			return fmt.Errorf("%s: %w", methodSierpinskiTriangle, err)
		}
		isolated := make([]int, 0, len(bridges))
		for _, b := range bridges {
			s.CollapseEdge(b[0], b[1])
			isolated = append(isolated, b[1])
		}
		sort.Sort(sort.Reverse(sort.IntSlice(isolated)))
		for _, v := range isolated {
			if err := s.RemoveIsolatedNode(v); err != nil {
				return fmt.Errorf("%s: %w", methodSierpinskiTriangle, err)
			}
		}

		idx := addVertices(g, cfg, s.NodeCount())
		for _, e := range s.Edges() {
			if err := link(methodSierpinskiTriangle, g, cfg, idx[e.From], idx[e.To], true); err != nil {
				return err
			}
		}
		return nil
	}
}

// sierpinskiAdjacency returns, for each tuple index u, the ascending list
// of adjacent tuple indices v > u.
func sierpinskiAdjacency(method string, n, k int) ([][]int, error) {
	if err := validateMin(method, "n", n, minSierpinskiOrder); err != nil {
		return nil, err
	}
	if err := validateMin(method, "k", k, minSierpinskiBase); err != nil {
		return nil, err
	}
	order, err := validateOrder(method, k, n)
	if err != nil {
		return nil, err
	}

	// weight[t] is the place value of tuple position t (position 0 is the
	// most significant digit).
	weight := make([]int, n)
	weight[n-1] = 1
	for t := n - 2; t >= 0; t-- {
		weight[t] = weight[t+1] * k
	}
	digits := make([]int, n)
	adj := make([][]int, order)
	for u := 0; u < order; u++ {
		for t, r := 0, u; t < n; t++ {
			digits[t] = r / weight[t]
			r %= weight[t]
		}
		var nbrs []int
		for h := 0; h < n; h++ {
			// Every position after h must hold one common symbol c, which
			// becomes v[h]; v then holds u[h] at those positions.
			c := -1
			if h < n-1 {
				c = digits[h+1]
				for t := h + 2; t < n; t++ {
					if digits[t] != c {
						c = -2
						break
					}
				}
			}
			switch {
			case c == -2:
				continue
			case c == -1:
				for sym := 0; sym < k; sym++ {
					if sym != digits[h] {
						nbrs = append(nbrs, u+(sym-digits[h])*weight[h])
					}
				}
			case c != digits[h]:
				v := u + (c-digits[h])*weight[h]
				for t := h + 1; t < n; t++ {
					v += (digits[h] - c) * weight[t]
				}
				nbrs = append(nbrs, v)
			}
		}
		sort.Ints(nbrs)
		for _, v := range nbrs {
			if v > u {
				adj[u] = append(adj[u], v)
			}
		}
	}
	return adj, nil
}
