// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/matching"
)

const (
	// plasticNumber is the real root of x³ = x + 1. Shrinking the spring
	// length by it per level avoids resonance with the coarsening ratio.
	plasticNumber = 1.32471795724474602596090885

	// misSwitchRatio: once a matching keeps more than this share of the
	// vertices, coarsening switches to independent sets.
	misSwitchRatio = 0.75

	springLayoutK = 10.0
)

// multilevel holds the state shared across the levels of one run.
type multilevel struct {
	opts Options
	log  logrus.FieldLogger
	// useMIS is set once matching-based coarsening stalls and stays set.
	useMIS bool
	// baseDepth is the depth of the coarsest level.
	baseDepth int
}

// Multilevel computes a fresh layout of g in Options.Dimension dimensions
// by recursive coarsening, base-case placement and level-by-level refinement.
// Directed graphs are laid out as their underlying undirected graph.
//
// At depth d the refinement uses spring length L = K·ρ^(d−b), where b is the
// depth of the coarsest level and ρ the plastic number, and cutoff R·(d+1)·L.
// Refinements use geometric cooling.
func Multilevel(g *core.Graph, opts ...Option) (Layout, error) {
	const method = "Multilevel"
	if err := g.Require(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	o := buildOptions(opts)
	if g.NodeCount() == 0 {
		return Layout{}, nil
	}
	if g.Directed() {
		g = g.Copy()
		g.MakeUnderlying()
	}
	s := &multilevel{opts: o, log: o.Logger.WithField("method", method)}
	return s.recurse(g, 0)
}

// SpringLayout is Multilevel with K = 10 and no repulsion cutoff; other
// options still apply.
func SpringLayout(g *core.Graph, opts ...Option) (Layout, error) {
	opts = append([]Option{WithSpringLength(springLayoutK)}, opts...)
	opts = append(opts, func(o *Options) { o.Cutoff = math.Inf(1) })
	return Multilevel(g, opts...)
}

func (s *multilevel) recurse(g *core.Graph, depth int) (Layout, error) {
	if err := s.opts.Ctx.Err(); err != nil {
		return nil, err
	}
	n := g.NodeCount()
	adj := adjacency(g)

	var (
		mis []int
		mt  matching.Matching
		m   int
	)
	if s.useMIS {
		mis = maximalIndependentSet(adj)
		m = len(mis)
	} else {
		var err error
		if mt, err = matching.Maximal(g); err != nil {
			return nil, err
		}
		m = n - mt.Size()
		if float64(m) > misSwitchRatio*float64(n) {
			s.log.WithFields(logrus.Fields{"depth": depth, "vertices": n, "kept": m}).
				Debug("matching coarsening stalled, switching to independent sets")
			s.useMIS = true
			return s.recurse(g, depth)
		}
	}

	k := s.opts.SpringLength
	if m < 2 || m >= n {
		s.baseDepth = depth
		x := RandomLayout(n, s.opts.Dimension, s.opts.Rand)
		if _, err := forceDirected(adj, x, s.refine(k, depth)); err != nil {
			return nil, err
		}
		s.log.WithFields(logrus.Fields{"depth": depth, "vertices": n}).Debug("coarsest level placed")
		return x, nil
	}

	var (
		coarseAdj [][]int
		p         sparse
		keep      []int
	)
	if s.useMIS {
		keep = mis
		coarseAdj, p = coarsenMIS(adj, keep)
	} else {
		coarseAdj, p, keep = coarsenMatching(adj, mt)
	}
	y, err := s.recurse(levelGraph(g, keep, coarseAdj), depth+1)
	if err != nil {
		return nil, err
	}

	x := p.lift(y, n, s.opts.Dimension)
	l := k * math.Pow(plasticNumber, float64(depth-s.baseDepth))
	st, err := forceDirected(adj, x, s.refine(l, depth))
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"depth":      depth,
		"vertices":   n,
		"coarse":     m,
		"spring":     l,
		"iterations": st.Iterations,
	}).Debug("level refined")
	return x, nil
}

// refine returns the ForceDirected options for one level with spring length l.
func (s *multilevel) refine(l float64, depth int) Options {
	o := s.opts
	o.SpringLength = l
	o.Cutoff = s.opts.Cutoff * float64(depth+1) * l
	o.Adaptive = false
	return o
}

// levelGraph builds the coarse graph whose vertex j carries the label of
// fine vertex keep[j].
func levelGraph(fine *core.Graph, keep []int, adj [][]int) *core.Graph {
	g := core.NewGraph()
	for _, v := range keep {
		g.AddNode(fine.Node(v))
	}
	for i, ngh := range adj {
		for _, j := range ngh {
			if i < j {
				g.AddEdge(i, j)
			}
		}
	}
	return g
}
