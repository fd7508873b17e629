// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphkit/core"
)

// ForceDirected refines x in place with the spring-electrical model and
// returns statistics of the run. x must hold one point per vertex of g, all
// of dimension 2 or 3. Directed graphs are treated as undirected.
//
// Steps per sweep, for each vertex i in index order:
//  1. Sum the attraction (x_j - x_i)·|x_j - x_i|/K over neighbours j.
//  2. Add the repulsion C·K²/d²·(x_i - x_j) over all j ≠ i with d ≤ R. When
//     d = 0 the direction is a random vector of length 0.9·K·tol.
//  3. Move x_i along the force, clamped to the current step length.
//
// The step starts at K and is multiplied by 0.9 after every sweep; with
// adaptive cooling it is instead divided by 0.9 after 5 consecutive sweeps
// of decreasing energy. The run stops once the largest move is at most K·tol.
func ForceDirected(g *core.Graph, x Layout, opts ...Option) (Stats, error) {
	const method = "ForceDirected"
	if err := g.Require(); err != nil {
		return Stats{}, fmt.Errorf("%s: %w", method, err)
	}
	n := g.NodeCount()
	if err := x.check(method, n); err != nil {
		return Stats{}, err
	}
	o := buildOptions(opts)
	if n == 0 {
		return Stats{Converged: true}, nil
	}

	adj := make([][]int, n)
	for i := range adj {
		adj[i] = g.AdjacentNodes(i)
	}
	return forceDirected(adj, x, o)
}

// forceDirected runs the placement loop over an adjacency list.
func forceDirected(adj [][]int, x Layout, o Options) (Stats, error) {
	var (
		k        = o.SpringLength
		r        = o.Cutoff
		c        = o.Repulsion
		step     = k
		eps      = k * o.Tolerance
		nudge    = shrinkingFactor * eps
		energy   = math.Inf(1)
		progress int
		st       Stats
	)
	d := x.Dim()
	force, diff := make(Point, d), make(Point, d)

	for st.Iterations < o.MaxIterations {
		if err := o.Ctx.Err(); err != nil {
			return st, err
		}
		st.Iterations++
		energy0 := energy
		energy = 0
		st.MaxDisplacement = 0

		for i, xi := range x {
			clear(force)
			for _, j := range adj[i] {
				dist := difference(x[j], xi, diff)
				addScaled(force, diff, dist/k)
			}
			for j, xj := range x {
				if j == i {
					continue
				}
				dist := difference(xi, xj, diff)
				if dist > r {
					continue
				}
				if dist == 0 {
					randomDirection(diff, nudge, o.Rand)
					dist = nudge
				}
				addScaled(force, diff, c*k*k/(dist*dist))
			}

			norm := length(force)
			if norm == 0 {
				continue
			}
			if norm > step {
				scale(force, step/norm)
				norm = step
			}
			addScaled(xi, force, 1)
			if norm > st.MaxDisplacement {
				st.MaxDisplacement = norm
			}
			energy += norm * norm
		}
		st.Energy = energy

		switch {
		case !o.Adaptive:
			step *= shrinkingFactor
		case energy < energy0:
			progress++
			if progress >= progressSteps {
				progress = 0
				step /= shrinkingFactor
			}
		default:
			progress = 0
			step *= shrinkingFactor
		}

		if st.MaxDisplacement <= eps {
			st.Converged = true
			break
		}
	}

	o.Logger.WithFields(logrus.Fields{
		"vertices":   len(x),
		"K":          k,
		"iterations": st.Iterations,
		"energy":     st.Energy,
		"converged":  st.Converged,
	}).Debug("force-directed placement finished")
	return st, nil
}

// difference stores a - b in out and returns its length.
func difference(a, b, out Point) float64 {
	for k := range out {
		out[k] = a[k] - b[k]
	}
	return length(out)
}

func length(p Point) float64 {
	s := 0.0
	for _, v := range p {
		s += v * v
	}
	return math.Sqrt(s)
}

// addScaled adds s·q to p.
func addScaled(p, q Point, s float64) {
	for k := range p {
		p[k] += s * q[k]
	}
}

func scale(p Point, s float64) {
	for k := range p {
		p[k] *= s
	}
}
