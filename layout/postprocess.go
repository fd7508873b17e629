// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphkit/core"
)

// Center returns the centroid of x, or nil for an empty layout.
func Center(x Layout) Point {
	if len(x) == 0 {
		return nil
	}
	c := make(Point, x.Dim())
	for _, p := range x {
		addScaled(c, p, 1)
	}
	scale(c, 1/float64(len(x)))
	return c
}

// Translate moves every point of x by d.
func Translate(x Layout, d Point) {
	for _, p := range x {
		addScaled(p, d, 1)
	}
}

// Rotate turns a 2D layout by phi radians around the origin.
func Rotate(x Layout, phi float64) error {
	if err := require2D("Rotate", x); err != nil {
		return err
	}
	sin, cos := math.Sincos(phi)
	for _, p := range x {
		p[0], p[1] = cos*p[0]-sin*p[1], sin*p[0]+cos*p[1]
	}
	return nil
}

// Scale resizes x about the origin so that its largest coordinate extent
// equals diam. A layout of coincident points is left unchanged.
func Scale(x Layout, diam float64) {
	if len(x) == 0 {
		return
	}
	d := x.Dim()
	extent := 0.0
	for k := 0; k < d; k++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, p := range x {
			lo, hi = math.Min(lo, p[k]), math.Max(hi, p[k])
		}
		extent = math.Max(extent, hi-lo)
	}
	if extent == 0 {
		return
	}
	for _, p := range x {
		scale(p, diam/extent)
	}
}

// uniqueEpsilon is the distance below which a point counts as the origin.
const uniqueEpsilon = 1e-9

// MakeUnique puts a 2D layout in canonical position: the centroid moves to
// the origin and the first vertex away from it is rotated onto the positive
// x axis. Layouts that differ by a translation and a rotation become equal.
func MakeUnique(x Layout) error {
	if err := require2D("MakeUnique", x); err != nil {
		return err
	}
	if len(x) == 0 {
		return nil
	}
	c := Center(x)
	scale(c, -1)
	Translate(x, c)
	for _, p := range x {
		if length(p) > uniqueEpsilon {
			return Rotate(x, -math.Atan2(p[1], p[0]))
		}
	}
	return nil
}

// Quadrant is a label placement around a vertex, counted counter-clockwise
// from the upper right.
type Quadrant int

const (
	// Quadrant1 is up and to the right.
	Quadrant1 Quadrant = iota + 1
	// Quadrant2 is up and to the left.
	Quadrant2
	// Quadrant3 is down and to the left.
	Quadrant3
	// Quadrant4 is down and to the right.
	Quadrant4
)

func (q Quadrant) String() string {
	switch q {
	case Quadrant1:
		return "Q1"
	case Quadrant2:
		return "Q2"
	case Quadrant3:
		return "Q3"
	case Quadrant4:
		return "Q4"
	default:
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
}

// bisectors are the directions of the quadrant centres.
var bisectors = [4]float64{math.Pi / 4, 3 * math.Pi / 4, -3 * math.Pi / 4, -math.Pi / 4}

// BestQuadrants returns, for every vertex of g, the quadrant of a 2D layout
// least crowded by incident edges, for placing the vertex label.
//
// A quadrant's score is the angular gap between its bisector and the nearest
// incident edge, capped at π/4. Ties go to the quadrant pointing furthest
// away from the layout centroid. A vertex with one neighbour gets the
// quadrant opposite to that edge; an isolated vertex gets Quadrant1.
func BestQuadrants(g *core.Graph, x Layout) ([]Quadrant, error) {
	const method = "BestQuadrants"
	if err := g.Require(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err := x.check(method, g.NodeCount()); err != nil {
		return nil, err
	}
	if err := require2D(method, x); err != nil {
		return nil, err
	}
	center := Center(x)
	out := make([]Quadrant, len(x))
	for i, p := range x {
		ngh := g.AdjacentNodes(i)
		phis := make([]float64, len(ngh))
		for k, j := range ngh {
			phis[k] = math.Atan2(x[j][1]-p[1], x[j][0]-p[0])
		}
		out[i] = bestQuadrant(p, phis, center)
	}
	return out, nil
}

func bestQuadrant(p Point, phis []float64, center Point) Quadrant {
	switch len(phis) {
	case 0:
		return Quadrant1
	case 1:
		switch phi := phis[0]; {
		case phi <= -math.Pi/2:
			return Quadrant1
		case phi <= 0:
			return Quadrant2
		case phi <= math.Pi/2:
			return Quadrant3
		default:
			return Quadrant4
		}
	}

	var (
		candidates []int
		best       = -1.0
	)
	for q, b := range bisectors {
		score := math.Pi / 4
		for _, phi := range phis {
			score = math.Min(score, angularDistance(b, phi))
		}
		switch {
		case score > best:
			best = score
			candidates = append(candidates[:0], q)
		case score == best:
			candidates = append(candidates, q)
		}
	}

	pick := candidates[0]
	if len(candidates) > 1 {
		phi0 := math.Atan2(center[1]-p[1], center[0]-p[0])
		far := 0.0
		for _, q := range candidates {
			if d := angularDistance(bisectors[q], phi0); d > far {
				far, pick = d, q
			}
		}
	}
	return Quadrant(pick + 1)
}

// angularDistance returns the smaller angle between directions a and b, in [0, π].
func angularDistance(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 2*math.Pi))
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

func require2D(method string, x Layout) error {
	for _, p := range x {
		if len(p) != 2 {
			return fmt.Errorf("%s: point of dimension %d, want 2: %w", method, len(p), ErrDimension)
		}
	}
	return nil
}
