// SPDX-License-Identifier: MIT

package layout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

var (
	// ErrLayoutSize indicates a layout whose length differs from the vertex count.
	ErrLayoutSize = errors.New("layout: layout size does not match vertex count")

	// ErrDimension indicates points of an unsupported or inconsistent dimension.
	ErrDimension = errors.New("layout: unsupported point dimension")
)

// Point is a position in 2D or 3D space.
type Point []float64

// Layout assigns a Point to every vertex index.
type Layout []Point

// Dim returns the dimension shared by the points of x, or 0 for an empty layout.
func (x Layout) Dim() int {
	if len(x) == 0 {
		return 0
	}
	return len(x[0])
}

// Clone returns a deep copy of x.
func (x Layout) Clone() Layout {
	c := make(Layout, len(x))
	for i, p := range x {
		c[i] = append(Point(nil), p...)
	}
	return c
}

// check verifies that x has n points of one dimension in {2,3}.
func (x Layout) check(method string, n int) error {
	if len(x) != n {
		return fmt.Errorf("%s: %d points for %d vertices: %w", method, len(x), n, ErrLayoutSize)
	}
	d := x.Dim()
	for _, p := range x {
		if len(p) != d || (d != 2 && d != 3) {
			return fmt.Errorf("%s: point of dimension %d: %w", method, len(p), ErrDimension)
		}
	}
	return nil
}

// Stats reports how a ForceDirected run ended.
type Stats struct {
	// Iterations is the number of full sweeps over the vertices.
	Iterations int
	// Energy is the sum of squared displacements in the last sweep.
	Energy float64
	// MaxDisplacement is the largest single move in the last sweep.
	MaxDisplacement float64
	// Converged is false when the run stopped at MaxIterations.
	Converged bool
}

// Option configures a layout run.
type Option func(*Options)

// Options holds the parameters of ForceDirected and Multilevel.
type Options struct {
	// Ctx is polled once per sweep.
	Ctx context.Context
	// SpringLength is the natural edge length K.
	SpringLength float64
	// Cutoff is the repulsion radius R for ForceDirected. Multilevel reads it
	// as a multiple of the level's spring length and depth.
	Cutoff float64
	// Tolerance scales the stopping threshold K·Tolerance.
	Tolerance float64
	// Adaptive selects adaptive cooling for ForceDirected.
	Adaptive bool
	// Repulsion is the constant C of the repulsive force.
	Repulsion float64
	// MaxIterations caps the sweeps of one ForceDirected run.
	MaxIterations int
	// Dimension of generated layouts, 2 or 3.
	Dimension int
	// Rand drives random initial layouts and degenerate-case nudges.
	Rand *rand.Rand
	// Logger receives Debug progress records.
	Logger logrus.FieldLogger
}

const (
	defaultSpringLength  = 1.0
	defaultTolerance     = 0.01
	defaultRepulsion     = 1.0
	defaultMaxIterations = 10000
	shrinkingFactor      = 0.9
	progressSteps        = 5
)

// DefaultOptions returns K=1, no cutoff, tol=0.01, adaptive cooling, C=1,
// 2D output, a seed-1 RNG and a discard logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		SpringLength:  defaultSpringLength,
		Cutoff:        math.Inf(1),
		Tolerance:     defaultTolerance,
		Adaptive:      true,
		Repulsion:     defaultRepulsion,
		MaxIterations: defaultMaxIterations,
		Dimension:     2,
		Rand:          rngFromSeed(0),
		Logger:        discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithContext sets the cancellation context. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("layout: WithContext(nil)")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithSpringLength sets K. Panics unless k > 0.
func WithSpringLength(k float64) Option {
	if !(k > 0) || math.IsInf(k, 1) {
		panic(fmt.Sprintf("layout: WithSpringLength(%v) must be positive and finite", k))
	}
	return func(o *Options) { o.SpringLength = k }
}

// WithCutoff sets the repulsion radius; +Inf disables it. Panics unless r > 0.
func WithCutoff(r float64) Option {
	if !(r > 0) {
		panic(fmt.Sprintf("layout: WithCutoff(%v) must be positive", r))
	}
	return func(o *Options) { o.Cutoff = r }
}

// WithTolerance sets the relative stopping threshold. Panics unless tol > 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic(fmt.Sprintf("layout: WithTolerance(%v) must be positive", tol))
	}
	return func(o *Options) { o.Tolerance = tol }
}

// WithAdaptiveCooling toggles adaptive cooling in ForceDirected.
func WithAdaptiveCooling(on bool) Option {
	return func(o *Options) { o.Adaptive = on }
}

// WithRepulsion sets the repulsion constant C. Panics unless c > 0.
func WithRepulsion(c float64) Option {
	if !(c > 0) {
		panic(fmt.Sprintf("layout: WithRepulsion(%v) must be positive", c))
	}
	return func(o *Options) { o.Repulsion = c }
}

// WithMaxIterations caps ForceDirected sweeps. Panics unless n > 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("layout: WithMaxIterations(%d) must be positive", n))
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithDimension selects 2D or 3D output. Panics on other values.
func WithDimension(d int) Option {
	if d != 2 && d != 3 {
		panic(fmt.Sprintf("layout: WithDimension(%d) must be 2 or 3", d))
	}
	return func(o *Options) { o.Dimension = d }
}

// WithSeed uses a fresh RNG seeded with seed (0 means the default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rngFromSeed(seed) }
}

// WithRand uses r for all randomness. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("layout: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithLogger sends progress records to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("layout: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}
