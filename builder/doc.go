// SPDX-License-Identifier: MIT

// Package builder generates families of graphs through composable
// constructors.
//
// A Constructor mutates a *core.Graph using a resolved builderConfig;
// BuildGraph creates the graph, resolves BuilderOption values and runs the
// constructors in order:
//
//	g, err := builder.BuildGraph(nil, nil, builder.Petersen(5, 2))
//
// Families:
//
//   - Classic: Cycle, CycleOf, Path, Star, Wheel, Grid, Complete,
//     CompleteBipartite, CompleteMultipartite.
//   - Symmetric: Petersen (generalized, Watkins notation), LCF and
//     LCFNotation ("[5,-5]^4"), Hypercube, PlatonicSolid, and Named for
//     well-known instances ("heawood", "desargues", "shrikhande", ...).
//   - Fractal: Sierpinski and SierpinskiTriangle.
//   - Random: RandomSparse (Erdős–Rényi) and RandomRegular (stub matching).
//
// Labels come from the configured LabelFn (DefaultLabelFn numbers vertices
// from 0). Grid and Hypercube label vertices with their coordinates and
// ignore it. On weighted graphs every emitted edge receives
// cfg.weightFn(cfg.rng); symmetric families mirror every edge when the
// target graph is directed.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrUnsupportedGraphMode, ErrConstructFailed,
// ErrBadNotation) wrapped with the constructor name. Option constructors
// panic on meaningless input; constructors never do.
package builder
