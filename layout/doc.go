// SPDX-License-Identifier: MIT

// Package layout computes 2D and 3D drawings of a core.Graph with
// spring-electrical (Fruchterman–Reingold style) force-directed placement.
//
// What:
//
//   - ForceDirected refines a given layout in place. Adjacent vertices attract
//     with force d²/K, every pair within the cutoff R repels with C·K²/d, and
//     the step length cools geometrically (factor 0.9) or adaptively.
//     Iteration stops when no vertex moves more than K·tol.
//   - Multilevel coarsens the graph recursively, either by contracting the
//     edges of a maximal matching or by restricting to a maximal independent
//     set, lays out the coarsest level, then lifts (x = P·y) and refines level
//     by level with a spring length shrunk by the plastic number per level.
//   - SpringLayout is Multilevel with K = 10 and no cutoff.
//   - MakeUnique, BestQuadrants, Center, Translate, Rotate and Scale are
//     2D post-processing helpers.
//
// Determinism:
//
//	All randomness flows through the *rand.Rand in Options (WithSeed or
//	WithRand). The same seed and graph give the same layout.
//
// Complexity:
//
//   - ForceDirected: O(I·(V² + E)) for I iterations.
//   - Multilevel:    O(log V) levels, each one ForceDirected run plus an
//     O(V + E) coarsening.
//
// Errors:
//
//   - core.ErrNotAGraph  if g is nil.
//   - ErrLayoutSize      if the layout does not have one point per vertex.
//   - ErrDimension       for mixed or unsupported point dimensions.
package layout
