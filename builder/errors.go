// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors attach context as "<Method>: <detail>: %w".
//   - Option constructors (WithX) panic on meaningless values; constructors
//     return errors and never panic.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, k, rows, degree,
// partition size) is below the minimum the constructor accepts.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates that the target graph's mode is
// incompatible with the constructor (e.g. RandomRegular on a digraph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates that the builder exhausted its strategies
// (stub-matching retries, label collisions, nil constructors).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadNotation indicates a malformed LCF string or an invalid jump list.
var ErrBadNotation = errors.New("builder: bad LCF notation")

// ErrOptionViolation indicates an unknown enumerated parameter, such as a
// PlatonicName outside the five solids.
var ErrOptionViolation = errors.New("builder: invalid option value")
