// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - labelFn  = DefaultLabelFn  (0, 1, 2, ...)
//   - rng      = nil             (pure unless seeded)
//   - weightFn = DefaultWeightFn (constant DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	// labelFn maps a zero-based vertex index to its label.
	labelFn LabelFn
	// rng drives stochastic choices; nil means no randomness.
	rng *rand.Rand
	// weightFn yields edge weights; used only for weighted graphs.
	weightFn WeightFn
}

// newBuilderConfig applies opts over the defaults, later options winning.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn:  DefaultLabelFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
