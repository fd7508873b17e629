// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// weight_fn.go - edge weight distributions for weighted targets.
//
// Contract:
//   - A WeightFn is called once per emitted edge, in emission order, and
//     only when the target graph is weighted.
//   - Stochastic distributions fall back to DefaultEdgeWeight when the
//     RNG is nil, so unseeded builds stay deterministic.
//   - Constructors panic on non-finite or inverted parameters.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional RNG.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields w.
// Panics if w is NaN or infinite.
func ConstantWeightFn(w float64) WeightFn {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: weight must be finite, got %g", w))
	}
	return func(_ *rand.Rand) float64 {
		return w
	}
}

// UniformWeightFn samples uniformly in [lo, hi). Panics if hi < lo or
// either bound is not finite.
func UniformWeightFn(lo, hi float64) WeightFn {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require finite lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if hi == lo {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// IntegerWeightFn samples integers uniformly in [lo, hi], the weight range
// commonly used for random test networks. Panics if hi < lo.
func IntegerWeightFn(lo, hi int) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("IntegerWeightFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// NormalWeightFn samples from N(mean, stddev). Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 || math.IsNaN(stddev) {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return rng.NormFloat64()*stddev + mean
	}
}

// ExponentialWeightFn samples from Exp(rate), mean 1/rate.
// Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if !(rate > 0) {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return rng.ExpFloat64() / rate
	}
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is WithWeightFn(UniformWeightFn(lo, hi)).
func WithUniformWeight(lo, hi float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithIntegerWeight is WithWeightFn(IntegerWeightFn(lo, hi)).
func WithIntegerWeight(lo, hi int) BuilderOption {
	return WithWeightFn(IntegerWeightFn(lo, hi))
}
