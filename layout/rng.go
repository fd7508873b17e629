// SPDX-License-Identifier: MIT

package layout

import (
	"math"
	"math/rand"
)

// defaultRNGSeed replaces a zero seed so that the default stream is stable.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// RandomLayout places n points uniformly in the unit square (or cube).
func RandomLayout(n, dim int, rng *rand.Rand) Layout {
	x := make(Layout, n)
	for i := range x {
		p := make(Point, dim)
		for k := range p {
			p[k] = rng.Float64()
		}
		x[i] = p
	}
	return x
}

// randomDirection fills p with a uniformly random vector of length r.
func randomDirection(p Point, r float64, rng *rand.Rand) {
	for {
		norm := 0.0
		for k := range p {
			p[k] = rng.NormFloat64()
			norm += p[k] * p[k]
		}
		if norm > 0 {
			s := r / math.Sqrt(norm)
			for k := range p {
				p[k] *= s
			}
			return
		}
	}
}
