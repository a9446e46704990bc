// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvroute/core"
)

// DefaultEdgeWeight is the weight of every generated edge when no WeightFn is set.
var DefaultEdgeWeight = core.Weight{Distance: 1, Time: 1, Cost: 1}

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given seed.
type WeightFn func(rng *rand.Rand) core.Weight

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) core.Weight {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields w.
// Panics if w has a negative, NaN or infinite dimension.
func ConstantWeightFn(w core.Weight) WeightFn {
	if !w.Valid() {
		panic(fmt.Sprintf("ConstantWeightFn: invalid weight %+v", w))
	}

	return func(_ *rand.Rand) core.Weight {
		return w
	}
}

// UniformWeightFn returns a WeightFn that samples each dimension
// independently and uniformly in [lo, hi). With a nil RNG it yields
// DefaultEdgeWeight. Panics unless 0 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	span := hi - lo

	return func(rng *rand.Rand) core.Weight {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return core.Weight{
			Distance: lo + rng.Float64()*span,
			Time:     lo + rng.Float64()*span,
			Cost:     lo + rng.Float64()*span,
		}
	}
}

// RoundedWeightFn wraps fn and rounds every dimension to whole units, which
// keeps generated records files readable.
func RoundedWeightFn(fn WeightFn) WeightFn {
	if fn == nil {
		panic("RoundedWeightFn: nil WeightFn")
	}

	return func(rng *rand.Rand) core.Weight {
		w := fn(rng)

		return core.Weight{
			Distance: float64(int64(w.Distance + 0.5)),
			Time:     float64(int64(w.Time + 0.5)),
			Cost:     float64(int64(w.Cost + 0.5)),
		}
	}
}
