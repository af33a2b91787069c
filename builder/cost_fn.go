// SPDX-License-Identifier: MIT
// Package: rotas/builder
//
// cost_fn.go - road cost generators.
//
// A CostFn prices a generated road from the coordinates of its endpoints.
// Generators that draw random numbers fall back to a deterministic value
// when no RNG is configured.
//
// ManhattanCostFn and DetourCostFn never price a road below the Manhattan
// distance of its endpoints, so core.Computed estimates stay admissible on
// the maps they produce.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/rotas/core"
)

// CostFn returns the cost of a road between points a and b.
type CostFn func(rng *rand.Rand, a, b core.Point) float64

// ManhattanCostFn prices a road at the Manhattan distance of its endpoints.
func ManhattanCostFn(_ *rand.Rand, a, b core.Point) float64 {
	return core.Manhattan(a, b)
}

// ConstantCostFn prices every road at value. Panics if value < 0.
func ConstantCostFn(value float64) CostFn {
	if value < 0 || math.IsNaN(value) {
		panic(fmt.Sprintf("ConstantCostFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand, _, _ core.Point) float64 {
		return value
	}
}

// UniformCostFn draws costs from U[min,max]. Without an RNG it returns
// DefaultRoadCost. Panics unless 0 ≤ min ≤ max.
func UniformCostFn(min, max float64) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand, _, _ core.Point) float64 {
		if rng == nil {
			return DefaultRoadCost
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// DetourCostFn prices a road at its Manhattan length stretched by a random
// factor in [1, 1+maxFactor), rounded up to a whole number. Without an RNG
// the stretch is 1. Panics if maxFactor < 0.
func DetourCostFn(maxFactor float64) CostFn {
	if maxFactor < 0 || math.IsNaN(maxFactor) {
		panic(fmt.Sprintf("DetourCostFn: maxFactor must be ≥ 0, got %g", maxFactor))
	}

	return func(rng *rand.Rand, a, b core.Point) float64 {
		d := core.Manhattan(a, b)
		if rng == nil {
			return math.Ceil(d)
		}

		return math.Ceil(d * (1 + rng.Float64()*maxFactor))
	}
}

// WithConstantCost prices every generated road at w.
func WithConstantCost(w float64) BuilderOption {
	return WithCostFn(ConstantCostFn(w))
}

// WithUniformCost draws generated road costs from U[min,max].
func WithUniformCost(min, max float64) BuilderOption {
	return WithCostFn(UniformCostFn(min, max))
}

// WithDetourCost stretches generated road costs by up to maxFactor.
func WithDetourCost(maxFactor float64) BuilderOption {
	return WithCostFn(DetourCostFn(maxFactor))
}
