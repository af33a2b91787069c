// SPDX-License-Identifier: MIT
// Package: rotas/builder
//
// options.go - functional options for BuildMap.
//
// Option constructors validate their arguments and panic on programmer
// error, so an invalid configuration never reaches a constructor.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/rotas/core"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before map construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the city naming function: idx -> name.
// A nil fn is ignored and the current scheme is kept.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCostFn overrides the per-road cost generator. Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithMode sets the heuristic mode of generated cities.
// Square and Romania keep their fixed modes.
func WithMode(mode core.HeuristicMode) BuilderOption {
	if mode != core.Supplied && mode != core.Computed {
		panic("builder: WithMode(unknown mode)")
	}
	return func(c *builderConfig) {
		c.mode = mode
	}
}

// WithSpacing sets the distance between adjacent generated cities.
// Panics if d <= 0 or is not finite.
func WithSpacing(d float64) BuilderOption {
	if d <= 0 || math.IsInf(d, 0) || math.IsNaN(d) {
		panic("builder: WithSpacing(d<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = d
	}
}
