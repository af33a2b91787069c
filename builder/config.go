// SPDX-License-Identifier: MIT
// Package: rotas/builder
//
// config.go - internal configuration carried into every Constructor.
//
// builderConfig is private. Callers mutate it only through BuilderOption
// values, and BuildMap resolves it once before running the constructors.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/rotas/core"
)

// builderConfig holds the knobs shared by the generated maps.
type builderConfig struct {
	// idFn names the i-th city of Chain and RandomSparse.
	idFn IDFn

	// rng drives RandomSparse coordinates and any stochastic CostFn.
	// nil means "no randomness available".
	rng *rand.Rand

	// costFn prices each generated road from its endpoints.
	costFn CostFn

	// mode is the heuristic mode given to generated cities.
	mode core.HeuristicMode

	// spacing is the distance between adjacent Grid/Chain cities and the
	// scale of the RandomSparse plane.
	spacing float64
}

// newBuilderConfig applies opts over the defaults:
// decimal IDs, no RNG, Manhattan road costs, Computed mode, spacing 10.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		rng:     nil,
		costFn:  ManhattanCostFn,
		mode:    core.Computed,
		spacing: DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
