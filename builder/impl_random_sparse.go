// SPDX-License-Identifier: MIT
// Package: rotas/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - n cities scattered at integer coordinates in [0, n*spacing)².
//   - Each unordered pair {i,j}, i<j, gets a road independently with
//     probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource); coordinates are
//     always drawn, even for p ∈ {0,1}.
//   - Cities are named cfg.idFn(0..n-1).
//   - Road cost: cfg.costFn(cfg.rng, from, to), drawn right after the
//     pair's Bernoulli trial succeeds.
//
// Complexity:
//   - Time: O(n²) trials.
//   - Space: O(n) for the city index.
//
// Determinism:
//   - Draw order is fixed: x then y for each city in index order, then
//     trials for i asc, j asc. A fixed seed yields the same map.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rotas/core"
)

// RandomSparse returns a Constructor that samples a random road map over
// n cities with independent road probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinSparseNodes, ErrTooFewVertices)
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		rng := cfg.rng
		extent := float64(n) * cfg.spacing
		cities := make([]*core.Node, n)
		for i := 0; i < n; i++ {
			x := math.Floor(rng.Float64() * extent)
			y := math.Floor(rng.Float64() * extent)
			id := cfg.idFn(i)
			c, err := g.AddNode(id, core.WithPoint(x, y), core.WithMode(cfg.mode))
			if err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w: %w", MethodRandomSparse, id, ErrConstructFailed, err)
			}
			cities[i] = c
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// strict < keeps p == 0 edgeless and p == 1 complete
				if rng.Float64() >= p {
					continue
				}
				if err := connect(MethodRandomSparse, g, cfg, cities[i], cities[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
