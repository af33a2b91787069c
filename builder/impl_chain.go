// SPDX-License-Identifier: MIT
// Package: rotas/builder
//
// impl_chain.go - implementation of Chain(n) constructor.
//
// Contract:
//   - n ≥ MinChainNodes (else ErrTooFewVertices).
//   - Cities cfg.idFn(0..n-1) at (i*spacing, 0), joined 0-1, 1-2, ...
//   - Road cost: cfg.costFn(cfg.rng, from, to).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rotas/core"
)

// Chain returns a Constructor that lays n cities along a single road.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodChain, n, MinChainNodes); err != nil {
			return err
		}

		var prev *core.Node
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			cur, err := g.AddNode(id,
				core.WithPoint(float64(i)*cfg.spacing, 0),
				core.WithMode(cfg.mode),
			)
			if err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w: %w", MethodChain, id, ErrConstructFailed, err)
			}
			if prev != nil {
				if err = connect(MethodChain, g, cfg, prev, cur); err != nil {
					return err
				}
			}
			prev = cur
		}

		return nil
	}
}
