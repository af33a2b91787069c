// SPDX-License-Identifier: MIT
// Package: rotas/builder
//
// api.go - public entry point.
//
// BuildMap creates a fresh core.Graph, resolves the builder options once,
// and runs each Constructor on it in argument order. Constructors may be
// combined; cities with the same name are shared (core.AddNode is
// idempotent), so e.g. Square() followed by Chain(3) adds cities "0".."2"
// beside A..D.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rotas/core"
)

// Constructor populates g using cfg. It validates its own parameters
// before touching g and returns wrapped sentinel errors, never panics.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildMap builds a new map from the given constructors.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or a core failure.
//   - Whatever sentinel the failing constructor returns, prefixed with
//     "BuildMap: ".
//
// Complexity: the sum of the constructors' costs.
func BuildMap(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMap: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildMap: %w", err)
		}
	}

	return g, nil
}
