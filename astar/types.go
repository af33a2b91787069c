// SPDX-License-Identifier: MIT
package astar

import (
	"context"

	"github.com/katalvlaran/rotas/core"
)

// Option configures Search.
type Option func(*Options)

// Options holds the knobs of Search.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// OnVisit is called for every expanded node and for the destination.
	// Receives the node name and its depth in roads. An error aborts.
	OnVisit func(name string, depth int) error

	// Heuristic estimates the remaining cost to the destination.
	Heuristic core.HeuristicFunc
}

// DefaultOptions returns background context, no hook and core.NodeEstimate.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnVisit:   func(string, int) error { return nil },
		Heuristic: core.NodeEstimate,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the visit hook.
func WithOnVisit(fn func(name string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithHeuristic replaces the estimate used in priorities.
func WithHeuristic(h core.HeuristicFunc) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
