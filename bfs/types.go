// SPDX-License-Identifier: MIT
//
// Package bfs provides tunable options and error definitions
// for the queue-driven searches over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rotas/core"
)

// Sentinel errors for queue-driven searches.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize a search.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is taken off the queue, destination
	// included. Receives the node name and its depth (edges from origin).
	// If it returns an error, the search aborts and propagates that error.
	OnVisit func(name string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip roads by returning false.
	// Called for each road curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// Heuristic ranks neighbours for GreedyBestFirst.
	Heuristic core.HeuristicFunc

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbours allowed)
//   - no-op OnVisit
//   - core.NodeEstimate as the heuristic.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
		Heuristic:      core.NodeEstimate,
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(name string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbours when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithHeuristic replaces the estimate GreedyBestFirst ranks neighbours by.
// The other searches ignore it.
func WithHeuristic(h core.HeuristicFunc) Option {
	return func(o *BFSOptions) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
