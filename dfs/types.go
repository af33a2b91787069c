// SPDX-License-Identifier: MIT
//
// Package dfs defines types and options for depth-limited search and
// iterative deepening, including cancellation, visit and deepen hooks,
// and neighbour filtering.
package dfs

import (
	"context"
	"errors"
)

// DefaultCeiling is the deepest limit IterativeDeepening tries when the
// caller passes a ceiling of 0.
const DefaultCeiling = 100

var (
	// ErrOptionViolation is returned for a negative limit or ceiling.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of the depth-first searches.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the depth-first searches.
// Complexity remains O(V+E) per limit when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked for each node the search expands and
	// for the destination when it is reached. Receives the node name and its
	// level (the origin is level 1). Returning an error aborts the search.
	OnVisit func(name string, level int) error

	// OnDeepen, if non-nil, is invoked by IterativeDeepening before each
	// depth-limited pass with the limit about to be tried.
	OnDeepen func(limit int)

	// FilterNeighbor, if non-nil, is called for each road curr→neighbor.
	// Return true to descend into that neighbour, false to skip it.
	FilterNeighbor func(curr, neighbor string) bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No hooks
//   - No neighbour filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		OnVisit:        nil,
		OnDeepen:       nil,
		FilterNeighbor: nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(name string, level int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnDeepen returns an Option that reports each limit IterativeDeepening tries.
func WithOnDeepen(fn func(limit int)) Option {
	return func(o *DFSOptions) {
		o.OnDeepen = fn
	}
}

// WithFilterNeighbor returns an Option that filters roads.
// If fn(curr, neighbor) == false, that neighbour is skipped.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}
