// SPDX-License-Identifier: MIT
//
// Package dijkstra defines sentinel errors and configuration options
// for uniform-cost search over a core.Graph.
//
// Options:
//
//	– Ctx:              cancellation, checked once per settled city.
//	– OnVisit:          hook called for every settled city.
//	– MaxDistance:      cap on explored cost; cities beyond it are left out.
//	– InfEdgeThreshold: roads with cost ≥ this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– core.ErrNilNode     if the origin (or ShortestPath destination) is nil.
//	– ErrOriginNotInSet   if a node set is given and the origin is not in it.
//	– core.ErrNoPath      from ShortestPath when the destination is not reached.
//	– ErrBadMaxDistance   panic payload for WithMaxDistance(x < 0).
//	– ErrBadInfThreshold  panic payload for WithInfEdgeThreshold(t ≤ 0).
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrOriginNotInSet indicates that a restricting node set was given
	// but the origin is not one of its members.
	ErrOriginNotInSet = errors.New("dijkstra: origin not in node set")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every road (including zero-cost roads) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – cities whose cheapest cost exceeds this are not settled.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – roads with cost ≥ this threshold are skipped.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Ctx              context.Context
	OnVisit          func(name string, depth int) error
	MaxDistance      float64
	InfEdgeThreshold float64

	target string // ShortestPath stops once this city is settled
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a hook called as each city is settled, with its
// depth in roads along the cheapest route. Returning an error aborts.
func WithOnVisit(fn func(name string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDistance sets a maximum cost threshold.
// Cities whose cheapest cost would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic in Option constructors is acceptable for invalid arguments.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold above which roads are
// considered closed. Roads with cost ≥ threshold are skipped entirely.
// Panics with ErrBadInfThreshold on zero or negative values.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults:
//   - Ctx:              context.Background().
//   - OnVisit:          no-op.
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no road treated as impassable).
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		OnVisit:          func(string, int) error { return nil },
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
