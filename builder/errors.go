// SPDX-License-Identifier: MIT
// Package: rotas/builder
//
// errors.go - sentinel errors returned by constructors.

package builder

import "errors"

// ErrTooFewVertices is returned when a size parameter is below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability is returned when a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource is returned when a stochastic constructor runs without
// an RNG (see WithSeed, WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed wraps failures reported by the core graph while a
// constructor populates it, and nil constructors passed to BuildMap.
var ErrConstructFailed = errors.New("builder: construction failed")
