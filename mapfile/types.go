// SPDX-License-Identifier: MIT
package mapfile

import (
	"errors"

	"github.com/katalvlaran/rotas/core"
)

// Record keywords.
const (
	KeywordCity     = "cidade"
	KeywordRoad     = "estrada"
	KeywordEstimate = "estimativa"
)

// Sentinel errors. Parse errors are wrapped with the line number.
var (
	// ErrUnknownCity is returned when a record names an undeclared city.
	ErrUnknownCity = errors.New("mapfile: unknown city")

	// ErrMalformedRecord is returned when a record lacks required tokens.
	ErrMalformedRecord = errors.New("mapfile: malformed record")

	// ErrNoDestination is returned by Map.Destination when no estimate of 0
	// was recorded.
	ErrNoDestination = errors.New("mapfile: no destination (no estimate of 0)")
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	mode core.HeuristicMode
}

// WithMode sets the heuristic mode of every declared city (default
// core.Supplied). Estimate records are stored either way.
func WithMode(mode core.HeuristicMode) Option {
	return func(o *loadOptions) { o.mode = mode }
}
