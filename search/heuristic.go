// SPDX-License-Identifier: MIT
//
// File: heuristic.go
// Role: Named heuristics selectable from the CLI, the HTTP API and MCP.

package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/rotas/core"
)

// ErrUnknownHeuristic is returned by ParseHeuristic for an unrecognised name.
var ErrUnknownHeuristic = errors.New("search: unknown heuristic")

// Heuristic names.
const (
	HeuristicEstimate  = "estimate"
	HeuristicManhattan = "manhattan"
	HeuristicEuclidean = "euclidean"
	HeuristicZero      = "zero"
)

var heuristics = map[string]core.HeuristicFunc{
	HeuristicEstimate: core.NodeEstimate,
	HeuristicManhattan: func(n, dest *core.Node) float64 {
		return core.Manhattan(n.Point(), dest.Point())
	},
	HeuristicEuclidean: func(n, dest *core.Node) float64 {
		return core.Euclidean(n.Point(), dest.Point())
	},
	HeuristicZero: core.Zero,
}

// ParseHeuristic resolves a heuristic by name, case-insensitively.
// The empty string selects HeuristicEstimate, each city's own estimate.
func ParseHeuristic(name string) (core.HeuristicFunc, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = HeuristicEstimate
	}
	if h, ok := heuristics[key]; ok {
		return h, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// HeuristicNames lists the accepted names in sorted order.
func HeuristicNames() []string {
	out := make([]string, 0, len(heuristics))
	for k := range heuristics {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
