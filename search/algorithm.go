// SPDX-License-Identifier: MIT
//
// File: algorithm.go
// Role: Names, aliases and parsing of the route-finding strategies.

package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by Parse for an unrecognised name.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Algorithm identifies one route-finding strategy.
type Algorithm int

// Strategies in presentation order.
const (
	BreadthFirst Algorithm = iota
	DepthLimited
	IterativeDeepening
	Greedy
	NearestFirst
	AStar
	Dijkstra
)

var names = [...]string{
	BreadthFirst:       "breadth-first",
	DepthLimited:       "depth-limited",
	IterativeDeepening: "iterative-deepening",
	Greedy:             "greedy",
	NearestFirst:       "nearest-first",
	AStar:              "astar",
	Dijkstra:           "dijkstra",
}

var aliases = map[string]Algorithm{
	"bfs":  BreadthFirst,
	"dls":  DepthLimited,
	"dfs":  DepthLimited,
	"ids":  IterativeDeepening,
	"gbfs": Greedy,
	"a*":   AStar,
	"ucs":  Dijkstra,
}

// All lists every strategy in presentation order.
func All() []Algorithm {
	out := make([]Algorithm, len(names))
	for i := range names {
		out[i] = Algorithm(i)
	}

	return out
}

// String returns the canonical name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(names) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return names[a]
}

// Informed reports whether the strategy consults a heuristic.
func (a Algorithm) Informed() bool { return a == Greedy || a == AStar }

// MarshalText encodes the canonical name.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(names) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(names[a]), nil
}

// UnmarshalText accepts anything Parse accepts.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// Parse resolves a canonical name or alias, case-insensitively.
func Parse(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == key {
			return Algorithm(i), nil
		}
	}
	if a, ok := aliases[key]; ok {
		return a, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}
