// SPDX-License-Identifier: MIT
//
// Package search runs any of the route-finding strategies behind one call.
//
// The CLI, the HTTP API and the MCP server all go through Run, so every
// surface reports the same route, the same visit sequence and the same
// metrics for a given request.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/rotas/astar"
	"github.com/katalvlaran/rotas/bfs"
	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/dfs"
	"github.com/katalvlaran/rotas/dijkstra"
	"github.com/katalvlaran/rotas/trail"
)

// Request describes one search.
type Request struct {
	Algorithm   Algorithm
	Origin      *core.Node
	Destination *core.Node

	// Limit is the depth limit for DepthLimited (0 = unbounded) and the
	// ceiling for IterativeDeepening (0 = dfs.DefaultCeiling).
	Limit int

	// Heuristic overrides core.NodeEstimate for the informed strategies.
	Heuristic core.HeuristicFunc

	// Nodes restricts Dijkstra to a subgraph; nil means everything reachable.
	Nodes []*core.Node

	// OnVisit, if set, is called for every visited city after it is recorded.
	OnVisit func(name string, depth int) error
}

// Result is the outcome of Run.
type Result struct {
	Algorithm Algorithm
	Path      *trail.Path // nil when not found
	Visited   []string    // cities in visit order
	Elapsed   time.Duration
}

// Found reports whether a route was returned.
func (r *Result) Found() bool { return r != nil && r.Path != nil }

// Run executes req and records metrics. A not-found search returns the
// Result (with Visited filled) together with an error wrapping
// core.ErrNoPath.
func Run(ctx context.Context, req Request) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	res := &Result{Algorithm: req.Algorithm}
	visit := func(name string, depth int) error {
		res.Visited = append(res.Visited, name)
		if req.OnVisit != nil {
			return req.OnVisit(name, depth)
		}

		return nil
	}

	start := time.Now()
	p, err := dispatch(ctx, req, visit)
	res.Elapsed = time.Since(start)
	res.Path = p
	observe(res, err)

	return res, err
}

func dispatch(ctx context.Context, req Request, visit func(string, int) error) (*trail.Path, error) {
	switch req.Algorithm {
	case BreadthFirst:
		return bfs.BreadthFirst(req.Origin, req.Destination, bfs.WithContext(ctx), bfs.WithOnVisit(visit))
	case Greedy:
		return bfs.GreedyBestFirst(req.Origin, req.Destination,
			bfs.WithContext(ctx), bfs.WithOnVisit(visit), bfs.WithHeuristic(req.Heuristic))
	case NearestFirst:
		return bfs.NearestFirst(req.Origin, req.Destination, bfs.WithContext(ctx), bfs.WithOnVisit(visit))
	case DepthLimited:
		return dfs.DepthLimited(req.Origin, req.Destination, req.Limit, dfs.WithContext(ctx), dfs.WithOnVisit(visit))
	case IterativeDeepening:
		return dfs.IterativeDeepening(req.Origin, req.Destination, req.Limit, dfs.WithContext(ctx), dfs.WithOnVisit(visit))
	case AStar:
		return astar.Search(req.Origin, req.Destination,
			astar.WithContext(ctx), astar.WithOnVisit(visit), astar.WithHeuristic(req.Heuristic))
	case Dijkstra:
		return dijkstra.ShortestPath(req.Origin, req.Destination, req.Nodes,
			dijkstra.WithContext(ctx), dijkstra.WithOnVisit(visit))
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(req.Algorithm))
	}
}

func isNoPath(err error) bool { return errors.Is(err, core.ErrNoPath) }
