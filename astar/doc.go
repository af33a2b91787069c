// SPDX-License-Identifier: MIT
//
// Package astar finds a route between two cities by combining the cost
// already travelled with a heuristic estimate of the cost remaining.
//
// The search descends depth-first like dfs.DepthLimited, but instead of
// following roads in connection order it ranks a node's neighbours by
//
//	best[n] + h(n, destination)
//
// where best is the cheapest known cost from the origin, shared across the
// whole search, and h defaults to core.Node.Estimate. The first route that
// reaches the destination wins.
//
// Optimality holds when h never overestimates and no cheaper route to an
// already visited node appears later; visited nodes are not re-opened.
// Use dijkstra when a guaranteed cheapest route is required.
//
// Usage:
//
//	p, err := astar.Search(a, d, astar.WithOnVisit(func(name string, _ int) error {
//	    fmt.Println("visiting", name)
//	    return nil
//	}))
package astar
