// SPDX-License-Identifier: MIT
//
// Package dijkstra finds the cheapest route from one city to every other
// city of a road map with non-negative costs.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost route from an origin to all
//     reachable cities in O((V + E) log V) time.
//   - It relies on a min-heap (pqueue) to always settle the next-cheapest city.
//   - Each route is returned as a trail.Path, so callers get the node
//     sequence and the per-road costs, not just a distance.
//   - ShortestPath is the single-destination form; it stops as soon as the
//     destination is settled.
//
// When to use:
//
//   - Whenever the cheapest route is required. The other searches in this
//     module trade that guarantee for less bookkeeping or domain knowledge.
//   - To build a full cost table from one city (the /v1/routes/all endpoint).
//
// Key features:
//
//   - A node set restricts the search to a subgraph (nil = everything reachable).
//   - MaxDistance: stops exploration beyond a given cost, saving work on large maps.
//   - InfEdgeThreshold: treats any road with cost ≥ threshold as closed.
//
// Determinism:
//
//	The heap breaks equal costs by insertion order and relaxation requires a
//	strictly lower cost, so equally cheap routes resolve to the one discovered
//	first. On the four-city square map the route to D is A -> C -> D (23).
//
// Error handling (sentinel errors):
//
//   - core.ErrNilNode:      nil origin or destination.
//   - ErrOriginNotInSet:    a node set was given without the origin in it.
//   - core.ErrNoPath:       ShortestPath could not reach the destination.
//   - ErrBadMaxDistance:    panic payload for a negative MaxDistance.
//   - ErrBadInfThreshold:   panic payload for a non-positive InfEdgeThreshold.
//
// Example:
//
//	routes, err := dijkstra.Dijkstra(a, nil)
//	if err != nil {
//	    return err
//	}
//	for _, name := range g.Names() {
//	    if p, ok := routes[name]; ok {
//	        fmt.Printf("%s: %s (%g)\n", name, p, p.Cost())
//	    }
//	}
package dijkstra
