// SPDX-License-Identifier: MIT
//
// Package bfs provides the queue-driven route searches over a core.Graph:
// BreadthFirst, GreedyBestFirst and NearestFirst.
//
// What
//
//   - Explore nodes from a FIFO queue seeded with the origin.
//   - A node is marked visited when it is enqueued, so it is queued once.
//   - The search stops when the destination is taken off the queue and
//     returns its trail.Path, which carries the true accumulated road cost.
//   - The three searches differ only in the order each node's neighbours
//     are enqueued:
//   - BreadthFirst:    connection order.
//   - GreedyBestFirst: ascending heuristic estimate toward the destination.
//   - NearestFirst:    ascending straight-line distance from the node.
//
// Determinism
//
//	Neighbour orderings use a stable sort over connection order, so equal
//	keys keep the order in which roads were added. Repeated runs on the same
//	graph produce the same route and the same visit sequence.
//
// Guarantees
//
//	BreadthFirst returns a route with the fewest roads. None of the three
//	guarantee the cheapest route; use astar or dijkstra for that.
//	GreedyBestFirst only orders each node's own neighbours; the frontier is
//	never globally re-ranked.
//
// Complexity (V = |Nodes|, E = |Roads|, d = max degree)
//
//   - Time:   O(V + E) for BreadthFirst, O(V + E·log d) for the sorted variants.
//   - Memory: O(V) for the queue, the visited set and the shared path tree.
//
// Usage
//
//	p, err := bfs.BreadthFirst(a, d)
//	if errors.Is(err, core.ErrNoPath) {
//	    // unreachable
//	}
//
//	p, err = bfs.GreedyBestFirst(
//	    a, d,
//	    bfs.WithContext(ctx),
//	    bfs.WithHeuristic(func(n, dest *core.Node) float64 {
//	        return core.Euclidean(n.Point(), dest.Point())
//	    }),
//	    bfs.WithOnVisit(func(name string, depth int) error {
//	        fmt.Println("visiting", name)
//	        return nil
//	    }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithOnVisit(fn):             hook on dequeue; returning error aborts the search.
//   - WithMaxDepth(d):             never enqueue beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip roads for which fn(curr,neighbor)==false.
//   - WithHeuristic(h):            estimate used by GreedyBestFirst.
//
// Errors
//
//   - core.ErrNilNode         if origin or destination is nil.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - core.ErrNoPath          if the destination is unreachable.
//   - ctx.Err()               on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
