// SPDX-License-Identifier: MIT
//
// Package bfs provides the queue-driven searches over a core.Graph:
// breadth-first, greedy best-first and nearest-first.
//
// All three share one walker; they differ only in the order a node's
// neighbours are enqueued.
package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/trail"
)

// orderFunc returns cur's neighbours in the order they should be enqueued.
type orderFunc func(cur, dest *core.Node, o *BFSOptions) []core.Neighbor

// walker encapsulates mutable search state.
type walker struct {
	algo    string
	opts    BFSOptions
	ctx     context.Context
	dest    *core.Node
	order   orderFunc
	queue   []*trail.Path
	visited map[string]bool
}

// BreadthFirst finds the route from origin to dest with the fewest roads.
// Neighbours are enqueued in connection order, which is also the tie-break
// among routes of equal length. Road costs do not influence the result but
// are accumulated on the returned Path.
//
// Returns core.ErrNilNode for nil endpoints, ErrOptionViolation for bad
// options, core.ErrNoPath when dest is unreachable, the context error on
// cancellation, or any OnVisit error.
//
// Complexity: O(V + E) time, O(V) space.
func BreadthFirst(origin, dest *core.Node, opts ...Option) (*trail.Path, error) {
	return run("bfs", origin, dest, byConnection, opts)
}

// GreedyBestFirst is BreadthFirst with each node's neighbours enqueued in
// ascending heuristic estimate toward dest (stable, so ties keep connection
// order). The frontier itself is never re-ranked, so the result is neither
// cost-optimal nor guaranteed shortest in roads.
//
// Complexity: O(V + E·log d) time, O(V) space.
func GreedyBestFirst(origin, dest *core.Node, opts ...Option) (*trail.Path, error) {
	return run("greedy", origin, dest, byEstimate, opts)
}

// NearestFirst is BreadthFirst with each node's neighbours enqueued in
// ascending straight-line distance from that node. It ignores the
// destination entirely when ordering.
//
// Complexity: O(V + E·log d) time, O(V) space.
func NearestFirst(origin, dest *core.Node, opts ...Option) (*trail.Path, error) {
	return run("nearest", origin, dest, byDistance, opts)
}

func run(algo string, origin, dest *core.Node, order orderFunc, opts []Option) (*trail.Path, error) {
	if origin == nil || dest == nil {
		return nil, fmt.Errorf("%s: %w", algo, core.ErrNilNode)
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		algo:    algo,
		opts:    o,
		ctx:     o.Ctx,
		dest:    dest,
		order:   order,
		queue:   []*trail.Path{trail.New(origin)},
		visited: map[string]bool{origin.Name(): true},
	}

	return w.loop()
}

// loop processes the queue until the destination is dequeued, the queue
// empties, an error occurs, or the context is cancelled.
func (w *walker) loop() (*trail.Path, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.opts.OnVisit(cur.Node().Name(), cur.Len()); err != nil {
			return nil, fmt.Errorf("%s: OnVisit error at %q: %w", w.algo, cur.Node().Name(), err)
		}
		if cur.Node().Name() == w.dest.Name() {
			return cur, nil
		}
		w.enqueueNeighbors(cur)
	}

	return nil, fmt.Errorf("%s: %w: %q unreachable", w.algo, core.ErrNoPath, w.dest.Name())
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues every
// unseen neighbour, marking it visited immediately.
func (w *walker) enqueueNeighbors(cur *trail.Path) {
	next := cur.Len() + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}

	from := cur.Node()
	for _, nb := range w.order(from, w.dest, &w.opts) {
		name := nb.Node.Name()
		if w.visited[name] || !w.opts.FilterNeighbor(from.Name(), name) {
			continue
		}
		w.visited[name] = true
		w.queue = append(w.queue, cur.Extend(nb.Node, nb.Cost))
	}
}

func byConnection(cur, _ *core.Node, _ *BFSOptions) []core.Neighbor {
	return cur.NeighborsWithCost()
}

func byEstimate(cur, dest *core.Node, o *BFSOptions) []core.Neighbor {
	return sortedBy(cur.NeighborsWithCost(), func(nb core.Neighbor) float64 {
		return o.Heuristic(nb.Node, dest)
	})
}

func byDistance(cur, _ *core.Node, _ *BFSOptions) []core.Neighbor {
	from := cur.Point()
	return sortedBy(cur.NeighborsWithCost(), func(nb core.Neighbor) float64 {
		return core.Euclidean(from, nb.Node.Point())
	})
}

// sortedBy stably sorts nbs by key, evaluating key once per neighbour.
func sortedBy(nbs []core.Neighbor, key func(core.Neighbor) float64) []core.Neighbor {
	type keyed struct {
		nb  core.Neighbor
		key float64
	}
	ks := make([]keyed, len(nbs))
	for i, nb := range nbs {
		ks[i] = keyed{nb: nb, key: key(nb)}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	for i := range ks {
		nbs[i] = ks[i].nb
	}

	return nbs
}
