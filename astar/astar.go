// SPDX-License-Identifier: MIT
//
// File: astar.go
// Role: Cost-plus-estimate depth-first expansion between two cities.
// Determinism:
//   - Neighbours with equal priority pop in connection order.
// Policy:
//   - A visited node is never re-opened.

package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/pqueue"
	"github.com/katalvlaran/rotas/trail"
)

// frame is one level of the expansion stack.
// queue stays nil until the frame's node has been entered.
type frame struct {
	path  *trail.Path
	queue *pqueue.Queue[core.Neighbor]
}

// runner holds the state shared by every frame of one search.
type runner struct {
	opts    Options
	dest    *core.Node
	best    map[string]float64 // best-known cost from origin, by name
	visited map[string]bool
	stack   []*frame
}

// Search finds a route from origin to dest.
//
// Entering a node lowers the best-known cost of each neighbour reachable
// through it, then ranks the neighbours by best-known cost plus heuristic
// estimate and descends into them in that order, returning the first
// route that reaches dest. The best-known map is shared by the whole
// search, so a cheaper route found later lowers a neighbour's priority even
// if it was ranked earlier.
//
// The returned Path carries the true cost of the roads it follows. With an
// inadmissible heuristic, or when a cheaper route to an already visited
// node turns up later, the result may not be the cheapest route.
//
// Returns core.ErrNilNode, core.ErrNoPath, the context error, or a wrapped
// OnVisit error.
//
// Complexity: O(E·log d) time, O(V + E) space.
func Search(origin, dest *core.Node, opts ...Option) (*trail.Path, error) {
	if origin == nil || dest == nil {
		return nil, fmt.Errorf("astar: %w", core.ErrNilNode)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &runner{
		opts:    o,
		dest:    dest,
		best:    map[string]float64{origin.Name(): 0},
		visited: make(map[string]bool),
		stack:   []*frame{{path: trail.New(origin)}},
	}

	return r.run()
}

func (r *runner) run() (*trail.Path, error) {
	for len(r.stack) > 0 {
		f := r.stack[len(r.stack)-1]

		if f.queue == nil {
			// cancellation check (once per expansion)
			select {
			case <-r.opts.Ctx.Done():
				return nil, r.opts.Ctx.Err()
			default:
			}

			done, err := r.enter(f)
			if err != nil {
				return nil, err
			}
			if done {
				return f.path, nil
			}
			if f.queue == nil {
				r.stack = r.stack[:len(r.stack)-1]
				continue
			}
		}

		item, ok := f.queue.Pop()
		if !ok {
			r.stack = r.stack[:len(r.stack)-1]
			continue
		}
		nb := item.Value
		if r.visited[nb.Node.Name()] {
			continue
		}
		r.stack = append(r.stack, &frame{path: f.path.Extend(nb.Node, nb.Cost)})
	}

	return nil, fmt.Errorf("astar: %w: %q unreachable", core.ErrNoPath, r.dest.Name())
}

// enter processes a frame the first time it reaches the top of the stack.
// It reports done when the frame is the destination; otherwise, for an
// unvisited node, it relaxes the neighbours and builds the frame's queue.
func (r *runner) enter(f *frame) (bool, error) {
	node := f.path.Node()
	name := node.Name()

	if name == r.dest.Name() {
		return true, r.visit(name, f.path.Len())
	}
	if r.visited[name] {
		return false, nil
	}
	r.visited[name] = true
	if err := r.visit(name, f.path.Len()); err != nil {
		return false, err
	}

	nbs := node.NeighborsWithCost()
	here := r.costTo(name)
	for _, nb := range nbs {
		if c := here + nb.Cost; c < r.costTo(nb.Node.Name()) {
			r.best[nb.Node.Name()] = c
		}
	}

	items := make([]pqueue.Item[core.Neighbor], len(nbs))
	for i, nb := range nbs {
		items[i] = pqueue.Item[core.Neighbor]{
			Priority: r.best[nb.Node.Name()] + r.opts.Heuristic(nb.Node, r.dest),
			Value:    nb,
		}
	}
	f.queue = pqueue.New(items...)

	return false, nil
}

func (r *runner) costTo(name string) float64 {
	if c, ok := r.best[name]; ok {
		return c
	}

	return math.Inf(1)
}

func (r *runner) visit(name string, depth int) error {
	if err := r.opts.OnVisit(name, depth); err != nil {
		return fmt.Errorf("astar: OnVisit error at %q: %w", name, err)
	}

	return nil
}
