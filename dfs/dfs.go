// SPDX-License-Identifier: MIT
//
// Package dfs implements depth-limited search and iterative deepening
// between two cities of a core.Graph.
//
// Key features:
//   - DepthLimited(origin, dest, limit, opts...): depth-first descent in
//     connection order, bounded by limit (0 = unbounded)
//   - IterativeDeepening(origin, dest, ceiling, opts...): limits 1..ceiling
//   - Hooks: OnVisit on expansion, OnDeepen per limit
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) per limit; IterativeDeepening repeats it up to ceiling times.
//   - Memory: O(V + E) for the frame stack and the visited set.
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/trail"
)

// dfsWalker encapsulates state for one depth-limited pass.
type dfsWalker struct {
	opts    DFSOptions
	dest    string
	limit   int
	visited map[string]bool
	stack   []*trail.Path // frames; each is the route to the node it checks
	cutoff  bool          // a frame was rejected by the limit
}

// DepthLimited performs a depth-first search from origin toward dest,
// exploring each node's roads in connection order and returning the first
// route found. Nodes deeper than limit are not expanded (the origin is at
// level 1); a limit of 0 removes the bound.
//
// Each frame is checked in order: destination, already visited, level at
// the limit. Once a node is visited it is never expanded again, even if a
// shorter route to it exists.
//
// Returns core.ErrNilNode, ErrOptionViolation for a negative limit,
// core.ErrNoPath when no route fits the limit, the context error, or a
// wrapped OnVisit error.
func DepthLimited(origin, dest *core.Node, limit int, opts ...Option) (*trail.Path, error) {
	if origin == nil || dest == nil {
		return nil, fmt.Errorf("dfs: %w", core.ErrNilNode)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit cannot be negative (%d)", ErrOptionViolation, limit)
	}
	dopts := applyOptions(opts)

	p, _, err := search(origin, dest, limit, dopts)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("dfs: %w: %q not within limit %d", core.ErrNoPath, dest.Name(), limit)
	}

	return p, nil
}

// IterativeDeepening runs DepthLimited with limits 1, 2, … ceiling and
// returns the first route found. A ceiling of 0 means DefaultCeiling.
// The loop also stops once a pass completes without the limit ever cutting
// a branch, since deeper passes cannot reach anything new.
//
// On graphs where the visited set hides a shorter branch, the route is not
// guaranteed to have the fewest roads; it never has more than any route
// found at a larger limit.
func IterativeDeepening(origin, dest *core.Node, ceiling int, opts ...Option) (*trail.Path, error) {
	if origin == nil || dest == nil {
		return nil, fmt.Errorf("dfs: %w", core.ErrNilNode)
	}
	if ceiling < 0 {
		return nil, fmt.Errorf("%w: ceiling cannot be negative (%d)", ErrOptionViolation, ceiling)
	}
	if ceiling == 0 {
		ceiling = DefaultCeiling
	}
	dopts := applyOptions(opts)

	for limit := 1; limit <= ceiling; limit++ {
		if dopts.OnDeepen != nil {
			dopts.OnDeepen(limit)
		}
		p, cutoff, err := search(origin, dest, limit, dopts)
		if err != nil {
			return nil, err
		}
		if p != nil {
			return p, nil
		}
		if !cutoff {
			break
		}
	}

	return nil, fmt.Errorf("dfs: %w: %q not within ceiling %d", core.ErrNoPath, dest.Name(), ceiling)
}

func applyOptions(opts []Option) DFSOptions {
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.Ctx == nil {
		dopts.Ctx = context.Background()
	}

	return dopts
}

// search runs one depth-limited pass. It returns the route (nil when not
// found) and whether the limit rejected any frame.
func search(origin, dest *core.Node, limit int, opts DFSOptions) (*trail.Path, bool, error) {
	w := &dfsWalker{
		opts:    opts,
		dest:    dest.Name(),
		limit:   limit,
		visited: make(map[string]bool),
		stack:   []*trail.Path{trail.New(origin)},
	}
	p, err := w.run()

	return p, w.cutoff, err
}

// run pops frames until the destination is found or the stack empties.
// Children are pushed in reverse so the first road is explored first,
// matching a recursive descent.
func (w *dfsWalker) run() (*trail.Path, error) {
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		top := len(w.stack) - 1
		cur := w.stack[top]
		w.stack = w.stack[:top]

		node := cur.Node()
		name := node.Name()
		level := cur.Len() + 1

		// 2. Destination, visited, limit
		if name == w.dest {
			if err := w.visit(name, level); err != nil {
				return nil, err
			}

			return cur, nil
		}
		if w.visited[name] {
			continue
		}
		if w.limit != 0 && level >= w.limit {
			w.cutoff = true
			continue
		}

		// 3. Expand
		w.visited[name] = true
		if err := w.visit(name, level); err != nil {
			return nil, err
		}
		nbs := node.NeighborsWithCost()
		for i := len(nbs) - 1; i >= 0; i-- {
			nb := nbs[i]
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(name, nb.Node.Name()) {
				continue
			}
			w.stack = append(w.stack, cur.Extend(nb.Node, nb.Cost))
		}
	}

	return nil, nil
}

func (w *dfsWalker) visit(name string, level int) error {
	if w.opts.OnVisit == nil {
		return nil
	}
	if err := w.opts.OnVisit(name, level); err != nil {
		return fmt.Errorf("dfs: OnVisit hook for %q: %w", name, err)
	}

	return nil
}
