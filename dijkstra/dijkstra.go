// SPDX-License-Identifier: MIT
//
// Package dijkstra implements uniform-cost search over a core.Graph.
//
// Dijkstra computes the cheapest route from a single origin to every other
// reachable city, given non-negative road costs. It settles cities in order
// of increasing cost using a min-heap, relaxing roads as it goes.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each city is settled at most once: V extractions from the heap.
//   - Each road relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the cost and route maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We treat any road with cost ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum cost in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Relaxation requires a strictly lower cost, so among equally cheap routes
//     the first one discovered (in settle order, then connection order) wins.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/pqueue"
	"github.com/katalvlaran/rotas/trail"
)

// Dijkstra computes the cheapest route from origin to every reachable city.
//
// nodes restricts the search to a subgraph: only its members are explored
// and reported. A nil slice means the whole component reachable from
// origin. The origin itself is always in the result with a zero-cost route.
//
// Returns:
//
//   - routes: map from city name to its cheapest trail.Path. Unreachable
//     cities, and cities beyond MaxDistance, are absent.
//   - err:    core.ErrNilNode, ErrOriginNotInSet, the context error, or a
//     wrapped OnVisit error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(origin *core.Node, nodes []*core.Node, opts ...Option) (map[string]*trail.Path, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate origin
	if origin == nil {
		return nil, fmt.Errorf("dijkstra: %w", core.ErrNilNode)
	}

	// 3) Build the membership filter when a node set is given
	var member map[string]bool
	if nodes != nil {
		member = make(map[string]bool, len(nodes))
		for _, n := range nodes {
			if n != nil {
				member[n.Name()] = true
			}
		}
		if !member[origin.Name()] {
			return nil, fmt.Errorf("%w: %q", ErrOriginNotInSet, origin.Name())
		}
	}

	r := &runner{
		options: cfg,
		member:  member,
		dist:    make(map[string]float64, len(nodes)),
		routes:  make(map[string]*trail.Path, len(nodes)),
		settled: make(map[string]bool, len(nodes)),
		pq:      pqueue.New[*core.Node](),
	}

	// 4) Initialize algorithm state and run main loop.
	r.init(origin)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// ShortestPath returns the cheapest route from origin to dest, stopping as
// soon as dest is settled. nodes behaves as in Dijkstra.
//
// Returns core.ErrNoPath when dest is unreachable or beyond MaxDistance.
func ShortestPath(origin, dest *core.Node, nodes []*core.Node, opts ...Option) (*trail.Path, error) {
	if dest == nil {
		return nil, fmt.Errorf("dijkstra: %w", core.ErrNilNode)
	}
	opts = append(opts, func(o *Options) { o.target = dest.Name() })

	routes, err := Dijkstra(origin, nodes, opts...)
	if err != nil {
		return nil, err
	}
	p, ok := routes[dest.Name()]
	if !ok {
		return nil, fmt.Errorf("dijkstra: %w: %q unreachable", core.ErrNoPath, dest.Name())
	}

	return p, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	options Options
	member  map[string]bool        // nil: every city is allowed
	dist    map[string]float64     // best-known cost from origin, by name
	routes  map[string]*trail.Path // route realising dist
	settled map[string]bool        // cost is final
	pq      *pqueue.Queue[*core.Node]
}

// init seeds the origin with cost 0.
func (r *runner) init(origin *core.Node) {
	name := origin.Name()
	r.dist[name] = 0
	r.routes[name] = trail.New(origin)
	r.pq.Push(0, origin)
}

// process settles cities in ascending cost until the heap empties, the
// next cost exceeds MaxDistance, or the ShortestPath target is settled.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		// cancellation check (once per settled city)
		select {
		case <-cfg.Ctx.Done():
			return cfg.Ctx.Err()
		default:
		}

		// 1) Pop the cheapest entry; skip stale ones.
		item, _ := r.pq.Pop()
		u := item.Value
		name := u.Name()
		if r.settled[name] {
			continue
		}

		// 2) Beyond MaxDistance every remaining entry is too.
		if item.Priority > cfg.MaxDistance {
			break
		}

		// 3) Settle u.
		r.settled[name] = true
		if err := cfg.OnVisit(name, r.routes[name].Len()); err != nil {
			return fmt.Errorf("dijkstra: OnVisit error at %q: %w", name, err)
		}
		if name == cfg.target {
			return nil
		}

		// 4) Relax every road out of u.
		r.relax(u)
	}

	return nil
}

// relax attempts to improve the cost of each neighbour of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u *core.Node) {
	du := r.dist[u.Name()]
	from := r.routes[u.Name()]
	for _, nb := range u.NeighborsWithCost() {
		v := nb.Node.Name()
		if r.member != nil && !r.member[v] {
			continue
		}
		if r.settled[v] || nb.Cost >= r.options.InfEdgeThreshold {
			continue
		}

		nd := du + nb.Cost
		if nd > r.options.MaxDistance {
			continue
		}
		if old, seen := r.dist[v]; seen && nd >= old {
			continue
		}

		r.dist[v] = nd
		r.routes[v] = from.Extend(nb.Node, nb.Cost)
		r.pq.Push(nd, nb.Node)
	}
}

// result keeps only settled cities; a city relaxed but never settled
// (early stop or MaxDistance) has no final route.
func (r *runner) result() map[string]*trail.Path {
	out := make(map[string]*trail.Path, len(r.settled))
	for name := range r.settled {
		out[name] = r.routes[name]
	}

	return out
}
