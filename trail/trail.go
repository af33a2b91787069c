// SPDX-License-Identifier: MIT
//
// Package trail records routes discovered by a search as immutable,
// backward-linked segments.
//
// A Path is one node plus a handle to the Path it extends (nil for the
// origin) and the cost accumulated from the origin. Extending never copies:
// many longer paths may share the same prefix, so the set of paths built by
// one search forms a tree rooted at the origin. Nothing mutates a Path after
// construction, which makes paths safe to share across goroutines.
//
// Reconstruction walks backward from the last node and reverses:
//
//	p := trail.New(a).Extend(c, 12).Extend(d, 11)
//	p.Names() // [A C D]
//	p.Cost()  // 23
//	p.String() // "A -> C -> D"
package trail

import (
	"strings"

	"github.com/katalvlaran/rotas/core"
)

// Path is an immutable backward-linked route segment.
type Path struct {
	node *core.Node
	prev *Path
	cost float64
	hops int // edges from origin
}

// Step is one hop of a reconstructed route.
type Step struct {
	Name  string  // node reached
	Delta float64 // cost of the hop (0 for the origin)
	Cost  float64 // accumulated cost at this node
}

// New starts a route at origin with cost 0.
func New(origin *core.Node) *Path {
	return &Path{node: origin}
}

// NewAt starts a route at origin with a caller-chosen seed cost.
func NewAt(origin *core.Node, cost float64) *Path {
	return &Path{node: origin, cost: cost}
}

// Extend returns a new Path reaching n over a road of cost step.
// The receiver is left untouched and becomes the new path's predecessor.
func (p *Path) Extend(n *core.Node, step float64) *Path {
	return &Path{node: n, prev: p, cost: p.cost + step, hops: p.hops + 1}
}

// Node returns the last node of the route.
func (p *Path) Node() *core.Node { return p.node }

// Prev returns the predecessor segment (nil at the origin).
func (p *Path) Prev() *Path { return p.prev }

// Cost returns the accumulated cost from the origin.
func (p *Path) Cost() float64 { return p.cost }

// Len returns the number of roads travelled.
func (p *Path) Len() int { return p.hops }

// Origin returns the first node of the route.
// Complexity: O(Len).
func (p *Path) Origin() *core.Node {
	cur := p
	for cur.prev != nil {
		cur = cur.prev
	}

	return cur.node
}

// Nodes returns the route from origin to destination.
// Complexity: O(Len) time and space.
func (p *Path) Nodes() []*core.Node {
	out := make([]*core.Node, p.hops+1)
	i := p.hops
	for cur := p; cur != nil; cur = cur.prev {
		out[i] = cur.node
		i--
	}

	return out
}

// Names returns the node names from origin to destination.
// Complexity: O(Len) time and space.
func (p *Path) Names() []string {
	out := make([]string, p.hops+1)
	i := p.hops
	for cur := p; cur != nil; cur = cur.prev {
		out[i] = cur.node.Name()
		i--
	}

	return out
}

// Steps returns per-hop deltas and running costs from origin to destination.
// The deltas of a path always sum to Cost minus the seed cost.
// Complexity: O(Len) time and space.
func (p *Path) Steps() []Step {
	out := make([]Step, p.hops+1)
	i := p.hops
	for cur := p; cur != nil; cur = cur.prev {
		s := Step{Name: cur.node.Name(), Cost: cur.cost}
		if cur.prev != nil {
			s.Delta = cur.cost - cur.prev.cost
		}
		out[i] = s
		i--
	}

	return out
}

// Contains reports whether the route passes through the named node.
// Complexity: O(Len).
func (p *Path) Contains(name string) bool {
	for cur := p; cur != nil; cur = cur.prev {
		if cur.node.Name() == name {
			return true
		}
	}

	return false
}

// String renders the route as "A -> C -> D".
func (p *Path) String() string {
	if p == nil {
		return "<no path>"
	}

	return strings.Join(p.Names(), " -> ")
}
