// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Road lifecycle & queries: Connect/AddEdge/Edges and Edge helpers.
// Determinism:
//   - Edges() returns roads in insertion order.
//   - Each endpoint sees the road appended at the end of its incident list.
// Concurrency:
//   - Catalogue updates under Graph.mu; incident lists under each Node.mu.

package core

import (
	"fmt"
	"math"
	"strconv"
)

// Connect creates an undirected road between a and b with the given cost
// and registers it on both endpoints.
//
// Steps:
//  1. Validate nodes (nil, ownership) and cost (negative, NaN), reject loops.
//  2. Build the Edge and apply opts.
//  3. Append to the graph catalogue under mu.
//  4. a.connect(e), b.connect(e).
//
// Parallel roads between the same pair are permitted and kept in order.
//
// Complexity: O(1) amortized.
func (g *Graph) Connect(a, b *Node, cost float64, opts ...EdgeOption) (*Edge, error) {
	if a == nil || b == nil {
		return nil, ErrNilNode
	}
	if a.graph != g || b.graph != g {
		return nil, fmt.Errorf("%w: %s <-> %s", ErrForeignNode, a.name, b.name)
	}
	if cost < 0 || math.IsNaN(cost) {
		return nil, fmt.Errorf("%w: %s <-> %s cost=%g", ErrNegativeCost, a.name, b.name, cost)
	}
	if a.name == b.name {
		return nil, fmt.Errorf("%w: %s", ErrSelfLoop, a.name)
	}

	e := &Edge{a: a, b: b, cost: cost}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}

	g.mu.Lock()
	g.edges = append(g.edges, e)
	g.mu.Unlock()

	a.connect(e)
	b.connect(e)

	return e, nil
}

// AddEdge is the name-based form of Connect.
//
// Errors:
//   - ErrEmptyName / ErrNodeNotFound from the lookups.
//   - Everything Connect returns.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, cost float64, opts ...EdgeOption) (*Edge, error) {
	na, err := g.Node(a)
	if err != nil {
		return nil, err
	}
	nb, err := g.Node(b)
	if err != nil {
		return nil, err
	}

	return g.Connect(na, nb, cost, opts...)
}

// Edges returns all roads in insertion order.
//
// Complexity: O(E) time and space.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Other returns the endpoint across the road from n ("the neighbour across
// this edge"). It returns nil when n is not an endpoint.
// Endpoints are compared by name.
func (e *Edge) Other(n *Node) *Node {
	if n == nil {
		return nil
	}
	switch n.name {
	case e.a.name:
		return e.b
	case e.b.name:
		return e.a
	default:
		return nil
	}
}

// String renders "a <-> b (label): cost".
func (e *Edge) String() string {
	label := ""
	if e.label != "" {
		label = " (" + e.label + ")"
	}

	return e.a.name + " <-> " + e.b.name + label + ": " + strconv.FormatFloat(e.cost, 'f', -1, 64)
}
