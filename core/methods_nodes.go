// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
//
// Concurrency:
//   - Node catalogue protected by Graph.mu.

package core

import "fmt"

// AddNode inserts a node if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty name (ErrEmptyName).
//   - Stage 2: Under mu write lock, return the existing node if present.
//   - Stage 3: Otherwise allocate the Node, apply opts, register it.
//
// Behavior highlights:
//   - Identity is the name: a second AddNode with the same name returns the
//     first node untouched, even when opts differ (coordinates included).
//
// Errors:
//   - ErrEmptyName: if name == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(name string, opts ...NodeOption) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if n, exists := g.nodes[name]; exists {
		return n, nil
	}

	n := &Node{graph: g, name: name, mode: Supplied}
	var opt NodeOption
	for _, opt = range opts {
		opt(n)
	}
	g.nodes[name] = n
	g.order = append(g.order, n)

	return n, nil
}

// Node looks a node up by name.
//
// Errors:
//   - ErrEmptyName: if name == "".
//   - ErrNodeNotFound (wrapped with the name): if absent.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Node(name string) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	g.mu.RLock()
	n, ok := g.nodes[name]
	g.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return n, nil
}

// HasNode reports whether the name is present (empty name ⇒ false).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasNode(name string) bool {
	if name == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[name]

	return ok
}

// Nodes returns all nodes in insertion order.
// The slice is a copy; the nodes are shared.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, len(g.order))
	copy(out, g.order)

	return out
}

// Names returns all node names in insertion order.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	for i, n := range g.order {
		out[i] = n.name
	}

	return out
}

// SetEstimate stores the supplied heuristic value on the node.
// It has no observable effect on Estimate for Computed nodes.
//
// Concurrency:
//   - Acquires the node's write lock. Do not call while a search runs.
func (n *Node) SetEstimate(v float64) {
	n.mu.Lock()
	n.estimate = v
	n.mu.Unlock()
}

// SuppliedEstimate returns the externally set estimate regardless of mode.
func (n *Node) SuppliedEstimate() float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.estimate
}

// connect appends e to the incident list. Called exactly twice per edge.
func (n *Node) connect(e *Edge) {
	n.mu.Lock()
	n.edges = append(n.edges, e)
	n.mu.Unlock()
}
