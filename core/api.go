// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	ComputedNodes int // nodes in Computed heuristic mode
	SuppliedNodes int // nodes in Supplied heuristic mode
	ZeroEstimates int // Supplied nodes whose estimate is 0 (destination candidates)
}

// NodeCount returns the number of nodes.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Concurrency:
//   - Acquires mu read lock.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of roads, parallel roads counted separately.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Concurrency:
//   - Acquires mu read lock.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Stats produces a deterministic, read-only snapshot of catalogue sizes and
// heuristic configuration.
//
// Implementation:
//   - Stage 1: Under mu read lock, copy the node order and count edges.
//   - Stage 2: Without the graph lock, classify each node (node locks only).
//
// Behavior highlights:
//   - Never holds the graph lock and a node lock at the same time.
//
// Complexity:
//   - Time O(V), Space O(V) for the order snapshot.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	nodes := make([]*Node, len(g.order))
	copy(nodes, g.order)
	stats := GraphStats{NodeCount: len(g.order), EdgeCount: len(g.edges)}
	g.mu.RUnlock()

	var n *Node
	for _, n = range nodes {
		if n.mode == Computed {
			stats.ComputedNodes++
			continue
		}
		stats.SuppliedNodes++
		if n.SuppliedEstimate() == 0 {
			stats.ZeroEstimates++
		}
	}

	return stats
}

// Name returns the node's unique name.
func (n *Node) Name() string { return n.name }

// Point returns the node's coordinates.
func (n *Node) Point() Point { return n.point }

// Mode returns the heuristic mode fixed at construction.
func (n *Node) Mode() HeuristicMode { return n.mode }

// String returns the node name, so nodes print as their names.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	return n.name
}

// Degree returns the number of incident roads (parallel roads counted once each).
//
// Complexity:
//   - Time O(1), Space O(1).
func (n *Node) Degree() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.edges)
}

// Edges returns a copy of the incident roads in connection order.
//
// Complexity:
//   - Time O(d), Space O(d).
func (n *Node) Edges() []*Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]*Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// A returns the first endpoint given at construction.
func (e *Edge) A() *Node { return e.a }

// B returns the second endpoint given at construction.
func (e *Edge) B() *Node { return e.b }

// Cost returns the road length.
func (e *Edge) Cost() float64 { return e.cost }

// Label returns the optional road name ("" when unset).
func (e *Edge) Label() string { return e.label }
