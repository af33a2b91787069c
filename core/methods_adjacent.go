// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighbourhood views over a node's incident roads.
// Determinism:
//   - All views follow incident-edge (connection) order.
//   - Sorted views use a stable sort, so ties keep connection order.
//   - A neighbour appears once per road (parallel roads repeat it).

package core

import "sort"

// Neighbor pairs a neighbouring node with the road that reaches it.
type Neighbor struct {
	Node *Node
	Edge *Edge
	Cost float64
}

// Candidate pairs a neighbouring node with its heuristic estimate toward a
// destination, plus the road that reaches it.
type Candidate struct {
	Node     *Node
	Edge     *Edge
	Estimate float64
}

// Neighbors returns the nodes across each incident road, in connection order.
//
// Complexity: O(d) time and space.
func (n *Node) Neighbors() []*Node {
	edges := n.Edges()
	out := make([]*Node, len(edges))
	for i, e := range edges {
		out[i] = e.Other(n)
	}

	return out
}

// NeighborsWithCost returns each neighbour with the cost of its road.
//
// Complexity: O(d) time and space.
func (n *Node) NeighborsWithCost() []Neighbor {
	edges := n.Edges()
	out := make([]Neighbor, len(edges))
	for i, e := range edges {
		out[i] = Neighbor{Node: e.Other(n), Edge: e, Cost: e.cost}
	}

	return out
}

// NeighborsByDistance returns neighbours in ascending straight-line distance
// from n, ignoring road costs and heuristics. Ties keep connection order.
//
// Complexity: O(d·log d) time, O(d) space.
func (n *Node) NeighborsByDistance() []*Node {
	out := n.Neighbors()
	from := n.point
	sort.SliceStable(out, func(i, j int) bool {
		return Euclidean(from, out[i].point) < Euclidean(from, out[j].point)
	})

	return out
}

// NeighborsWithEstimate returns each neighbour paired with its Estimate(dest).
// The slice is in connection order; callers sort it if they need to.
//
// Complexity: O(d) time and space.
func (n *Node) NeighborsWithEstimate(dest *Node) []Candidate {
	edges := n.Edges()
	out := make([]Candidate, len(edges))
	var nb *Node
	for i, e := range edges {
		nb = e.Other(n)
		out[i] = Candidate{Node: nb, Edge: e, Estimate: nb.Estimate(dest)}
	}

	return out
}
