// SPDX-License-Identifier: MIT
//
// Package core provides the in-memory road map every search in rotas runs on:
// named cities (Node), undirected weighted roads (Edge) and the Graph that owns
// the name → node catalogue.
//
// The Graph G = (V,E) has a deliberately small surface:
//
//   - Undirected edges only; every road is registered on both endpoints.
//   - Non-negative float64 costs (ErrNegativeCost otherwise).
//   - Parallel roads between the same pair are allowed and kept in order.
//   - Self-loops are rejected (ErrSelfLoop).
//   - Identity is the node name: AddNode is idempotent and Node(name) is the
//     single lookup path, so callers never compare nodes by anything else.
//
// Determinism:
//
//	Nodes() and Edges() return insertion order. Every node keeps its incident
//	edges in connection order, and all neighbour views (Neighbors,
//	NeighborsWithCost, NeighborsByDistance, NeighborsWithEstimate) preserve
//	that order for ties. Searches built on top inherit this as their
//	tie-break rule.
//
// Heuristics:
//
//	Each node carries a HeuristicMode fixed at construction:
//	  – Computed: Estimate(dest) is the Manhattan distance between coordinates.
//	  – Supplied: Estimate(dest) is the externally set value, whatever dest is.
//	Algorithms see only Estimate (or a HeuristicFunc) and never the mode.
//
// Concurrency:
//
//	The node catalogue is guarded by a sync.RWMutex on Graph; each node guards
//	its edge list and supplied estimate with its own sync.RWMutex. Building a
//	graph concurrently is race-free. Searches assume construction has finished
//	and treat the graph as a read-only snapshot.
//
// Core Methods:
//
//	// Nodes
//	AddNode(name string, opts ...NodeOption) (*Node, error) // O(1)
//	Node(name string) (*Node, error)                        // O(1)
//	HasNode(name string) bool                               // O(1)
//	Nodes() []*Node                                         // O(V)
//
//	// Roads
//	Connect(a, b *Node, cost float64, opts ...EdgeOption) (*Edge, error)   // O(1)
//	AddEdge(a, b string, cost float64, opts ...EdgeOption) (*Edge, error)  // O(1)
//	Edges() []*Edge                                                        // O(E)
//
//	// Neighbourhood (on *Node)
//	Neighbors() []*Node                       // O(d)
//	NeighborsWithCost() []Neighbor            // O(d)
//	NeighborsByDistance() []*Node             // O(d·log d)
//	NeighborsWithEstimate(dest) []Candidate   // O(d)
//
// Errors:
//
//	ErrEmptyName     – zero-length node name
//	ErrNodeNotFound  – lookup of an unknown name
//	ErrNilNode       – nil node passed to an operation
//	ErrForeignNode   – node belongs to a different graph
//	ErrNegativeCost  – cost < 0 or NaN
//	ErrSelfLoop      – both endpoints are the same node
//	ErrNoPath        – shared not-found signal returned by every search package
package core
