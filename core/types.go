// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph, Node and Edge types,
// and provides thread-safe primitives for building and querying road maps.
//
// This file declares Point, HeuristicMode, Node, Edge, Graph, NodeOption,
// EdgeOption, sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyName indicates that a node was requested with an empty name.
	ErrEmptyName = errors.New("core: node name is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNilNode indicates a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("core: node is nil")

	// ErrForeignNode indicates the node is not owned by the receiving Graph.
	ErrForeignNode = errors.New("core: node belongs to another graph")

	// ErrNegativeCost indicates a road cost below zero (or NaN).
	ErrNegativeCost = errors.New("core: road cost must be non-negative")

	// ErrSelfLoop indicates a road whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNoPath is the not-found signal shared by all search packages:
	// the destination is unreachable from the origin under the search's rules.
	ErrNoPath = errors.New("core: no path to destination")
)

// Point is a planar coordinate used by geometric heuristics.
type Point struct {
	X float64
	Y float64
}

// HeuristicMode selects how Node.Estimate derives its value.
type HeuristicMode int

const (
	// Supplied returns the externally set estimate, ignoring the destination.
	Supplied HeuristicMode = iota

	// Computed returns the Manhattan distance to the destination.
	Computed
)

// String returns the mode name.
func (m HeuristicMode) String() string {
	switch m {
	case Supplied:
		return "supplied"
	case Computed:
		return "computed"
	default:
		return "unknown"
	}
}

// Node is a named location (a city).
//
// name, point and mode are immutable after construction. The incident edge
// list and supplied estimate are guarded by mu.
type Node struct {
	mu sync.RWMutex

	graph *Graph // owner; used to reject foreign nodes in Connect

	name  string
	point Point
	mode  HeuristicMode

	// estimate is the supplied heuristic value (Supplied mode only).
	estimate float64

	// edges in connection order; first connected is first explored.
	edges []*Edge
}

// Edge is an undirected road between two distinct nodes.
// All fields are immutable after construction.
type Edge struct {
	a     *Node
	b     *Node
	cost  float64
	label string
}

// NodeOption configures a Node before it is registered.
type NodeOption func(n *Node)

// WithPoint sets the node coordinates. Nodes without a point sit at (0,0).
func WithPoint(x, y float64) NodeOption {
	return func(n *Node) { n.point = Point{X: x, Y: y} }
}

// WithMode sets the heuristic mode (default Supplied).
func WithMode(mode HeuristicMode) NodeOption {
	return func(n *Node) { n.mode = mode }
}

// WithEstimate seeds the supplied estimate (default 0).
func WithEstimate(v float64) NodeOption {
	return func(n *Node) { n.estimate = v }
}

// EdgeOption configures an Edge before it is connected.
type EdgeOption func(e *Edge)

// WithLabel attaches a human-readable road name (e.g. "BR101").
func WithLabel(label string) EdgeOption {
	return func(e *Edge) { e.label = label }
}

// Graph is the road map: an insertion-ordered catalogue of nodes and edges.
//
// mu guards nodes, order and edges. Node-local state is guarded per node.
type Graph struct {
	mu sync.RWMutex

	nodes map[string]*Node // name → Node
	order []*Node          // insertion order
	edges []*Edge          // insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
	}
}
