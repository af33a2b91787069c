// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for rotas/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep goroutines free of *testing.T (collect errors, assert afterwards).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotas/core"
)

// Common node names used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// Road costs of the square fixture (avoid magic numbers in test bodies).
const (
	CostAB = 17
	CostAC = 12
	CostBC = 1
	CostBD = 13
	CostCD = 11
)

// Common concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// buildSquare builds the four-city fixture
//
//	A(0,0)  B(0,15)  C(10,0)  D(10,10)
//	A-B=17, A-C=12, B-C=1, B-D=13, C-D=11
//
// with every node in Computed mode. Roads are connected in the listed order.
func buildSquare(t testing.TB) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	points := []struct {
		name string
		x, y float64
	}{
		{NodeA, 0, 0},
		{NodeB, 0, 15},
		{NodeC, 10, 0},
		{NodeD, 10, 10},
	}
	for _, p := range points {
		_, err := g.AddNode(p.name, core.WithPoint(p.x, p.y), core.WithMode(core.Computed))
		require.NoError(t, err)
	}

	roads := []struct {
		a, b string
		cost float64
	}{
		{NodeA, NodeB, CostAB},
		{NodeA, NodeC, CostAC},
		{NodeB, NodeC, CostBC},
		{NodeB, NodeD, CostBD},
		{NodeC, NodeD, CostCD},
	}
	for _, r := range roads {
		_, err := g.AddEdge(r.a, r.b, r.cost)
		require.NoError(t, err)
	}

	return g
}

// mustNode looks up name or fails the test.
func mustNode(t testing.TB, g *core.Graph, name string) *core.Node {
	t.Helper()

	n, err := g.Node(name)
	require.NoError(t, err)

	return n
}

// names maps nodes to their names, preserving order.
func names(nodes []*core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}

	return out
}
