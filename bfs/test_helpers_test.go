// SPDX-License-Identifier: MIT
// Package bfs_test contains fixtures shared by the bfs tests.

package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotas/core"
)

// Road costs of the square fixture.
const (
	CostAB = 17
	CostAC = 12
	CostBC = 1
	CostBD = 13
	CostCD = 11
)

// buildSquare builds the four-city fixture
//
//	A(0,0)  B(0,15)  C(10,0)  D(10,10)
//	A-B=17, A-C=12, B-C=1, B-D=13, C-D=11
//
// plus an isolated city X(50,50). Every node is in Computed mode.
func buildSquare(t testing.TB) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	points := []struct {
		name string
		x, y float64
	}{
		{"A", 0, 0}, {"B", 0, 15}, {"C", 10, 0}, {"D", 10, 10}, {"X", 50, 50},
	}
	for _, p := range points {
		_, err := g.AddNode(p.name, core.WithPoint(p.x, p.y), core.WithMode(core.Computed))
		require.NoError(t, err)
	}
	roads := []struct {
		a, b string
		cost float64
	}{
		{"A", "B", CostAB}, {"A", "C", CostAC}, {"B", "C", CostBC}, {"B", "D", CostBD}, {"C", "D", CostCD},
	}
	for _, r := range roads {
		_, err := g.AddEdge(r.a, r.b, r.cost)
		require.NoError(t, err)
	}

	return g
}

// addRoad declares both cities when missing and connects them.
func addRoad(t testing.TB, g *core.Graph, a, b string, cost float64) {
	t.Helper()

	na, err := g.AddNode(a)
	require.NoError(t, err)
	nb, err := g.AddNode(b)
	require.NoError(t, err)
	_, err = g.Connect(na, nb, cost)
	require.NoError(t, err)
}

// mustNode fetches name from g or fails the test.
func mustNode(t testing.TB, g *core.Graph, name string) *core.Node {
	t.Helper()

	n, err := g.Node(name)
	require.NoError(t, err)

	return n
}

// recorder returns an OnVisit hook that appends to *order.
func recorder(order *[]string) func(string, int) error {
	return func(name string, _ int) error {
		*order = append(*order, name)
		return nil
	}
}
