// SPDX-License-Identifier: MIT
// Package dfs_test contains fixtures shared by the dfs tests.

package dfs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotas/core"
)

// buildSquare builds the four-city fixture
//
//	A(0,0)  B(0,15)  C(10,0)  D(10,10)
//	A-B=17, A-C=12, B-C=1, B-D=13, C-D=11
//
// plus an isolated city X. Every node is in Computed mode.
func buildSquare(t testing.TB) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, p := range []struct {
		name string
		x, y float64
	}{
		{"A", 0, 0}, {"B", 0, 15}, {"C", 10, 0}, {"D", 10, 10}, {"X", 50, 50},
	} {
		_, err := g.AddNode(p.name, core.WithPoint(p.x, p.y), core.WithMode(core.Computed))
		require.NoError(t, err)
	}
	for _, r := range []struct {
		a, b string
		cost float64
	}{
		{"A", "B", 17}, {"A", "C", 12}, {"B", "C", 1}, {"B", "D", 13}, {"C", "D", 11},
	} {
		_, err := g.AddEdge(r.a, r.b, r.cost)
		require.NoError(t, err)
	}

	return g
}

// buildShortcut builds a chain v0-…-v6 of unit roads, then a direct
// v0-v6 road of cost 100 connected last.
func buildShortcut(t testing.TB) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for i := 0; i < 6; i++ {
		addRoad(t, g, fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}
	addRoad(t, g, "v0", "v6", 100)

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
