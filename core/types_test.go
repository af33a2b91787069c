// SPDX-License-Identifier: MIT
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotas/core"
)

func TestAddNode_EmptyName(t *testing.T) {
	g := core.NewGraph()
	n, err := g.AddNode("")
	assert.Nil(t, n)
	assert.ErrorIs(t, err, core.ErrEmptyName)
}

func TestAddNode_IdempotentByName(t *testing.T) {
	g := core.NewGraph()
	first, err := g.AddNode(NodeA, core.WithPoint(1, 2))
	require.NoError(t, err)

	// Same name, different coordinates: still the same node.
	second, err := g.AddNode(NodeA, core.WithPoint(9, 9))
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, core.Point{X: 1, Y: 2}, second.Point())
	assert.Equal(t, 1, g.NodeCount())
}

func TestAddNode_Defaults(t *testing.T) {
	g := core.NewGraph()
	n, err := g.AddNode(NodeA)
	require.NoError(t, err)

	assert.Equal(t, NodeA, n.Name())
	assert.Equal(t, core.Point{}, n.Point())
	assert.Equal(t, core.Supplied, n.Mode())
	assert.Zero(t, n.SuppliedEstimate())
	assert.Zero(t, n.Degree())
	assert.Equal(t, NodeA, n.String())
}

func TestNodeLookup(t *testing.T) {
	g := buildSquare(t)

	n, err := g.Node(NodeC)
	require.NoError(t, err)
	assert.Equal(t, NodeC, n.Name())

	_, err = g.Node("nowhere")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = g.Node("")
	assert.ErrorIs(t, err, core.ErrEmptyName)

	assert.True(t, g.HasNode(NodeD))
	assert.False(t, g.HasNode(""))
	assert.False(t, g.HasNode("nowhere"))
}

func TestNodes_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for _, name := range []string{"z", "a", "m"} {
		_, err := g.AddNode(name)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"z", "a", "m"}, names(g.Nodes()))
	assert.Equal(t, []string{"z", "a", "m"}, g.Names())
}

func TestConnect_Validation(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(NodeA)
	b, _ := g.AddNode(NodeB)

	other := core.NewGraph()
	x, _ := other.AddNode(NodeX)

	tests := []struct {
		name string
		a, b *core.Node
		cost float64
		want error
	}{
		{"nil endpoint", a, nil, 1, core.ErrNilNode},
		{"foreign node", a, x, 1, core.ErrForeignNode},
		{"negative cost", a, b, -1, core.ErrNegativeCost},
		{"NaN cost", a, b, math.NaN(), core.ErrNegativeCost},
		{"self loop", a, a, 1, core.ErrSelfLoop},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := g.Connect(tc.a, tc.b, tc.cost)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Zero(t, g.EdgeCount(), "rejected roads must not be registered")
	assert.Zero(t, a.Degree())
}

func TestAddEdge_UnknownEndpoint(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode(NodeA)
	_, err := g.AddEdge(NodeA, "ghost", 3)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestConnect_RegistersOnBothEndpoints(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(NodeA)
	b, _ := g.AddNode(NodeB)

	e, err := g.Connect(a, b, 10, core.WithLabel("BR101"))
	require.NoError(t, err)

	assert.Equal(t, []*core.Edge{e}, a.Edges())
	assert.Equal(t, []*core.Edge{e}, b.Edges())
	assert.Same(t, b, e.Other(a))
	assert.Same(t, a, e.Other(b))
	assert.Equal(t, "BR101", e.Label())
	assert.Equal(t, 10.0, e.Cost())
	assert.Equal(t, "A <-> B (BR101): 10", e.String())
}

func TestEdgeOther_NotAnEndpoint(t *testing.T) {
	g := buildSquare(t)
	ab := mustNode(t, g, NodeA).Edges()[0]
	assert.Nil(t, ab.Other(mustNode(t, g, NodeD)))
	assert.Nil(t, ab.Other(nil))
}

func TestConnect_ParallelRoads(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(NodeA)
	b, _ := g.AddNode(NodeB)

	_, err := g.Connect(a, b, 5)
	require.NoError(t, err)
	_, err = g.Connect(a, b, 3)
	require.NoError(t, err)

	nbs := a.NeighborsWithCost()
	require.Len(t, nbs, 2)
	assert.Equal(t, NodeB, nbs[0].Node.Name())
	assert.Equal(t, 5.0, nbs[0].Cost)
	assert.Equal(t, 3.0, nbs[1].Cost)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestHeuristicMode_String(t *testing.T) {
	assert.Equal(t, "supplied", core.Supplied.String())
	assert.Equal(t, "computed", core.Computed.String())
	assert.Equal(t, "unknown", core.HeuristicMode(42).String())
}
