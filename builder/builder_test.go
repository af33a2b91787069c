// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for the map constructors,
// verifying city and road counts, naming, coordinates and costs.
package builder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotas/builder"
	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/search"
)

// roadKey identifies a road by its endpoints in insertion order.
type roadKey struct{ A, B string }

func roadCosts(g *core.Graph) map[roadKey]float64 {
	m := make(map[roadKey]float64)
	for _, e := range g.Edges() {
		m[roadKey{e.A().Name(), e.B().Name()}] = e.Cost()
	}
	return m
}

func mustNode(t *testing.T, g *core.Graph, name string) *core.Node {
	t.Helper()
	n, err := g.Node(name)
	require.NoError(t, err)
	return n
}

func TestSquare(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildMap(nil, builder.Square())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Names())
	assert.Equal(t, map[roadKey]float64{
		{"A", "B"}: 17, {"A", "C"}: 12, {"B", "C"}: 1, {"B", "D"}: 13, {"C", "D"}: 11,
	}, roadCosts(g))

	b := mustNode(t, g, "B")
	assert.Equal(t, core.Point{X: 0, Y: 15}, b.Point())
	assert.Equal(t, core.Computed, b.Mode())
	assert.Equal(t, 15.0, b.Estimate(mustNode(t, g, "D")))
}

func TestSquare_IgnoresOptions(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildMap([]builder.BuilderOption{
		builder.WithConstantCost(99), builder.WithMode(core.Supplied), builder.WithSpacing(3),
	}, builder.Square())
	require.NoError(t, err)
	assert.Equal(t, 17.0, roadCosts(g)[roadKey{"A", "B"}])
	assert.Equal(t, core.Computed, mustNode(t, g, "A").Mode())
}

func TestRomania(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildMap(nil, builder.Romania())
	require.NoError(t, err)
	assert.Equal(t, 20, g.NodeCount())
	assert.Equal(t, 23, g.EdgeCount())

	arad := mustNode(t, g, "arad")
	dest := mustNode(t, g, builder.RomaniaDestination)
	assert.Equal(t, core.Supplied, arad.Mode())
	assert.Equal(t, 366.0, arad.Estimate(dest))
	assert.Zero(t, dest.Estimate(dest))
}

func TestRomania_Routes(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildMap(nil, builder.Romania())
	require.NoError(t, err)
	from := mustNode(t, g, "arad")
	to := mustNode(t, g, builder.RomaniaDestination)

	tests := []struct {
		algo  search.Algorithm
		route string
		cost  float64
	}{
		{search.BreadthFirst, "arad -> sibiu -> fagaras -> bucharest", 450},
		{search.Greedy, "arad -> sibiu -> fagaras -> bucharest", 450},
		{search.AStar, "arad -> sibiu -> rimnicu-vilcea -> pitesti -> bucharest", 418},
		{search.Dijkstra, "arad -> sibiu -> rimnicu-vilcea -> pitesti -> bucharest", 418},
	}
	for _, tc := range tests {
		res, err := search.Run(context.Background(), search.Request{Algorithm: tc.algo, Origin: from, Destination: to})
		require.NoError(t, err, tc.algo.String())
		assert.Equal(t, tc.route, res.Path.String(), tc.algo.String())
		assert.Equal(t, tc.cost, res.Path.Cost(), tc.algo.String())
	}
}

func TestGrid(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildMap([]builder.BuilderOption{builder.WithSpacing(5)}, builder.Grid(2, 3))
	require.NoError(t, err)

	assert.Equal(t, []string{"0,0", "0,1", "0,2", "1,0", "1,1", "1,2"}, g.Names())
	// rows*(cols-1) + (rows-1)*cols
	assert.Equal(t, 2*2+1*3, g.EdgeCount())
	for _, c := range roadCosts(g) {
		assert.Equal(t, 5.0, c)
	}
	assert.Equal(t, core.Point{X: 10, Y: 5}, mustNode(t, g, "1,2").Point())

	// right before bottom for each cell
	edges := g.Edges()
	assert.Equal(t, "0,1", edges[0].B().Name())
	assert.Equal(t, "1,0", edges[1].B().Name())
}

func TestGrid_Single(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildMap(nil, builder.Grid(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}

func TestChain(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildMap([]builder.BuilderOption{
		builder.WithSymbolIDs(), builder.WithMode(core.Supplied),
	}, builder.Chain(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Names())
	assert.Equal(t, map[roadKey]float64{{"A", "B"}: 10, {"B", "C"}: 10, {"C", "D"}: 10}, roadCosts(g))
	assert.Equal(t, core.Supplied, mustNode(t, g, "C").Mode())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() *core.Graph {
		g, err := builder.BuildMap([]builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(12, 0.3))
		require.NoError(t, err)
		return g
	}
	g1, g2 := build(), build()

	assert.Equal(t, g1.Names(), g2.Names())
	assert.Equal(t, roadCosts(g1), roadCosts(g2))
	for _, n := range g1.Nodes() {
		assert.Equal(t, n.Point(), mustNode(t, g2, n.Name()).Point())
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	t.Parallel()

	empty, err := builder.BuildMap([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Equal(t, 6, empty.NodeCount())
	assert.Zero(t, empty.EdgeCount())

	full, err := builder.BuildMap([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 6*5/2, full.EdgeCount())
	for _, e := range full.Edges() {
		assert.Equal(t, core.Manhattan(e.A().Point(), e.B().Point()), e.Cost())
	}
}

func TestConstructorErrors(t *testing.T) {
	t.Parallel()

	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	tests := []struct {
		name string
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		{"grid rows", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"grid cols", nil, builder.Grid(2, 0), builder.ErrTooFewVertices},
		{"chain", nil, builder.Chain(1), builder.ErrTooFewVertices},
		{"sparse n", seeded, builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"sparse p low", seeded, builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"sparse p high", seeded, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"sparse rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		g, err := builder.BuildMap(tc.opts, tc.con)
		assert.Nil(t, g, tc.name)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestBuildMap_Combined(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildMap(nil, builder.Square(), builder.Chain(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "0", "1", "2"}, g.Names())
	assert.Equal(t, 5+2, g.EdgeCount())

	// The chain's symbol names collide with the square: A-B gains a parallel road.
	g, err = builder.BuildMap([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Square(), builder.Chain(2))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())
}

func TestBuildMap_SelfLoopSurfaces(t *testing.T) {
	t.Parallel()

	same := builder.WithIDScheme(func(int) string { return "X" })
	_, err := builder.BuildMap([]builder.BuilderOption{same}, builder.Chain(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, builder.ErrConstructFailed))
	assert.True(t, errors.Is(err, core.ErrSelfLoop))
}

// Every strategy agrees with Dijkstra on reachability, and none beats it
// on cost.
func TestRandomSparse_SearchesAgreeWithDijkstra(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildMap([]builder.BuilderOption{
			builder.WithSeed(seed), builder.WithDetourCost(0.5),
		}, builder.RandomSparse(10, 0.25))
		require.NoError(t, err)

		nodes := g.Nodes()
		from, to := nodes[0], nodes[len(nodes)-1]
		ref, refErr := search.Run(context.Background(), search.Request{Algorithm: search.Dijkstra, Origin: from, Destination: to})

		for _, algo := range search.All() {
			res, err := search.Run(context.Background(), search.Request{Algorithm: algo, Origin: from, Destination: to})
			if refErr != nil {
				assert.ErrorIs(t, err, core.ErrNoPath, "seed %d %s", seed, algo)
				continue
			}
			require.NoError(t, err, "seed %d %s", seed, algo)
			assert.GreaterOrEqual(t, res.Path.Cost(), ref.Path.Cost(), "seed %d %s", seed, algo)
			assert.Equal(t, to.Name(), res.Path.Node().Name())
		}
	}
}
