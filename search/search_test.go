// SPDX-License-Identifier: MIT
package search_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/search"
)

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

func mustNode(t testing.TB, g *core.Graph, name string) *core.Node {
	t.Helper()

	n, err := g.Node(name)
	require.NoError(t, err)

	return n
}

func TestParse(t *testing.T) {
	cases := map[string]search.Algorithm{
		"breadth-first":       search.BreadthFirst,
		"BFS":                 search.BreadthFirst,
		"dls":                 search.DepthLimited,
		"dfs":                 search.DepthLimited,
		"ids":                 search.IterativeDeepening,
		"iterative-deepening": search.IterativeDeepening,
		"gbfs":                search.Greedy,
		"nearest-first":       search.NearestFirst,
		"a*":                  search.AStar,
		" astar ":             search.AStar,
		"ucs":                 search.Dijkstra,
	}
	for in, want := range cases {
		got, err := search.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := search.Parse("teleport")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestAll_RoundTrip(t *testing.T) {
	all := search.All()
	require.Len(t, all, 7)
	for _, a := range all {
		got, err := search.Parse(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	assert.Equal(t, "breadth-first", all[0].String())
	assert.Equal(t, "dijkstra", all[len(all)-1].String())
}

func TestAlgorithm_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Algo search.Algorithm `json:"algo"`
	}{search.AStar})
	require.NoError(t, err)
	assert.JSONEq(t, `{"algo":"astar"}`, string(b))

	var v struct {
		Algo search.Algorithm `json:"algo"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"algo":"ucs"}`), &v))
	assert.Equal(t, search.Dijkstra, v.Algo)
}

// TestRun_Square pins the route and visit sequence of every strategy.
func TestRun_Square(t *testing.T) {
	g := buildSquare(t)
	cases := []struct {
		algo    search.Algorithm
		route   []string
		cost    float64
		visited []string
	}{
		{search.BreadthFirst, []string{"A", "B", "D"}, 30, []string{"A", "B", "C", "D"}},
		{search.DepthLimited, []string{"A", "B", "C", "D"}, 29, []string{"A", "B", "C", "D"}},
		{search.IterativeDeepening, []string{"A", "B", "D"}, 30, []string{"A", "A", "B", "D"}},
		{search.Greedy, []string{"A", "C", "D"}, 23, []string{"A", "C", "B", "D"}},
		{search.NearestFirst, []string{"A", "C", "D"}, 23, []string{"A", "C", "B", "D"}},
		{search.AStar, []string{"A", "C", "D"}, 23, []string{"A", "C", "D"}},
		{search.Dijkstra, []string{"A", "C", "D"}, 23, []string{"A", "C", "B", "D"}},
	}
	for _, tc := range cases {
		t.Run(tc.algo.String(), func(t *testing.T) {
			res, err := search.Run(context.Background(), search.Request{
				Algorithm:   tc.algo,
				Origin:      mustNode(t, g, "A"),
				Destination: mustNode(t, g, "D"),
			})
			require.NoError(t, err)
			require.True(t, res.Found())
			assert.Equal(t, tc.algo, res.Algorithm)
			assert.Equal(t, tc.route, res.Path.Names())
			assert.Equal(t, tc.cost, res.Path.Cost())
			assert.Equal(t, tc.visited, res.Visited)
			assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
		})
	}
}

func TestRun_Limit(t *testing.T) {
	g := buildSquare(t)
	_, err := search.Run(context.Background(), search.Request{
		Algorithm:   search.DepthLimited,
		Origin:      mustNode(t, g, "A"),
		Destination: mustNode(t, g, "D"),
		Limit:       2,
	})
	assert.ErrorIs(t, err, core.ErrNoPath)
}

func TestRun_NotFound(t *testing.T) {
	g := buildSquare(t)
	for _, algo := range search.All() {
		res, err := search.Run(context.Background(), search.Request{
			Algorithm:   algo,
			Origin:      mustNode(t, g, "A"),
			Destination: mustNode(t, g, "X"),
		})
		assert.ErrorIs(t, err, core.ErrNoPath, algo.String())
		require.NotNil(t, res)
		assert.False(t, res.Found())
	}
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	g := buildSquare(t)
	_, err := search.Run(context.Background(), search.Request{
		Algorithm:   search.Algorithm(99),
		Origin:      mustNode(t, g, "A"),
		Destination: mustNode(t, g, "D"),
	})
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestRun_OnVisitForwarded(t *testing.T) {
	g := buildSquare(t)
	var seen []string
	res, err := search.Run(context.Background(), search.Request{
		Algorithm:   search.AStar,
		Origin:      mustNode(t, g, "A"),
		Destination: mustNode(t, g, "D"),
		OnVisit: func(name string, _ int) error {
			seen = append(seen, name)
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, res.Visited, seen)
}

// TestRegister_Metrics runs one search and reads the counters back.
func TestRegister_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, search.Register(reg))
	require.NoError(t, search.Register(reg), "second registration is a no-op")

	before := counter(t, reg, "astar", search.OutcomeFound)
	g := buildSquare(t)
	_, err := search.Run(context.Background(), search.Request{
		Algorithm:   search.AStar,
		Origin:      mustNode(t, g, "A"),
		Destination: mustNode(t, g, "D"),
	})
	require.NoError(t, err)
	assert.Equal(t, before+1, counter(t, reg, "astar", search.OutcomeFound))

	families, err := reg.Gather()
	require.NoError(t, err)
	var got []string
	for _, mf := range families {
		got = append(got, mf.GetName())
	}
	assert.Contains(t, got, "rotas_search_expansions")
	assert.Contains(t, got, "rotas_search_duration_seconds")
}

func counter(t *testing.T, reg *prometheus.Registry, algo, outcome string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "rotas_searches_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["algorithm"] == algo && labels["outcome"] == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}

	return 0
}
