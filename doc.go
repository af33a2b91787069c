// SPDX-License-Identifier: MIT
//
// Package rotas finds routes between cities on a weighted, undirected road
// map and compares the search strategies that find them.
//
// What is rotas?
//
//	A small toolkit built around one road map model:
//		• core:      cities with positions and estimates, roads with costs
//		• trail:     immutable routes that carry their accumulated cost
//		• bfs:       breadth-first, greedy best-first, nearest-first
//		• dfs:       depth-limited and iterative deepening
//		• astar:     A* with pluggable heuristics
//		• dijkstra:  single-source cost tables and shortest routes
//		• search:    one entry point over every strategy, with metrics
//		• mapfile:   the cidade/estrada/estimativa text format
//		• builder:   demonstration maps and synthetic map constructors
//		• gridgraph: terrain grids turned into road maps
//		• report:    the styled terminal transcript of a search
//		• api:       the HTTP JSON service
//		• mcpserver: the Model Context Protocol tool server
//
// Commands:
//
//	cmd/rotas      run searches and print each transcript
//	cmd/rotasd     serve the HTTP API with Prometheus metrics
//	cmd/rotas-mcp  serve the MCP tools over stdio
//
// Quick start:
//
//	g, _ := builder.BuildMap(nil, builder.Square())
//	a, _ := g.Node("A")
//	d, _ := g.Node("D")
//	res, err := search.Run(ctx, search.Request{
//	    Algorithm: search.AStar, Origin: a, Destination: d,
//	})
//	// res.Path: A -> C -> D, cost 23
package rotas
