// SPDX-License-Identifier: MIT
//
// Package mcpserver exposes a road map to Model Context Protocol clients.
//
// Tools:
//
//	find_route   from, to, [algorithm], [limit], [heuristic]
//	list_cities
//	route_table  from
//
// Resources:
//
//	rotas://map  the whole map as JSON
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/dijkstra"
	"github.com/katalvlaran/rotas/search"
)

// MapURI is the resource URI of the loaded map.
const MapURI = "rotas://map"

// Server adapts a road map to the Model Context Protocol.
type Server struct {
	mcpServer *server.MCPServer
	graph     *core.Graph
	log       *slog.Logger
}

// NewServer creates a new MCP server over g. A nil logger means
// slog.Default().
func NewServer(g *core.Graph, version string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		mcpServer: server.NewMCPServer("rotas", version),
		graph:     g,
		log:       log,
	}
	s.registerResources()
	s.registerTools()

	return s
}

// Serve runs the MCP server on stdio until the client disconnects.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

// MCP returns the underlying server, e.g. for alternative transports.
func (s *Server) MCP() *server.MCPServer { return s.mcpServer }

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(
		MapURI,
		"Road map",
		mcp.WithResourceDescription("Every city with its coordinates and every road with its cost"),
		mcp.WithMIMEType("application/json"),
	), s.handleReadMap)
}

func (s *Server) registerTools() {
	names := make([]string, 0, len(search.All()))
	for _, a := range search.All() {
		names = append(names, a.String())
	}

	s.mcpServer.AddTool(mcp.NewTool(
		"find_route",
		mcp.WithDescription("Find a route between two cities. Returns the route, its cost and the cities visited."),
		mcp.WithString("from", mcp.Required(), mcp.Description("Origin city")),
		mcp.WithString("to", mcp.Required(), mcp.Description("Destination city")),
		mcp.WithString("algorithm", mcp.Description("One of: "+strings.Join(names, ", ")+" (default astar)")),
		mcp.WithNumber("limit", mcp.Description("Depth limit for depth-limited, ceiling for iterative-deepening (0 = none)")),
		mcp.WithString("heuristic", mcp.Description("One of: "+strings.Join(search.HeuristicNames(), ", ")+" (default estimate)")),
	), s.handleFindRoute)

	s.mcpServer.AddTool(mcp.NewTool(
		"list_cities",
		mcp.WithDescription("List every city on the map in declaration order."),
	), s.handleListCities)

	s.mcpServer.AddTool(mcp.NewTool(
		"route_table",
		mcp.WithDescription("Cheapest route from one city to every reachable city."),
		mcp.WithString("from", mcp.Required(), mcp.Description("Origin city")),
	), s.handleRouteTable)
}

type cityJSON struct {
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Mode     string  `json:"mode"`
	Estimate float64 `json:"estimate"`
}

type roadJSON struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Cost  float64 `json:"cost"`
	Label string  `json:"label,omitempty"`
}

type mapJSON struct {
	Cities []cityJSON `json:"cities"`
	Roads  []roadJSON `json:"roads"`
}

func (s *Server) handleReadMap(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var m mapJSON
	for _, n := range s.graph.Nodes() {
		p := n.Point()
		m.Cities = append(m.Cities, cityJSON{
			Name: n.Name(), X: p.X, Y: p.Y, Mode: n.Mode().String(), Estimate: n.SuppliedEstimate(),
		})
	}
	for _, e := range s.graph.Edges() {
		m.Roads = append(m.Roads, roadJSON{A: e.A().Name(), B: e.B().Name(), Cost: e.Cost(), Label: e.Label()})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal map: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handleFindRoute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	from := mcp.ParseString(request, "from", "")
	to := mcp.ParseString(request, "to", "")
	algoName := mcp.ParseString(request, "algorithm", search.AStar.String())
	limit := mcp.ParseFloat64(request, "limit", 0)
	hName := mcp.ParseString(request, "heuristic", "")

	algo, err := search.Parse(algoName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	h, err := search.ParseHeuristic(hName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if limit < 0 || limit != float64(int(limit)) {
		return mcp.NewToolResultError("limit must be a non-negative integer"), nil
	}
	origin, err := s.graph.Node(from)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("origin: %v", err)), nil
	}
	dest, err := s.graph.Node(to)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("destination: %v", err)), nil
	}

	res, err := search.Run(ctx, search.Request{
		Algorithm:   algo,
		Origin:      origin,
		Destination: dest,
		Limit:       int(limit),
		Heuristic:   h,
	})
	s.log.Info("mcp_find_route", "algorithm", algo.String(), "from", from, "to", to, "found", res.Found(), "visited", len(res.Visited))
	switch {
	case errors.Is(err, core.ErrNoPath):
		return mcp.NewToolResultText(fmt.Sprintf("No route from %s to %s (%s).\nVisited: %s",
			from, to, algo, strings.Join(res.Visited, ", "))), nil
	case err != nil:
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s (cost %g)\nAlgorithm: %s\nVisited: %s",
		res.Path, res.Path.Cost(), algo, strings.Join(res.Visited, ", "))), nil
}

func (s *Server) handleListCities(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	for _, n := range s.graph.Nodes() {
		p := n.Point()
		fmt.Fprintf(&b, "%s (%g, %g) roads=%d\n", n.Name(), p.X, p.Y, n.Degree())
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleRouteTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	from := mcp.ParseString(request, "from", "")
	origin, err := s.graph.Node(from)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("origin: %v", err)), nil
	}

	routes, err := dijkstra.Dijkstra(origin, nil, dijkstra.WithContext(ctx))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	names := make([]string, 0, len(routes))
	for name := range routes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := routes[names[i]].Cost(), routes[names[j]].Cost()
		if ci != cj {
			return ci < cj
		}
		return names[i] < names[j]
	})

	var b strings.Builder
	for _, name := range names {
		p := routes[name]
		fmt.Fprintf(&b, "%s: %s (cost %g)\n", name, p, p.Cost())
	}

	return mcp.NewToolResultText(b.String()), nil
}
