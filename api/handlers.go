// SPDX-License-Identifier: MIT
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/dfs"
	"github.com/katalvlaran/rotas/dijkstra"
	"github.com/katalvlaran/rotas/search"
)

// DefaultAlgorithm answers /v1/routes when no algorithm is given.
const DefaultAlgorithm = search.AStar

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: msg})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleAlgorithms(w http.ResponseWriter, _ *http.Request) {
	all := search.All()
	out := make([]AlgorithmJSON, len(all))
	for i, a := range all {
		out[i] = AlgorithmJSON{Name: a.String(), Informed: a.Informed()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCities(w http.ResponseWriter, _ *http.Request) {
	nodes := s.graph.Nodes()
	out := make([]CityJSON, len(nodes))
	for i, n := range nodes {
		out[i] = cityJSON(n)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRoads(w http.ResponseWriter, _ *http.Request) {
	edges := s.graph.Edges()
	out := make([]RoadJSON, len(edges))
	for i, e := range edges {
		out[i] = roadJSON(e)
	}
	writeJSON(w, http.StatusOK, out)
}

// city resolves a required query parameter to a city, writing the error
// reply itself when it cannot.
func (s *Server) city(w http.ResponseWriter, r *http.Request, param string) (*core.Node, bool) {
	name := r.URL.Query().Get(param)
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing_parameter", param+" is required")
		return nil, false
	}
	n, err := s.graph.Node(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown_city", err.Error())
		return nil, false
	}

	return n, true
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	algo := DefaultAlgorithm
	if v := q.Get("algorithm"); v != "" {
		a, err := search.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown_algorithm", err.Error())
			return
		}
		algo = a
	}

	limit := 0
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	h, err := search.ParseHeuristic(q.Get("heuristic"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_heuristic", err.Error())
		return
	}

	from, ok := s.city(w, r, "from")
	if !ok {
		return
	}
	to, ok := s.city(w, r, "to")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	res, err := search.Run(ctx, search.Request{
		Algorithm:   algo,
		Origin:      from,
		Destination: to,
		Limit:       limit,
		Heuristic:   h,
	})
	if err != nil {
		s.searchError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RouteResponse{
		Algorithm: algo.String(),
		From:      from.Name(),
		To:        to.Name(),
		Route:     routeJSON(res.Path),
		Visited:   res.Visited,
		ElapsedMS: float64(res.Elapsed.Microseconds()) / 1000,
	})
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	from, ok := s.city(w, r, "from")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	routes, err := dijkstra.Dijkstra(from, nil, dijkstra.WithContext(ctx))
	if err != nil {
		s.searchError(w, r, err)
		return
	}

	out := TableResponse{From: from.Name(), Routes: make(map[string]RouteJSON, len(routes))}
	for name, p := range routes {
		out.Routes[name] = routeJSON(p)
	}
	writeJSON(w, http.StatusOK, out)
}

// searchError maps a search failure to a status code.
func (s *Server) searchError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrNoPath):
		writeError(w, http.StatusNotFound, "no_route", err.Error())
	case errors.Is(err, dfs.ErrOptionViolation):
		writeError(w, http.StatusBadRequest, "invalid_limit", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "search_timeout", err.Error())
	case errors.Is(err, context.Canceled):
		// client went away; nothing useful to send
		s.log.Debug("search_cancelled", "trace_id", TraceID(r.Context()))
	default:
		s.log.Error("search_failed", "error", err, "trace_id", TraceID(r.Context()))
		writeError(w, http.StatusInternalServerError, "search_failed", err.Error())
	}
}
