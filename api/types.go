// SPDX-License-Identifier: MIT
package api

import (
	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/trail"
)

// CityJSON describes one city.
type CityJSON struct {
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Mode     string  `json:"mode"`
	Estimate float64 `json:"estimate"`
	Degree   int     `json:"degree"`
}

// RoadJSON describes one road.
type RoadJSON struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Cost  float64 `json:"cost"`
	Label string  `json:"label,omitempty"`
}

// AlgorithmJSON describes one strategy.
type AlgorithmJSON struct {
	Name     string `json:"name"`
	Informed bool   `json:"informed"`
}

// RouteJSON is a found route.
type RouteJSON struct {
	Cities []string `json:"cities"`
	Cost   float64  `json:"cost"`
	Hops   int      `json:"hops"`
	Text   string   `json:"text"`
}

// RouteResponse answers GET /v1/routes.
type RouteResponse struct {
	Algorithm string    `json:"algorithm"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Route     RouteJSON `json:"route"`
	Visited   []string  `json:"visited"`
	ElapsedMS float64   `json:"elapsed_ms"`
}

// TableResponse answers GET /v1/routes/all.
type TableResponse struct {
	From   string               `json:"from"`
	Routes map[string]RouteJSON `json:"routes"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func cityJSON(n *core.Node) CityJSON {
	p := n.Point()
	return CityJSON{
		Name:     n.Name(),
		X:        p.X,
		Y:        p.Y,
		Mode:     n.Mode().String(),
		Estimate: n.SuppliedEstimate(),
		Degree:   n.Degree(),
	}
}

func roadJSON(e *core.Edge) RoadJSON {
	return RoadJSON{A: e.A().Name(), B: e.B().Name(), Cost: e.Cost(), Label: e.Label()}
}

func routeJSON(p *trail.Path) RouteJSON {
	return RouteJSON{Cities: p.Names(), Cost: p.Cost(), Hops: p.Len(), Text: p.String()}
}
