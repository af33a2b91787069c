// SPDX-License-Identifier: MIT
// Package: rotas/builder
//
// helpers.go - constants and small helpers shared by constructors.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/rotas/core"
)

// Method tags used as error prefixes.
const (
	MethodSquare       = "Square"
	MethodRomania      = "Romania"
	MethodGrid         = "Grid"
	MethodChain        = "Chain"
	MethodRandomSparse = "RandomSparse"
)

// Parameter domains.
const (
	MinGridDim      = 1
	MinChainNodes   = 2
	MinSparseNodes  = 1
	MinProbability  = 0.0
	MaxProbability  = 1.0
	DefaultSpacing  = 10.0
	DefaultRoadCost = 1.0
)

// city is a fixed-map entry: name, coordinates and supplied estimate.
type city struct {
	name string
	x, y float64
	est  float64
}

// road is a fixed-map entry between two cities.
type road struct {
	a, b  string
	cost  float64
	label string
}

// addCities registers cs in order with the given mode.
func addCities(method string, g *core.Graph, mode core.HeuristicMode, cs []city) error {
	for _, c := range cs {
		if _, err := g.AddNode(c.name, core.WithPoint(c.x, c.y), core.WithMode(mode), core.WithEstimate(c.est)); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w: %w", method, c.name, ErrConstructFailed, err)
		}
	}

	return nil
}

// addRoads connects rs in order.
func addRoads(method string, g *core.Graph, rs []road) error {
	for _, r := range rs {
		var opts []core.EdgeOption
		if r.label != "" {
			opts = append(opts, core.WithLabel(r.label))
		}
		if _, err := g.AddEdge(r.a, r.b, r.cost, opts...); err != nil {
			return fmt.Errorf("%s: AddEdge(%s-%s, cost=%g): %w: %w", method, r.a, r.b, r.cost, ErrConstructFailed, err)
		}
	}

	return nil
}

// connect prices and adds one generated road between a and b.
func connect(method string, g *core.Graph, cfg builderConfig, a, b *core.Node) error {
	cost := cfg.costFn(cfg.rng, a.Point(), b.Point())
	if _, err := g.Connect(a, b, cost); err != nil {
		return fmt.Errorf("%s: Connect(%s-%s, cost=%g): %w: %w", method, a.Name(), b.Name(), cost, ErrConstructFailed, err)
	}

	return nil
}

func gridCityID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
