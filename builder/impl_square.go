// SPDX-License-Identifier: MIT
// Package: rotas/builder
//
// impl_square.go - the four-city demonstration map.
//
//	B(0,15) ──13── D(10,10)
//	  │   ╲          │
//	 17    1         11
//	  │      ╲       │
//	A(0,0) ──12── C(10,0)
//
// All cities use core.Computed (Manhattan) estimates. Roads are added in
// the order AB, AC, BC, BD, CD, which fixes every tie-break the searches
// make on this map.

package builder

import "github.com/katalvlaran/rotas/core"

var squareCities = []city{
	{name: "A", x: 0, y: 0},
	{name: "B", x: 0, y: 15},
	{name: "C", x: 10, y: 0},
	{name: "D", x: 10, y: 10},
}

var squareRoads = []road{
	{a: "A", b: "B", cost: 17},
	{a: "A", b: "C", cost: 12},
	{a: "B", b: "C", cost: 1},
	{a: "B", b: "D", cost: 13},
	{a: "C", b: "D", cost: 11},
}

// Square returns a Constructor for the A/B/C/D demonstration map.
// Builder options do not affect it.
func Square() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := addCities(MethodSquare, g, core.Computed, squareCities); err != nil {
			return err
		}

		return addRoads(MethodSquare, g, squareRoads)
	}
}
