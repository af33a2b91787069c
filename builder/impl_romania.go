// SPDX-License-Identifier: MIT
// Package: rotas/builder
//
// impl_romania.go - the Romania road map with straight-line estimates to
// Bucharest, the classic benchmark for informed search.
//
// Cities are core.Supplied; each carries its straight-line distance to
// "bucharest" as its estimate, so the estimates are only meaningful with
// bucharest as the destination. Coordinates are approximate map positions
// used by NearestFirst.

package builder

import "github.com/katalvlaran/rotas/core"

// RomaniaDestination is the city the supplied estimates point at.
const RomaniaDestination = "bucharest"

var romaniaCities = []city{
	{name: "arad", x: 91, y: 492, est: 366},
	{name: "bucharest", x: 400, y: 327, est: 0},
	{name: "craiova", x: 253, y: 288, est: 160},
	{name: "drobeta", x: 165, y: 299, est: 242},
	{name: "eforie", x: 562, y: 293, est: 161},
	{name: "fagaras", x: 305, y: 449, est: 176},
	{name: "giurgiu", x: 375, y: 270, est: 77},
	{name: "hirsova", x: 534, y: 350, est: 151},
	{name: "iasi", x: 473, y: 506, est: 226},
	{name: "lugoj", x: 165, y: 379, est: 244},
	{name: "mehadia", x: 168, y: 339, est: 241},
	{name: "neamt", x: 406, y: 537, est: 234},
	{name: "oradea", x: 131, y: 571, est: 380},
	{name: "pitesti", x: 320, y: 368, est: 100},
	{name: "rimnicu-vilcea", x: 233, y: 410, est: 193},
	{name: "sibiu", x: 207, y: 457, est: 253},
	{name: "timisoara", x: 94, y: 410, est: 329},
	{name: "urziceni", x: 456, y: 350, est: 80},
	{name: "vaslui", x: 509, y: 444, est: 199},
	{name: "zerind", x: 108, y: 531, est: 374},
}

var romaniaRoads = []road{
	{a: "arad", b: "zerind", cost: 75},
	{a: "arad", b: "sibiu", cost: 140},
	{a: "arad", b: "timisoara", cost: 118},
	{a: "zerind", b: "oradea", cost: 71},
	{a: "oradea", b: "sibiu", cost: 151},
	{a: "timisoara", b: "lugoj", cost: 111},
	{a: "lugoj", b: "mehadia", cost: 70},
	{a: "mehadia", b: "drobeta", cost: 75},
	{a: "drobeta", b: "craiova", cost: 120},
	{a: "craiova", b: "rimnicu-vilcea", cost: 146},
	{a: "craiova", b: "pitesti", cost: 138},
	{a: "sibiu", b: "fagaras", cost: 99},
	{a: "sibiu", b: "rimnicu-vilcea", cost: 80},
	{a: "rimnicu-vilcea", b: "pitesti", cost: 97},
	{a: "fagaras", b: "bucharest", cost: 211},
	{a: "pitesti", b: "bucharest", cost: 101},
	{a: "bucharest", b: "giurgiu", cost: 90},
	{a: "bucharest", b: "urziceni", cost: 85},
	{a: "urziceni", b: "hirsova", cost: 98},
	{a: "hirsova", b: "eforie", cost: 86},
	{a: "urziceni", b: "vaslui", cost: 142},
	{a: "vaslui", b: "iasi", cost: 92},
	{a: "iasi", b: "neamt", cost: 87},
}

// Romania returns a Constructor for the 20-city Romania map.
// Builder options do not affect it.
func Romania() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := addCities(MethodRomania, g, core.Supplied, romaniaCities); err != nil {
			return err
		}

		return addRoads(MethodRomania, g, romaniaRoads)
	}
}
