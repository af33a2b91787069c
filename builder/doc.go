// SPDX-License-Identifier: MIT
//
// Package builder assembles road maps for demos, tests and benchmarks.
//
// BuildMap creates a core.Graph and runs one or more Constructors over it,
// each configured by the same set of BuilderOptions.
//
// Constructors:
//
//   - Square():             the four-city A/B/C/D demonstration map.
//   - Romania():            20 cities with supplied estimates to "bucharest".
//   - Grid(rows, cols):     orthogonal grid, cities named "r,c".
//   - Chain(n):             n cities along one road.
//   - RandomSparse(n, p):   random coordinates, each pair joined with prob p.
//
// Options (generated maps only; Square and Romania are fixed):
//
//   - WithIDScheme(fn), WithSymbolIDs(), WithExcelColumnIDs(),
//     WithSymbNumb(prefix), WithDefaultIDs(): city naming.
//   - WithSeed(seed), WithRand(r): randomness source.
//   - WithCostFn(fn), WithConstantCost(w), WithUniformCost(min, max),
//     WithDetourCost(f): road pricing; the default is the Manhattan length.
//   - WithMode(m): heuristic mode of generated cities (default Computed).
//   - WithSpacing(d): distance between adjacent cities (default 10).
//
// Errors:
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource for bad
//     constructor parameters.
//   - ErrConstructFailed for nil constructors and core failures; the core
//     error stays reachable through errors.Is.
//
// Option constructors panic on programmer error (nil functions, negative
// spacing); constructors themselves never panic at runtime.
package builder
