// SPDX-License-Identifier: MIT
//
// Package gridgraph turns a rectangular terrain grid into a road map.
//
// What:
//
//   - GridGraph wraps a [][]int of terrain costs with a tunable
//     PassableThreshold: cells below it are blocked.
//   - ToCoreGraph emits one city per passable cell, named "row,col" and
//     placed at (col·Spacing, row·Spacing), joined by roads to its passable
//     neighbours under Conn4 or Conn8 adjacency.
//   - ConnectedComponents lists the islands of mutually reachable cells.
//   - Parse reads the grid from text: digits are costs, '.' is open ground
//     (cost 1) and '#' is a wall.
//
// Road cost:
//
//	Spacing · (cost(u) + cost(v)) / 2, times √2 on a diagonal.
//
// Cities are Computed, so the default heuristic is the Manhattan distance.
// It never overestimates under Conn4 when every passable cost is at least 1.
// Under Conn8 it can; pair Conn8 with the euclidean heuristic.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: Parse met a character it does not know.
package gridgraph
