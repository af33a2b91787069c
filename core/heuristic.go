// SPDX-License-Identifier: MIT
//
// File: heuristic.go
// Role: Geometry and the dual-mode heuristic provider.

package core

import "math"

// HeuristicFunc estimates the remaining cost from n to dest.
// Informed searches accept one so callers can swap the estimate source.
type HeuristicFunc func(n, dest *Node) float64

// NodeEstimate is the default HeuristicFunc: it defers to n.Estimate(dest).
func NodeEstimate(n, dest *Node) float64 { return n.Estimate(dest) }

// Zero is an admissible heuristic that never guides the search.
func Zero(_, _ *Node) float64 { return 0 }

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Estimate returns the heuristic estimate from n toward dest.
//
// Computed nodes return Manhattan(n, dest). Supplied nodes return the stored
// value regardless of dest; callers are expected to have set 0 on the real
// destination and positive values elsewhere.
//
// Complexity: O(1).
func (n *Node) Estimate(dest *Node) float64 {
	if n.mode == Computed {
		if dest == nil {
			return 0
		}

		return Manhattan(n.point, dest.point)
	}

	return n.SuppliedEstimate()
}
