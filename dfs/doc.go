// SPDX-License-Identifier: MIT
//
// Package dfs implements depth-limited search and iterative deepening
// between two cities of a core.Graph.
//
// What:
//
//   - DepthLimited: descends depth-first from the origin, following each
//     node's roads in connection order (first road added is explored
//     first), and returns the first route that reaches the destination.
//     A limit bounds the level of nodes that may be expanded; the origin
//     sits at level 1 and a limit of 0 turns the bound off (plain DFS).
//   - IterativeDeepening: wraps DepthLimited in an outer loop over
//     limits 1, 2, … ceiling, returning the first success. A ceiling of 0
//     means DefaultCeiling.
//
// Frame checks:
//
//	Every candidate frame is checked in a fixed order: is it the
//	destination (success), was the node already visited (skip), has the
//	level reached the limit (skip). Only frames that pass all three are
//	marked visited and expanded. A visited node is never expanded twice
//	within one pass, so a route found late may not be the shortest.
//
// Implementation:
//
//	Recursion is replaced by an explicit stack of trail.Path frames. A
//	node's children are pushed in reverse so they pop in connection order,
//	which reproduces the order of a recursive descent exactly without
//	growing the goroutine stack on long chains.
//
// Complexity:
//
//   - DepthLimited:       O(V + E) time, O(V + E) memory.
//   - IterativeDeepening: O(L·(V + E)) time for L limits tried.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           hook on each expanded node and on the destination.
//   - WithOnDeepen(fn)          hook before each IterativeDeepening pass.
//   - WithFilterNeighbor(fn)    skip roads for which fn(curr,neighbor)==false.
//
// Errors:
//
//   - core.ErrNilNode           if origin or destination is nil.
//   - ErrOptionViolation        if limit or ceiling is negative.
//   - core.ErrNoPath            if no route is found within the bound.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit, wrapped.
package dfs
