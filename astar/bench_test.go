// SPDX-License-Identifier: MIT
package astar_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/rotas/astar"
	"github.com/katalvlaran/rotas/core"
)

// BenchmarkSearch_Grid measures corner-to-corner search on a 100×100 grid
// of Computed cities with unit roads.
func BenchmarkSearch_Grid(b *testing.B) {
	const n = 100
	g := core.NewGraph()
	name := func(i, j int) string { return fmt.Sprintf("%d_%d", i, j) }
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_, _ = g.AddNode(name(i, j), core.WithPoint(float64(j), float64(i)), core.WithMode(core.Computed))
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j+1 < n {
				_, _ = g.AddEdge(name(i, j), name(i, j+1), 1)
			}
			if i+1 < n {
				_, _ = g.AddEdge(name(i, j), name(i+1, j), 1)
			}
		}
	}
	src, _ := g.Node(name(0, 0))
	dst, _ := g.Node(name(n-1, n-1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(src, dst)
	}
}
