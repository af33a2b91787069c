// SPDX-License-Identifier: MIT
package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/dfs"
)

// ExampleIterativeDeepening shows each limit tried on the square map
// until a limit of 3 admits the two-road route A -> B -> D.
func ExampleIterativeDeepening() {
	g := core.NewGraph()
	for _, r := range []struct {
		a, b string
		cost float64
	}{
		{"A", "B", 17}, {"A", "C", 12}, {"B", "C", 1}, {"B", "D", 13}, {"C", "D", 11},
	} {
		na, _ := g.AddNode(r.a)
		nb, _ := g.AddNode(r.b)
		_, _ = g.Connect(na, nb, r.cost)
	}
	a, _ := g.Node("A")
	d, _ := g.Node("D")

	p, err := dfs.IterativeDeepening(a, d, 0, dfs.WithOnDeepen(func(limit int) {
		fmt.Println("limit", limit)
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s (cost %g)\n", p, p.Cost())

	// Output:
	// limit 1
	// limit 2
	// limit 3
	// A -> B -> D (cost 30)
}
