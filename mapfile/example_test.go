// SPDX-License-Identifier: MIT
package mapfile_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rotas/astar"
	"github.com/katalvlaran/rotas/mapfile"
)

// ExampleLoad reads a map, finds the implied destination and routes to it
// with the supplied estimates.
func ExampleLoad() {
	src := `cidade A
cidade B
cidade C
estrada A B 5
estrada B C 5
estrada A C 20
estimativa A 9
estimativa B 4
estimativa C 0`

	m, err := mapfile.Load(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	a, _ := m.City("A")
	dest, _ := m.Destination()

	p, _ := astar.Search(a, dest)
	fmt.Printf("%s (cost %g)\n", p, p.Cost())
	// Output:
	// A -> B -> C (cost 10)
}
