// SPDX-License-Identifier: MIT
package gridgraph

// ConnectedComponents returns the islands of passable cells as lists of
// row-major indices. Islands are ordered by their first cell in row-major
// order; cells within one are in BFS discovery order.
//
// Complexity: O(W×H×d) time, O(W×H) memory.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			if !gg.Passable(r, c) {
				continue
			}
			i0 := gg.index(r, c)
			if seen[i0] {
				continue
			}

			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ur, uc := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vr, vc := ur+d[0], uc+d[1]
					if !gg.Passable(vr, vc) {
						continue
					}
					vi := gg.index(vr, vc)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}
