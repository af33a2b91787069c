// SPDX-License-Identifier: MIT
package gridgraph

// Connectivity selects which neighbouring cells are joined by a road.
type Connectivity int

const (
	// Conn4 joins orthogonal neighbours (N, E, S, W).
	Conn4 Connectivity = iota
	// Conn8 also joins diagonal neighbours.
	Conn8
)

// Terrain characters understood by Parse.
const (
	OpenCell = '.'
	WallCell = '#'
)

// Cell addresses one grid position.
type Cell struct {
	Row, Col int
	Value    int // terrain cost; below the threshold means blocked
}

// GridOptions configures how a grid becomes a road map.
type GridOptions struct {
	// PassableThreshold is the minimum value a cell needs to carry a city.
	PassableThreshold int

	// Conn selects 4- or 8-neighbour roads.
	Conn Connectivity

	// Spacing is the distance between adjacent cell centres.
	Spacing float64
}

// DefaultGridOptions returns threshold 1, Conn4 and unit spacing.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassableThreshold: 1,
		Conn:              Conn4,
		Spacing:           1,
	}
}

// GridGraph is a validated, immutable copy of a terrain grid.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int // [row][col]
	Conn          Connectivity
	Threshold     int
	Spacing       float64

	neighborOffsets [][2]int // {dRow, dCol}
}
