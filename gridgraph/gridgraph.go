// SPDX-License-Identifier: MIT
package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/rotas/core"
)

// NewGridGraph validates values and returns a GridGraph over a deep copy.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrBadSpacing.
//
// Complexity: O(W×H).
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.Spacing <= 0 || math.IsInf(opts.Spacing, 0) || math.IsNaN(opts.Spacing) {
		return nil, fmt.Errorf("%w: %g", ErrBadSpacing, opts.Spacing)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}

	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	} else {
		offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		Threshold:       opts.PassableThreshold,
		Spacing:         opts.Spacing,
		neighborOffsets: offsets,
	}, nil
}

// Parse reads one grid row per non-blank line. Digits are cell costs,
// OpenCell is cost 1 and WallCell is 0; spaces and tabs are ignored.
func Parse(r io.Reader, opts GridOptions) (*GridGraph, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for _, ch := range text {
			switch {
			case ch == ' ' || ch == '\t':
				continue
			case ch >= '0' && ch <= '9':
				row = append(row, int(ch-'0'))
			case ch == OpenCell:
				row = append(row, 1)
			case ch == WallCell:
				row = append(row, 0)
			default:
				return nil, fmt.Errorf("line %d: %w %q", line, ErrBadCell, ch)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return NewGridGraph(rows, opts)
}

// LoadFile opens path and parses it with Parse.
func LoadFile(path string, opts GridOptions) (*GridGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gg, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return gg, nil
}

// InBounds reports whether (row, col) lies inside the grid.
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Height && col >= 0 && col < gg.Width
}

// Passable reports whether (row, col) is inside the grid and not blocked.
func (gg *GridGraph) Passable(row, col int) bool {
	return gg.InBounds(row, col) && gg.CellValues[row][col] >= gg.Threshold
}

// NeighborOffsets returns the {dRow, dCol} offsets for the configured
// connectivity, clockwise from north.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// CityName returns the name ToCoreGraph gives the cell at (row, col).
func CityName(row, col int) string {
	return fmt.Sprintf("%d,%d", row, col)
}

// ToCoreGraph builds the road map. Cities are added row-major; each city's
// roads to later cells are added in offset order, so every road appears once.
//
// Complexity: O(W×H×d).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph()
	nodes := make([]*core.Node, gg.Width*gg.Height)
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			if !gg.Passable(r, c) {
				continue
			}
			n, err := g.AddNode(CityName(r, c),
				core.WithPoint(float64(c)*gg.Spacing, float64(r)*gg.Spacing),
				core.WithMode(core.Computed),
			)
			if err != nil {
				return nil, err
			}
			nodes[gg.index(r, c)] = n
		}
	}

	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			u := nodes[gg.index(r, c)]
			if u == nil {
				continue
			}
			for _, d := range gg.neighborOffsets {
				nr, nc := r+d[0], c+d[1]
				if gg.index(nr, nc) <= gg.index(r, c) || !gg.Passable(nr, nc) {
					continue
				}
				if _, err := g.Connect(u, nodes[gg.index(nr, nc)], gg.roadCost(r, c, nr, nc)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

func (gg *GridGraph) roadCost(r, c, nr, nc int) float64 {
	cost := gg.Spacing * float64(gg.CellValues[r][c]+gg.CellValues[nr][nc]) / 2
	if r != nr && c != nc {
		cost *= math.Sqrt2
	}

	return cost
}

// index returns the row-major index of (row, col).
func (gg *GridGraph) index(row, col int) int {
	return row*gg.Width + col
}

// Coordinate converts a row-major index back to (row, col).
func (gg *GridGraph) Coordinate(idx int) (row, col int) {
	return idx / gg.Width, idx % gg.Width
}
