// SPDX-License-Identifier: MIT
// Package: rotas/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Model:
//   - 2D orthogonal grid of cities, each road joining a cell to its right
//     and bottom neighbours.
//   - City names use the fixed scheme "r,c" (row-major); cfg.idFn is not
//     consulted so coordinates stay readable.
//   - City (r,c) sits at (c*spacing, r*spacing).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cities are added row-major; for each cell the Right road is added
//     before the Bottom road.
//   - Road cost: cfg.costFn(cfg.rng, from, to). The default prices each
//     road at spacing, the Manhattan distance between neighbours.
//
// Complexity:
//   - Time: O(rows*cols).
//   - Space: O(rows*cols) for the row-major city index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rotas/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		cells := make([]*core.Node, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := gridCityID(r, c)
				n, err := g.AddNode(id,
					core.WithPoint(float64(c)*cfg.spacing, float64(r)*cfg.spacing),
					core.WithMode(cfg.mode),
				)
				if err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w: %w", MethodGrid, id, ErrConstructFailed, err)
				}
				cells = append(cells, n)
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cells[r*cols+c]
				if c+1 < cols {
					if err := connect(MethodGrid, g, cfg, u, cells[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(MethodGrid, g, cfg, u, cells[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
