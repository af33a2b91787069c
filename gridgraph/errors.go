// SPDX-License-Identifier: MIT
package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates that the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")

	// ErrNonRectangular indicates that rows have differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")

	// ErrBadCell indicates an unknown character in a textual grid.
	ErrBadCell = errors.New("gridgraph: unknown terrain character")

	// ErrBadSpacing indicates a non-positive or non-finite cell spacing.
	ErrBadSpacing = errors.New("gridgraph: spacing must be positive and finite")
)
