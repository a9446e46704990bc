// SPDX-License-Identifier: MIT
//
// File: impl_grid.go
// Role: Grid(rows, cols), a two-way street grid.
// Model:
//   - Keys use the fixed scheme "R<r>C<c>" (cfg.idFn is ignored) and the
//     vertex sits at X=c, Y=r.
//   - For each cell in row-major order emit right then down, each as a
//     two-way pair (forward first).
// Complexity:
//   - O(rows·cols) vertices and O(4·rows·cols) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "R%dC%d"
)

// GridKey returns the key Grid assigns to cell (r, c).
func GridKey(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := core.Vertex{Key: GridKey(r, c), X: float64(c), Y: float64(r)}
				if err := addVertex(g, methodGrid, v); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				here := GridKey(r, c)
				if c+1 < cols {
					if err := addTwoWay(g, methodGrid, cfg, here, GridKey(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addTwoWay(g, methodGrid, cfg, here, GridKey(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
