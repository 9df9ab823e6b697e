// SPDX-License-Identifier: MIT
//
// File: impl_grid.go
// Role: Grid(rows, cols) and Ladder(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/vcgpath/core"
)

// gridIDFmt is the fixed coordinate ID scheme "r,c"; Grid ignores cfg.idFn.
const gridIDFmt = "%d,%d"

// Grid returns a Constructor for a rows×cols 4-neighborhood grid.
// Cells are added row-major; for each cell the right edge is emitted before
// the bottom edge. Directed graphs get both arcs of every edge.
//
// Complexity: O(R·C) vertices + O(R·C) edges.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", MethodGrid, id, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := emit(g, cfg, MethodGrid, u, fmt.Sprintf(gridIDFmt, r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := emit(g, cfg, MethodGrid, u, fmt.Sprintf(gridIDFmt, r+1, c), true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Ladder returns a Constructor for a ladder with n rungs.
//
// The top rail is cfg.idFn(0..n-1), the bottom rail cfg.idFn(n..2n-1); rung i
// joins idFn(i) and idFn(n+i). Rails run left to right on directed graphs,
// rungs get both arcs.
//
// Complexity: O(n) vertices + O(3n) edges.
func Ladder(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinLadderRungs {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodLadder, n, MinLadderRungs, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodLadder, 0, 2*n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if i > 0 {
				if err := emit(g, cfg, MethodLadder, cfg.idFn(i-1), cfg.idFn(i), false); err != nil {
					return err
				}
				if err := emit(g, cfg, MethodLadder, cfg.idFn(n+i-1), cfg.idFn(n+i), false); err != nil {
					return err
				}
			}
			if err := emit(g, cfg, MethodLadder, cfg.idFn(i), cfg.idFn(n+i), true); err != nil {
				return err
			}
		}

		return nil
	}
}
