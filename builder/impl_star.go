// SPDX-License-Identifier: MIT
//
// File: impl_star.go
// Role: Star(n) and Complete(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/vcgpath/core"
)

// Star returns a Constructor for a hub "Center" with n-1 leaves cfg.idFn(1..n-1).
// Every leaf-to-leaf route passes through the hub, so both of its edges are
// bottlenecks. Directed graphs get arcs in both directions.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, CenterVertexID, err)
		}
		if err := addVertices(g, cfg, MethodStar, 1, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := emit(g, cfg, MethodStar, CenterVertexID, cfg.idFn(i), true); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n. Pairs are emitted for i asc, j > i
// asc; directed graphs get both arcs of every pair.
//
// Complexity: O(n) vertices + O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodComplete, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := emit(g, cfg, MethodComplete, cfg.idFn(i), cfg.idFn(j), true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
