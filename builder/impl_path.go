// SPDX-License-Identifier: MIT
//
// File: impl_path.go
// Role: Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2; Cycle: n ≥ 3 (else ErrTooFewVertices).
//   - Vertices cfg.idFn(0..n-1) in ascending index order.
//   - Edges (i-1)→i for i=1..n-1; Cycle adds (n-1)→0.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vcgpath/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodPath, 0, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := emit(g, cfg, MethodPath, cfg.idFn(i-1), cfg.idFn(i), false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
// On directed graphs the cycle runs 0→1→…→(n-1)→0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodCycle, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := emit(g, cfg, MethodCycle, cfg.idFn(i), cfg.idFn((i+1)%n), false); err != nil {
				return err
			}
		}

		return nil
	}
}
