// SPDX-License-Identifier: MIT
//
// File: impl_random_sparse.go
// Role: RandomSparse(n, p).
//
// Model: each admissible edge is included independently with probability p.
//   - Undirected: unordered pairs {i,j}, i<j.
//   - Directed: ordered pairs (i,j); self-loops only if g.Looped().
//
// Determinism: trials run for i asc, j asc, so a fixed seed yields a fixed graph.
// Complexity: O(n) vertices + O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vcgpath/core"
)

// RandomSparse returns a Constructor that samples a graph over n vertices.
// The RNG is required unless p is exactly 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", MethodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, MethodRandomSparse, 0, n); err != nil {
			return err
		}

		include := func() bool {
			switch {
			case p == 0:
				return false
			case p == 1:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}
		directed, loops := g.Directed(), g.Looped()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !include() {
					continue
				}
				if err := emit(g, cfg, MethodRandomSparse, cfg.idFn(i), cfg.idFn(j), false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
