// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only configuration getters and Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

import "math"

// GraphStats is an immutable-by-convention snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Directed    bool    // edge orientation
	AllowsLoops bool    // loop policy
	VertexCount int     // |V|
	EdgeCount   int     // |E|
	TotalWeight float64 // Σ weights over all edges
	MinWeight   float64 // smallest edge weight; +Inf when E == 0
	MaxWeight   float64 // largest edge weight; 0 when E == 0
}

// Directed reports the orientation applied to every edge of the graph.
//
// Implementation:
//   - Stage 1: Acquire muVert read lock to observe configuration consistently.
//   - Stage 2: Return the immutable flag value.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Stats produces a deterministic, read-only snapshot of configuration flags and
// catalog sizes together with weight aggregates.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge count and scan weights, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously.
//   - Weight aggregates are computed in a single O(E) pass.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		MinWeight:   math.Inf(1),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges {
		stats.TotalWeight += e.Weight
		if e.Weight < stats.MinWeight {
			stats.MinWeight = e.Weight
		}
		if e.Weight > stats.MaxWeight {
			stats.MaxWeight = e.Weight
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
