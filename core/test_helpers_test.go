// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep concurrency tests free of *testing.T usage inside goroutines.

package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcgpath/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight0   = 0.0
	Weight1   = 1.0
	Weight2   = 2.0
	Weight3   = 3.0
	Weight2_5 = 2.5
)

// Concurrency sizes.
const (
	NWorkers = 16
	NRounds  = 50
)

// edgeState is a comparable projection of one edge record.
type edgeState struct {
	ID       string
	From, To string
	Weight   float64
	Directed bool
	Attrs    map[string]interface{}
	Ptr      string // record identity
}

// snapshot captures vertices and edge records (including record identity) of g.
func snapshot(t *testing.T, g *core.Graph) ([]string, []edgeState) {
	t.Helper()
	var out []edgeState
	for _, e := range g.Edges() {
		out = append(out, edgeState{
			ID: e.ID, From: e.From, To: e.To, Weight: e.Weight,
			Directed: e.Directed, Attrs: e.Attrs, Ptr: fmt.Sprintf("%p", e),
		})
	}

	return g.Vertices(), out
}

// requireUnchanged fails unless g matches the snapshot taken earlier.
func requireUnchanged(t *testing.T, g *core.Graph, vertices []string, edges []edgeState) {
	t.Helper()
	gotV, gotE := snapshot(t, g)
	require.Equal(t, vertices, gotV, "vertex set changed")
	require.Equal(t, edges, gotE, "edge records changed")
}

// newSquare builds the undirected square A-B-C-D-A with a diagonal A-C.
//
//	A ─1─ B
//	│ ╲   │
//	3  2.5 1
//	│    ╲│
//	D ─2─ C
func newSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	mustAdd(t, g, VertexA, VertexB, Weight1)
	mustAdd(t, g, VertexB, VertexC, Weight1)
	mustAdd(t, g, VertexC, VertexD, Weight2)
	mustAdd(t, g, VertexD, VertexA, Weight3)
	mustAdd(t, g, VertexA, VertexC, Weight2_5, core.WithEdgeAttr("owner", "diag"))

	return g
}

// mustAdd adds an edge or fails the test.
func mustAdd(t *testing.T, g *core.Graph, from, to string, w float64, opts ...core.EdgeOption) string {
	t.Helper()
	id, err := g.AddEdge(from, to, w, opts...)
	require.NoError(t, err, "AddEdge(%s,%s,%g)", from, to, w)

	return id
}
