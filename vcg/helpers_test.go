// SPDX-License-Identifier: MIT
// Package vcg_test contains fixtures shared by the payment tests.
package vcg_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcgpath/core"
)

type edge struct {
	from, to string
	w        float64
}

// build creates a graph from literal edges; isolated lists extra vertices.
func build(t *testing.T, directed bool, edges []edge, isolated ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w, core.WithEdgeAttr("bid", e.from+e.to))
		require.NoError(t, err)
	}
	for _, v := range isolated {
		require.NoError(t, g.AddVertex(v))
	}

	return g
}

// auction is the undirected a–d example.
func auction(t *testing.T) *core.Graph {
	return build(t, false, []edge{
		{"a", "b", 3}, {"a", "c", 5}, {"a", "d", 10},
		{"b", "c", 1}, {"b", "d", 4}, {"c", "d", 1},
	})
}

// relay is the directed s–t example.
func relay(t *testing.T) *core.Graph {
	return build(t, true, []edge{{"s", "v", 2}, {"v", "t", 3}, {"s", "t", 6}})
}

// edgeRecord projects an edge including record identity and its attribute map.
type edgeRecord struct {
	ID, From, To string
	Weight       float64
	Attrs        string
	Ptr          string
}

// snapshot captures everything the calculator must leave untouched.
func snapshot(g *core.Graph) ([]string, []edgeRecord) {
	var out []edgeRecord
	for _, e := range g.Edges() {
		out = append(out, edgeRecord{
			ID: e.ID, From: e.From, To: e.To, Weight: e.Weight,
			Attrs: fmt.Sprintf("%p %v", e.Attrs, e.Attrs),
			Ptr:   fmt.Sprintf("%p", e),
		})
	}

	return g.Vertices(), out
}

func requireUnchanged(t *testing.T, g *core.Graph, vs []string, es []edgeRecord) {
	t.Helper()
	gotV, gotE := snapshot(g)
	require.Equal(t, vs, gotV, "vertex set changed")
	require.Equal(t, es, gotE, "edge records changed")
}
