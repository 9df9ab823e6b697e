// SPDX-License-Identifier: MIT
// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, directed/undirected traversal, the
// lexicographic tie-break, thresholds and search bounds.
package dijkstra_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcgpath/core"
	"github.com/katalvlaran/vcgpath/dijkstra"
)

// edge is a compact fixture literal.
type edge struct {
	from, to string
	w        float64
}

func build(t *testing.T, directed bool, edges ...edge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

// auctionGraph is the undirected a–d example: cheapest a→d is a-b-c-d at 5.
func auctionGraph(t *testing.T) *core.Graph {
	return build(t, false,
		edge{"a", "b", 3}, edge{"a", "c", 5}, edge{"a", "d", 10},
		edge{"b", "c", 1}, edge{"b", "d", 4}, edge{"c", "d", 1},
	)
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewGraph())
	if err != dijkstra.ErrEmptySource {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestShortestPath_Validation(t *testing.T) {
	g := auctionGraph(t)

	_, err := dijkstra.ShortestPath(nil, "a", "d")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
	_, err = dijkstra.ShortestPath(g, "", "d")
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
	_, err = dijkstra.ShortestPath(g, "a", "")
	require.ErrorIs(t, err, dijkstra.ErrEmptyTarget)
	_, err = dijkstra.ShortestPath(g, "zz", "d")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = dijkstra.ShortestPath(g, "a", "zz")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	require.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
	require.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN())(&dijkstra.Options{}) })
	require.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{}) })
	require.Panics(t, func() { dijkstra.WithEpsilon(-1e-9)(&dijkstra.Options{}) })
	require.Panics(t, func() { dijkstra.WithEpsilon(math.Inf(1))(&dijkstra.Options{}) })
	require.Panics(t, func() { dijkstra.WithMaxExpansions(-1)(&dijkstra.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Paths and distances
// ------------------------------------------------------------------------

func TestShortestPath_Undirected(t *testing.T) {
	p, err := dijkstra.ShortestPath(auctionGraph(t), "a", "d")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "d"}, p.Vertices)
	require.Equal(t, 5.0, p.Cost)
	require.Equal(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}}, p.Edges())
}

func TestShortestPath_DirectedRespectsOrientation(t *testing.T) {
	g := build(t, true, edge{"s", "v", 2}, edge{"v", "t", 3}, edge{"s", "t", 6})

	p, err := dijkstra.ShortestPath(g, "s", "t")
	require.NoError(t, err)
	require.Equal(t, []string{"s", "v", "t"}, p.Vertices)
	require.Equal(t, 5.0, p.Cost)

	back, err := dijkstra.ShortestPath(g, "t", "s")
	require.NoError(t, err, "unreachable is not an error")
	require.False(t, back.Reachable())
	require.Nil(t, back.Vertices)
	require.True(t, math.IsInf(back.Cost, 1))
	require.Nil(t, back.Edges())
}

func TestShortestPath_SourceEqualsTarget(t *testing.T) {
	p, err := dijkstra.ShortestPath(auctionGraph(t), "b", "b")
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, p.Vertices)
	require.Zero(t, p.Cost)
	require.Nil(t, p.Edges())
}

func TestDijkstra_DistancesAndPredecessors(t *testing.T) {
	g := auctionGraph(t)
	require.NoError(t, g.AddVertex("z"))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("a"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, 0.0, dist["a"])
	require.Equal(t, 3.0, dist["b"])
	require.Equal(t, 4.0, dist["c"])
	require.Equal(t, 5.0, dist["d"])
	require.True(t, math.IsInf(dist["z"], 1))
	require.Equal(t, map[string]string{"a": "", "b": "a", "c": "b", "d": "c", "z": ""}, prev)

	_, prev, err = dijkstra.Dijkstra(g, dijkstra.Source("a"))
	require.NoError(t, err)
	require.Nil(t, prev)
}

func TestShortestPath_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, p.Vertices)
}

// ------------------------------------------------------------------------
// 3. Tie-break
// ------------------------------------------------------------------------

func TestShortestPath_TieBreakLexicographic(t *testing.T) {
	// Insertion order deliberately favors the lexicographically larger route.
	g := build(t, false,
		edge{"a", "c", 1}, edge{"c", "d", 1},
		edge{"a", "b", 1}, edge{"b", "d", 1},
	)
	for i := 0; i < 20; i++ {
		p, err := dijkstra.ShortestPath(g, "a", "d")
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b", "d"}, p.Vertices, "run %d", i)
	}
}

func TestShortestPath_TieBreakZeroWeight(t *testing.T) {
	// [s a b] and [s b] both cost 1; [s a b] is smaller at position 1.
	g := build(t, false, edge{"s", "b", 1}, edge{"s", "a", 1}, edge{"a", "b", 0})
	p, err := dijkstra.ShortestPath(g, "s", "b")
	require.NoError(t, err)
	require.Equal(t, []string{"s", "a", "b"}, p.Vertices)
	require.Equal(t, 1.0, p.Cost)
}

func TestShortestPath_TieBreakShorterLabelWins(t *testing.T) {
	// [s t] vs [s x t]: "t" < "x" at position 1.
	g := build(t, true, edge{"s", "x", 1}, edge{"x", "t", 1}, edge{"s", "t", 2})
	p, err := dijkstra.ShortestPath(g, "s", "t")
	require.NoError(t, err)
	require.Equal(t, []string{"s", "t"}, p.Vertices)
}

func TestShortestPath_Epsilon(t *testing.T) {
	g := build(t, false,
		edge{"A", "B", 1}, edge{"B", "D", 1.0000001},
		edge{"A", "C", 1}, edge{"C", "D", 1},
	)

	exact, err := dijkstra.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "D"}, exact.Vertices)

	loose, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithEpsilon(1e-6))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D"}, loose.Vertices)
	require.InDelta(t, 2.0000001, loose.Cost, 1e-12)
}

// TestShortestPath_MatchesBruteForce compares against exhaustive enumeration of
// simple paths on small random graphs with positive integer weights.
func TestShortestPath_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ids := []string{"a", "b", "c", "d", "e", "f"}
	for round := 0; round < 200; round++ {
		directed := round%2 == 1
		g := core.NewGraph(core.WithDirected(directed))
		for _, id := range ids {
			require.NoError(t, g.AddVertex(id))
		}
		for i := range ids {
			for j := range ids {
				if i == j || rng.Intn(3) != 0 {
					continue
				}
				_, err := g.AddEdge(ids[i], ids[j], float64(1+rng.Intn(3)))
				require.NoError(t, err)
			}
		}

		p, err := dijkstra.ShortestPath(g, "a", "f")
		require.NoError(t, err)
		wantPath, wantCost := bruteForce(g, "a", "f")
		require.Equal(t, wantPath, p.Vertices, "round %d", round)
		require.Equal(t, wantCost, p.Cost, "round %d", round)
	}
}

// bruteForce enumerates simple paths and returns the cheapest, lexicographically
// smallest one (nil, +Inf if none).
func bruteForce(g *core.Graph, s, t string) ([]string, float64) {
	var best []string
	bestCost := math.Inf(1)
	onPath := map[string]bool{s: true}
	var walk func(path []string, cost float64)
	walk = func(path []string, cost float64) {
		u := path[len(path)-1]
		if u == t {
			if cost < bestCost || (cost == bestCost && less(path, best)) {
				best = append([]string(nil), path...)
				bestCost = cost
			}
			return
		}
		nbs, _ := g.Neighbors(u)
		for _, e := range nbs {
			v := e.Other(u)
			if onPath[v] {
				continue
			}
			onPath[v] = true
			walk(append(path, v), cost+e.Weight)
			onPath[v] = false
		}
	}
	walk([]string{s}, 0)

	return best, bestCost
}

func less(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// ------------------------------------------------------------------------
// 4. Thresholds and bounds
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	g := build(t, false, edge{"A", "B", 1}, edge{"B", "C", 1}, edge{"C", "D", 1})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	require.Equal(t, 2.0, dist["C"])
	require.True(t, math.IsInf(dist["D"], 1))
}

func TestShortestPath_InfThresholdMakesWall(t *testing.T) {
	g := build(t, false, edge{"A", "B", 5}, edge{"A", "C", 1}, edge{"C", "B", 1})
	p, err := dijkstra.ShortestPath(g, "A", "B", dijkstra.WithInfEdgeThreshold(1))
	require.NoError(t, err)
	require.False(t, p.Reachable())

	p, err = dijkstra.ShortestPath(g, "A", "B", dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "B"}, p.Vertices)
}

func TestShortestPath_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dijkstra.ShortestPath(auctionGraph(t), "a", "d", dijkstra.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestShortestPath_MaxExpansions(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		_, err := g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
		require.NoError(t, err)
	}

	_, err := dijkstra.ShortestPath(g, "v0", "v4", dijkstra.WithMaxExpansions(2))
	require.True(t, errors.Is(err, dijkstra.ErrExpansionLimit), "got %v", err)

	p, err := dijkstra.ShortestPath(g, "v0", "v4", dijkstra.WithMaxExpansions(5))
	require.NoError(t, err)
	require.Equal(t, 4.0, p.Cost)
}
