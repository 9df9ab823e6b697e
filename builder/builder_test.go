// SPDX-License-Identifier: MIT
// Package builder_test verifies topology, counts, determinism and parameter
// validation of the graph constructors.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcgpath/builder"
	"github.com/katalvlaran/vcgpath/core"
)

func TestBuilders_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		gopts        []core.GraphOption
		ctor         builder.Constructor
		wantV, wantE int
	}{
		{"Path(5)", nil, builder.Path(5), 5, 4},
		{"Cycle(5)", nil, builder.Cycle(5), 5, 5},
		{"Star(6)", nil, builder.Star(6), 6, 5},
		{"Star(6) directed", []core.GraphOption{core.WithDirected(true)}, builder.Star(6), 6, 10},
		{"Complete(5)", nil, builder.Complete(5), 5, 10},
		{"Complete(4) directed", []core.GraphOption{core.WithDirected(true)}, builder.Complete(4), 4, 12},
		{"Grid(3,4)", nil, builder.Grid(3, 4), 12, 17},
		{"Ladder(4)", nil, builder.Ladder(4), 8, 10},
		{"Ladder(4) directed", []core.GraphOption{core.WithDirected(true)}, builder.Ladder(4), 8, 14},
		{"RandomSparse(6,1)", nil, builder.RandomSparse(6, 1), 6, 15},
		{"RandomSparse(6,0)", nil, builder.RandomSparse(6, 0), 6, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.gopts, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

func TestBuilders_Validation(t *testing.T) {
	cases := []struct {
		ctor builder.Constructor
		want error
	}{
		{builder.Path(1), builder.ErrTooFewVertices},
		{builder.Cycle(2), builder.ErrTooFewVertices},
		{builder.Star(1), builder.ErrTooFewVertices},
		{builder.Complete(0), builder.ErrTooFewVertices},
		{builder.Grid(0, 3), builder.ErrTooFewVertices},
		{builder.Ladder(1), builder.ErrTooFewVertices},
		{builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		{builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{nil, builder.ErrConstructFailed},
	}
	for _, c := range cases {
		_, err := builder.BuildGraph(nil, nil, c.ctor)
		require.ErrorIs(t, err, c.want)
	}
}

func TestBuilders_DeterministicPerSeed(t *testing.T) {
	build := func(seed int64) []*core.Edge {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(true)},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(1, 9)},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)

		return g.Edges()
	}

	a, b := build(42), build(42)
	require.Equal(t, len(a), len(b))
	for i := range a {
		require.Equal(t, a[i].From, b[i].From)
		require.Equal(t, a[i].To, b[i].To)
		require.Equal(t, a[i].Weight, b[i].Weight)
	}
}

func TestBuilders_LadderTopology(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Ladder(3))
	require.NoError(t, err)
	// Top rail A-B-C, bottom rail D-E-F, rungs A-D, B-E, C-F.
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"D", "E"}, {"E", "F"}, {"A", "D"}, {"B", "E"}, {"C", "F"}} {
		require.True(t, g.HasEdge(pair[0], pair[1]), "%v", pair)
	}
	require.False(t, g.HasEdge("A", "E"))
}

func TestBuilders_GridIDs(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	require.Equal(t, []string{"0,0", "0,1", "1,0", "1,1"}, g.Vertices())
	require.True(t, g.HasEdge("0,0", "1,0"))
	require.False(t, g.HasEdge("0,0", "1,1"))
}

func TestFromSpec(t *testing.T) {
	ctor, err := builder.FromSpec(builder.Spec{Kind: builder.MethodGrid, Rows: 2, Cols: 3})
	require.NoError(t, err)
	g, err := builder.BuildGraph(nil, nil, ctor)
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())

	_, err = builder.FromSpec(builder.Spec{Kind: "hexagram"})
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestIDFns(t *testing.T) {
	require.Equal(t, "A", builder.ExcelColumnIDFn(0))
	require.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	require.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	require.Equal(t, "v007", builder.PaddedIDFn("v", 3)(7))
	require.Equal(t, "12", builder.DefaultIDFn(12))
	require.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		w := builder.IntWeightFn(2, 4)(rng)
		require.Contains(t, []float64{2, 3, 4}, w)

		u := builder.UniformWeightFn(1, 2)(rng)
		require.GreaterOrEqual(t, u, 1.0)
		require.Less(t, u, 2.0)

		require.GreaterOrEqual(t, builder.ExponentialWeightFn(0.5)(rng), 0.0)
	}
	require.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(3, 5)(nil))
	require.Equal(t, 7.0, builder.ConstantWeightFn(7)(rng))
	require.Panics(t, func() { builder.ConstantWeightFn(-1) })
	require.Panics(t, func() { builder.IntWeightFn(3, 1) })
	require.Panics(t, func() { builder.ExponentialWeightFn(0) })
}
