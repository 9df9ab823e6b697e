// SPDX-License-Identifier: MIT
// Package vcg_test verifies computations sharing one graph and batch mode.
package vcg_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcgpath/builder"
	"github.com/katalvlaran/vcgpath/core"
	"github.com/katalvlaran/vcgpath/vcg"
)

const nWorkers = 16

func ladder(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithIntWeight(1, 4), builder.WithPaddedIDs("v", 2)},
		builder.Ladder(6),
	)
	require.NoError(t, err)

	return g
}

// TestComputePayments_SharedGraph runs many computations against the same
// instance. With either isolation policy every worker must see the result a
// lone computation sees, and the graph must end up untouched.
func TestComputePayments_SharedGraph(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts []vcg.Option
	}{
		{"exclusive", nil},
		{"private copy", []vcg.Option{vcg.WithPrivateCopy()}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := ladder(t)
			vs, es := snapshot(g)
			calc := vcg.New(tc.opts...)

			want, err := calc.ComputePayments(context.Background(), g, "v00", "v11")
			require.NoError(t, err)

			results := make([]*vcg.PaymentResult, nWorkers)
			errs := make([]error, nWorkers)
			var wg sync.WaitGroup
			wg.Add(nWorkers)
			for w := 0; w < nWorkers; w++ {
				go func(w int) {
					defer wg.Done()
					results[w], errs[w] = calc.ComputePayments(context.Background(), g, "v00", "v11")
				}(w)
			}
			wg.Wait()

			for w := 0; w < nWorkers; w++ {
				require.NoError(t, errs[w], "worker %d", w)
				require.Empty(t, cmp.Diff(want, results[w]), "worker %d", w)
			}
			requireUnchanged(t, g, vs, es)
		})
	}
}

// TestMixedIsolation runs in-place computations alongside private-copy and
// batch computations on one graph. The copies must never capture an edge the
// in-place computations have temporarily removed.
func TestMixedIsolation(t *testing.T) {
	const rounds = 200
	g := auction(t)
	vs, es := snapshot(g)
	inPlace := vcg.New()
	private := vcg.New(vcg.WithPrivateCopy())
	batch := vcg.New(vcg.WithConcurrency(2))

	want, err := inPlace.ComputePayments(context.Background(), g, "a", "d")
	require.NoError(t, err)
	queries := []vcg.Query{{Source: "a", Target: "d"}, {Source: "a", Target: "d"}}

	var wg sync.WaitGroup
	errs := make(chan error, 3*nWorkers)
	wg.Add(3 * nWorkers)
	for w := 0; w < nWorkers; w++ {
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				if _, err := inPlace.ComputePayments(context.Background(), g, "a", "d"); err != nil {
					errs <- err
					return
				}
			}
		}()
		go func(w int) {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				got, err := private.ComputePayments(context.Background(), g, "a", "d")
				if err != nil {
					errs <- err
					return
				}
				if diff := cmp.Diff(want, got); diff != "" {
					errs <- fmt.Errorf("private copy worker %d round %d (-want +got):\n%s", w, r, diff)
					return
				}
			}
		}(w)
		go func(w int) {
			defer wg.Done()
			for r := 0; r < rounds/10; r++ {
				out, err := batch.ComputeBatch(context.Background(), g, queries)
				if err != nil {
					errs <- err
					return
				}
				for _, br := range out {
					if br.Err != nil {
						errs <- br.Err
						return
					}
					if diff := cmp.Diff(want, br.Result); diff != "" {
						errs <- fmt.Errorf("batch worker %d round %d (-want +got):\n%s", w, r, diff)
						return
					}
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	requireUnchanged(t, g, vs, es)
}

func TestComputeBatch(t *testing.T) {
	g := auction(t)
	require.NoError(t, g.AddVertex("island"))
	vs, es := snapshot(g)

	queries := []vcg.Query{
		{Source: "a", Target: "d"},
		{Source: "d", Target: "a"},
		{Source: "a", Target: "island"},
		{Source: "a", Target: "nowhere"},
		{Source: "b", Target: "c"},
	}
	out, err := vcg.New(vcg.WithConcurrency(2)).ComputeBatch(context.Background(), g, queries)
	require.NoError(t, err)
	require.Len(t, out, len(queries))

	for i, r := range out {
		require.Equal(t, queries[i], r.Query)
	}
	require.NoError(t, out[0].Err)
	require.Equal(t, 9.0, out[0].Result.TotalPayment())
	require.NoError(t, out[1].Err)
	require.Equal(t, []string{"d", "c", "b", "a"}, out[1].Result.Path)
	require.ErrorIs(t, out[2].Err, vcg.ErrNoPath)
	require.ErrorIs(t, out[3].Err, core.ErrVertexNotFound)
	require.NoError(t, out[4].Err)
	// b-c costs 1; without it the best b→c route is b-a-c (8) or b-d-c (5).
	require.Equal(t, 5.0, out[4].Result.Payment("c", "b"))

	requireUnchanged(t, g, vs, es)
}

func TestComputeBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := vcg.New().ComputeBatch(ctx, auction(t), []vcg.Query{{Source: "a", Target: "d"}})
	require.ErrorIs(t, err, context.Canceled)

	_, err = vcg.New().ComputeBatch(context.Background(), nil, nil)
	require.ErrorIs(t, err, vcg.ErrNilGraph)
}
