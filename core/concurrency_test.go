// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcgpath/core"
)

// TestExclusive_SerializesWithoutEdge runs many remove→check→restore rounds on a
// shared graph. Inside an Exclusive section a worker must observe exactly one
// missing edge: its own.
func TestExclusive_SerializesWithoutEdge(t *testing.T) {
	g := newSquare(t)
	vs, es := snapshot(t, g)
	pairs := [][2]string{
		{VertexA, VertexB}, {VertexB, VertexC}, {VertexC, VertexD}, {VertexD, VertexA}, {VertexA, VertexC},
	}

	var wg sync.WaitGroup
	errs := make(chan error, NWorkers)
	wg.Add(NWorkers)
	for w := 0; w < NWorkers; w++ {
		go func(w int) {
			defer wg.Done()
			for r := 0; r < NRounds; r++ {
				p := pairs[(w+r)%len(pairs)]
				err := g.Exclusive(func() error {
					return g.WithoutEdge(p[0], p[1], func() error {
						if n := g.EdgeCount(); n != len(es)-1 {
							return fmt.Errorf("worker %d round %d: saw %d edges", w, r, n)
						}
						if g.HasEdge(p[0], p[1]) {
							return fmt.Errorf("worker %d round %d: %s-%s still present", w, r, p[0], p[1])
						}

						return nil
					})
				})
				if err != nil {
					errs <- err
					return
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

// TestConcurrentReadersDuringExclusive mixes readers (Neighbors, Clone, Stats)
// with exclusive remove/restore rounds. It passes when the race detector is quiet
// and the graph ends up intact.
func TestConcurrentReadersDuringExclusive(t *testing.T) {
	g := newSquare(t)
	vs, es := snapshot(t, g)

	var wg sync.WaitGroup
	wg.Add(2 * NWorkers)
	for w := 0; w < NWorkers; w++ {
		go func() {
			defer wg.Done()
			for r := 0; r < NRounds; r++ {
				_ = g.Exclusive(func() error {
					return g.WithoutEdge(VertexA, VertexC, func() error { return nil })
				})
			}
		}()
		go func() {
			defer wg.Done()
			for r := 0; r < NRounds; r++ {
				_, _ = g.Neighbors(VertexA)
				_ = g.Clone()
				_ = g.Stats()
			}
		}()
	}
	wg.Wait()

	requireUnchanged(t, g, vs, es)
}

// TestSnapshotDuringExclusive races Snapshot against exclusive remove/restore
// rounds. Every snapshot must contain the full edge set.
func TestSnapshotDuringExclusive(t *testing.T) {
	g := newSquare(t)
	vs, es := snapshot(t, g)

	var wg sync.WaitGroup
	errs := make(chan error, NWorkers)
	wg.Add(2 * NWorkers)
	for w := 0; w < NWorkers; w++ {
		go func() {
			defer wg.Done()
			for r := 0; r < NRounds; r++ {
				_ = g.Exclusive(func() error {
					return g.WithoutEdge(VertexA, VertexC, func() error { return nil })
				})
			}
		}()
		go func(w int) {
			defer wg.Done()
			for r := 0; r < NRounds; r++ {
				s := g.Snapshot()
				if n := s.EdgeCount(); n != len(es) || !s.HasEdge(VertexA, VertexC) {
					errs <- fmt.Errorf("worker %d round %d: snapshot has %d edges", w, r, n)
					return
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

// TestConcurrentAddEdge ensures concurrent AddEdge calls on distinct pairs all land.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge(VertexX, fmt.Sprintf("V%d", id), float64(id))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(VertexX)
	require.NoError(t, err)
	require.Len(t, nbs, num)
}
