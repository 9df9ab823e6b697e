// SPDX-License-Identifier: MIT
//
// File: exclusive.go
// Role: Scoped mutation helpers: WithoutEdge (remove → fn → restore) and Exclusive
//       (per-graph serialization of multi-call sequences).
// Invariants:
//   - WithoutEdge restores on every exit path of fn: nil/non-nil return and panic.
//   - Exclusive never nests; calling it from inside fn on the same graph deadlocks.
//   - Snapshot never observes an edge removed inside another Exclusive section.

package core

import (
	"errors"
	"fmt"
)

// WithoutEdge temporarily removes the edge occupying from→to, runs fn, and puts
// the exact same record back before returning.
//
// Implementation:
//   - Stage 1: RemoveEdgeBetween(from, to); ErrEdgeNotFound is returned untouched
//     and fn is not called.
//   - Stage 2: Defer RestoreEdge(record) so it runs after fn on every exit path,
//     including a panic inside fn (the panic continues after restoration).
//   - Stage 3: Run fn; its error is returned, joined with any restoration error.
//
// Errors:
//   - ErrEdgeNotFound (wrapped) if the pair is empty.
//   - fn's error, errors.Join-ed with a restoration failure if one happens.
//
// Complexity: O(1) plus the cost of fn.
//
// Notes:
//   - WithoutEdge does not take muExclusive. Callers sharing a graph across
//     goroutines wrap the whole sequence in Exclusive, or work on a Clone.
func (g *Graph) WithoutEdge(from, to string, fn func() error) (err error) {
	removed, err := g.RemoveEdgeBetween(from, to)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := g.RestoreEdge(removed); rerr != nil {
			err = errors.Join(err, fmt.Errorf("core: restore edge %s (%s→%s): %w",
				removed.ID, removed.From, removed.To, rerr))
		}
	}()

	return fn()
}

// Exclusive runs fn while holding the graph's exclusive-section mutex.
//
// Individual Graph methods are already safe for concurrent use; Exclusive exists
// for sequences of calls that must not interleave with other such sequences,
// e.g. several WithoutEdge + search rounds computing a single result.
//
// Complexity: O(1) plus the cost of fn.
func (g *Graph) Exclusive(fn func() error) error {
	g.muExclusive.Lock()
	defer g.muExclusive.Unlock()

	return fn()
}

// Snapshot returns a Clone taken inside an exclusive section.
//
// A plain Clone may run between the remove and restore steps of another
// goroutine's Exclusive section and copy the graph with that edge missing.
// Snapshot waits for such sections to finish, so the copy always reflects
// the graph as callers built it.
//
// Complexity: O(V + E).
func (g *Graph) Snapshot() *Graph {
	g.muExclusive.Lock()
	defer g.muExclusive.Unlock()

	return g.Clone()
}
