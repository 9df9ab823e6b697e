// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: Breadth-first walker plus the BFS and Reachable entry points.

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order. Weights are ignored; the
// search answers connectivity questions cheaply before weighted work starts.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/vcgpath/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// errStop ends a Reachable search early once the target is seen.
var errStop = errors.New("bfs: stop")

type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID.
// Neighbors are expanded in sorted order, so Order and Parent are deterministic.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// a context error, or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Reachable reports whether target can be reached from source over edges
// accepted by the options. Both vertices must exist.
func Reachable(g *core.Graph, source, target string, opts ...Option) (bool, error) {
	if g != nil && !g.HasVertex(target) {
		return false, fmt.Errorf("bfs: target %q: %w", target, core.ErrVertexNotFound)
	}
	found := false
	opts = append(opts, WithOnVisit(func(id string, _ int) error {
		if id == target {
			found = true
			return errStop
		}
		return nil
	}))
	_, err := BFS(g, source, opts...)
	if err != nil && !errors.Is(err, errStop) {
		return false, err
	}

	return found, nil
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, e := range edges {
		if !w.opts.FilterEdge(e) {
			continue
		}
		nbr := e.Other(item.id)
		if !w.visited[nbr] {
			w.enqueue(nbr, next, item.id)
		}
	}

	return nil
}
