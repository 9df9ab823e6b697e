// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Dijkstra runner with deterministic lexicographic tie-break, plus the
//       Dijkstra (single source) and ShortestPath (source→target) entry points.

package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/vcgpath/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (+Inf if unreachable or beyond MaxDistance).
//   - prev: predecessor map if ReturnPath is set (nil otherwise). prev[v] is the
//     vertex before v on the lexicographically smallest shortest path; "" for the
//     source and for unreachable vertices.
//   - err:  a sentinel error for invalid input, ErrExpansionLimit, or a wrapped
//     context error.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V · L) where L bounds the compared path length on ties.
//   - Space: O(V · L + E).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}

	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.predecessors(), nil
}

// ShortestPath returns the cheapest path from source to target. Among paths of
// equal cost it picks the one whose vertex sequence is lexicographically
// smallest, so repeated calls on an unchanged graph return the same path.
//
// An unreachable target is not an error: the result has Vertices == nil and
// Cost == +Inf. The search stops as soon as target is settled.
//
// Errors: ErrNilGraph, ErrEmptySource, ErrEmptyTarget, ErrVertexNotFound,
// ErrExpansionLimit, or a wrapped context error.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if target == "" {
		return nil, ErrEmptyTarget
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	cfg := DefaultOptions(source)
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	cfg.Source = source
	cfg.target = target

	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	if !r.visited[target] {
		return &Path{Cost: math.Inf(1)}, nil
	}
	vertices := make([]string, len(r.path[target]))
	copy(vertices, r.path[target])

	return &Path{Vertices: vertices, Cost: r.dist[target]}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *core.Graph
	options  Options
	dist     map[string]float64  // best known distance from Source
	path     map[string][]string // label sequence Source…v of the current best
	visited  map[string]bool     // finalized vertices
	pq       nodePQ
	expanded int
}

// newRunner sets dist[v] = +Inf for every vertex and seeds the heap with Source.
func newRunner(g *core.Graph, cfg Options) *runner {
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		path:    make(map[string][]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	var v string
	for _, v = range vertices {
		r.dist[v] = math.Inf(1)
	}

	src := []string{cfg.Source}
	r.dist[cfg.Source] = 0
	r.path[cfg.Source] = src
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0, path: src})

	return r
}

// process pops vertices in (distance, path) order and relaxes their edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The target (if any) has been finalized.
//   - The context is done, or MaxExpansions vertices have been finalized.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		if err := cfg.Ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: search aborted: %w", err)
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] || item.dist > r.dist[u] {
			continue // stale entry
		}
		if item.dist > cfg.MaxDistance {
			break
		}
		if cfg.MaxExpansions > 0 && r.expanded >= cfg.MaxExpansions {
			return fmt.Errorf("%w: %d vertices finalized", ErrExpansionLimit, r.expanded)
		}

		r.visited[u] = true
		r.expanded++
		if u == cfg.target {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of the finalized vertex u.
//
// A candidate replaces the current best when it is cheaper by more than Epsilon,
// or when it costs the same within Epsilon and its label sequence is
// lexicographically smaller.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	eps := r.options.Epsilon
	base := r.path[u]
	var e *core.Edge
	for _, e = range neighbors {
		if e.Directed && e.From != u {
			continue
		}
		v := e.Other(u)
		if r.visited[v] {
			continue
		}
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		nd := r.dist[u] + e.Weight
		if nd > r.options.MaxDistance {
			continue
		}

		cur := r.dist[v]
		cheaper := nd < cur-eps
		tie := !cheaper && math.Abs(nd-cur) <= eps
		if !cheaper && !tie {
			continue
		}

		cand := make([]string, len(base)+1)
		copy(cand, base)
		cand[len(base)] = v
		if tie && !lexLess(cand, r.path[v]) {
			continue
		}

		r.dist[v] = nd
		r.path[v] = cand
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd, path: cand})
	}

	return nil
}

// predecessors derives prev[v] from the stored label sequences.
func (r *runner) predecessors() map[string]string {
	prev := make(map[string]string, len(r.dist))
	for v := range r.dist {
		p := r.path[v]
		if !r.visited[v] || len(p) < 2 {
			prev[v] = ""
			continue
		}
		prev[v] = p[len(p)-2]
	}

	return prev
}

// lexLess compares label sequences element-wise; a proper prefix ranks first.
func lexLess(a, b []string) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// nodeItem is a heap entry: a vertex, the distance and label sequence it was pushed with.
type nodeItem struct {
	id   string
	dist float64
	path []string
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, path).
// Stale entries are left in place and skipped when popped (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return lexLess(pq[i].path, pq[j].path)
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
