// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/RemoveEdgeBetween/RestoreEdge,
//       HasEdge/GetEdge/EdgeBetween/Weight/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID (numeric suffix) asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge inserts the edge from→to with the given weight, or overwrites the
// edge already occupying that endpoint pair.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj; look up the pair (both orientations for undirected graphs).
//  4. Reuse the occupant's ID, or generate a fresh one.
//  5. Build the Edge, apply opts, replace the occupant (if any) and link adjacency.
//
// Overwrite semantics: the replacement record takes the new orientation (from, to),
// the new weight and the attributes set through opts; attributes of the previous
// record are not merged.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if err := validateWeight(weight); err != nil {
		return "", err
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	var eid string
	if old, ok := lookupEdge(g, from, to); ok {
		eid = old.ID
		unlinkEdge(g, old)
	} else {
		eid = nextEdgeID(g)
	}

	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}
	linkEdge(g, e)

	return eid, nil
}

// RemoveEdge deletes one edge (and its mirror) by ID.
//
// Errors: ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	unlinkEdge(g, e)

	return nil
}

// RemoveEdgeBetween removes the edge occupying the pair from→to and returns the
// removed record itself, so the caller can hand it back to RestoreEdge unchanged.
// For undirected graphs either orientation of the pair matches.
//
// Errors: ErrEmptyVertexID, ErrEdgeNotFound (wrapped with the pair).
// Complexity: O(1).
func (g *Graph) RemoveEdgeBetween(from, to string) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := lookupEdge(g, from, to)
	if !ok {
		return nil, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}
	unlinkEdge(g, e)

	return e, nil
}

// RestoreEdge re-links a record previously returned by RemoveEdgeBetween (or GetEdge).
// The record is stored as-is: same pointer, ID, endpoints, weight and Attrs map.
// An edge currently occupying the same pair is replaced.
//
// Contract:
//   - Both endpoints must still exist (vertices are never auto-created here).
//   - e.Directed must match the graph orientation.
//
// Errors: ErrNilEdge, ErrBadWeight, ErrLoopNotAllowed, ErrVertexNotFound, ErrOrientationMismatch.
// Complexity: O(1).
func (g *Graph) RestoreEdge(e *Edge) error {
	if e.IsNil() {
		return ErrNilEdge
	}
	if err := validateWeight(e.Weight); err != nil {
		return err
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if e.Directed != g.directed {
		return fmt.Errorf("%w: edge %s", ErrOrientationMismatch, e.ID)
	}
	if e.From == e.To && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if _, ok := g.vertices[e.From]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, e.From)
	}
	if _, ok := g.vertices[e.To]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, e.To)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if old, ok := lookupEdge(g, e.From, e.To); ok {
		unlinkEdge(g, old)
	}
	if old, ok := g.edges[e.ID]; ok {
		unlinkEdge(g, old)
	}
	linkEdge(g, e)

	return nil
}

// HasEdge reports whether an edge occupies the pair from→to.
// Undirected edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := lookupEdge(g, from, to)

	return ok
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge is the live record; treat it as read-only.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeBetween returns the live record occupying the pair from→to.
// Complexity: O(1).
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := lookupEdge(g, from, to)
	if !ok {
		return nil, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return e, nil
}

// Weight returns the weight of the edge from→to.
//
// Errors: ErrEdgeNotFound (wrapped with the pair).
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, error) {
	e, err := g.EdgeBetween(from, to)
	if err != nil {
		return 0, err
	}

	return e.Weight, nil
}

// Edges returns all edges ordered by creation sequence ("e1" < "e2" < "e10").
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// validateWeight rejects weights Dijkstra-class searches cannot handle.
func validateWeight(w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %g", ErrBadWeight, w)
	}

	return nil
}

// nextEdgeID returns a new unique textual edge ID ("e" + decimal).
// Safe for concurrent callers; atomic.AddUint64 reserves the sequence number.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeIDLess orders generated IDs by their numeric suffix, falling back to
// plain string order for IDs that do not follow the "e<N>" scheme.
func edgeIDLess(a, b string) bool {
	na, errA := strconv.ParseUint(trimPrefix(a), 10, 64)
	nb, errB := strconv.ParseUint(trimPrefix(b), 10, 64)
	if errA == nil && errB == nil {
		return na < nb
	}

	return a < b
}

func trimPrefix(id string) string {
	if len(id) > 0 && id[0] == edgeIDPrefix {
		return id[1:]
	}

	return id
}
