// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by the opposite endpoint ID asc.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks (in that order).
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns the edges leaving vertex id.
//
// Neighborhood policy:
//   - Directed graphs: edges with e.From == id.
//   - Undirected graphs: every incident edge (mirrored adjacency); self-loops appear once.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert and muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Map adjacencyList[id] to live *Edge records.
//   - Stage 5: Sort by the opposite endpoint so traversal order is reproducible.
//
// Complexity:
//   - Time O(d log d), Space O(d).
//
// Notes:
//   - Records are returned by pointer, not copied; treat them as immutable.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacencyList[id]))
	var eid string
	for _, eid = range g.adjacencyList[id] {
		e := g.edges[eid]
		if e.IsNil() {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Other(id) < out[j].Other(id)
	})

	return out, nil
}

// NeighborIDs returns the vertex IDs reachable from id over a single edge,
// sorted lexicographically ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	var e *Edge
	for _, e = range edges {
		ids = append(ids, e.Other(id))
	}

	return ids, nil
}

// AdjacencyList returns a snapshot map from vertex ID to its sorted neighbor IDs.
// Every vertex is present, isolated ones with an empty slice.
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for from := range g.vertices {
		tos := make([]string, 0, len(g.adjacencyList[from]))
		for to := range g.adjacencyList[from] {
			tos = append(tos, to)
		}
		sort.Strings(tos)
		out[from] = tos
	}

	return out
}

// ensureAdjacency makes adjacencyList[id] non-nil. Caller holds muEdgeAdj (write).
func ensureAdjacency(g *Graph, id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]string)
	}
}

// lookupEdge finds the record occupying from→to. Caller holds muEdgeAdj.
// Undirected edges are mirrored, so a single probe covers both orientations.
func lookupEdge(g *Graph, from, to string) (*Edge, bool) {
	eid, ok := g.adjacencyList[from][to]
	if !ok {
		return nil, false
	}
	e, ok := g.edges[eid]

	return e, ok
}

// linkEdge stores e in the catalog and adjacency. Caller holds muEdgeAdj (write).
func linkEdge(g *Graph, e *Edge) {
	g.edges[e.ID] = e
	ensureAdjacency(g, e.From)
	g.adjacencyList[e.From][e.To] = e.ID
	if !e.Directed && e.From != e.To {
		ensureAdjacency(g, e.To)
		g.adjacencyList[e.To][e.From] = e.ID
	}
}

// unlinkEdge removes e from the catalog and adjacency. Caller holds muEdgeAdj (write).
// Adjacency buckets of existing vertices are kept, even when they become empty.
func unlinkEdge(g *Graph, e *Edge) {
	delete(g.edges, e.ID)
	if g.adjacencyList[e.From][e.To] == e.ID {
		delete(g.adjacencyList[e.From], e.To)
	}
	if !e.Directed && e.From != e.To {
		if g.adjacencyList[e.To][e.From] == e.ID {
			delete(g.adjacencyList[e.To], e.From)
		}
	}
}
