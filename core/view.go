// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (fresh graphs derived from a source graph).
// Determinism:
//   - Preserves vertex/edge IDs and orientation.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set keep of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both kept. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	return FilterView(g, func(e *Edge) bool { return keep[e.From] && keep[e.To] }, keep)
}

// FilterView returns a new Graph with the vertices selected by keep (nil keeps all)
// and the edges whose endpoints are kept and that satisfy pred. Edge records are
// fresh values; their Attrs maps are shared with the source.
//
// Complexity: O(V + E).
func FilterView(g *Graph, pred func(*Edge) bool, keep map[string]bool) *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	kept := func(id string) bool { return keep == nil || keep[id] }
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		if !kept(id) {
			continue
		}
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.adjacencyList[id] = make(map[string]string)
	}

	var e *Edge
	for _, e = range g.edges {
		if !kept(e.From) || !kept(e.To) || !pred(e) {
			continue
		}
		linkEdge(out, &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed, Attrs: e.Attrs})
	}

	return out
}
