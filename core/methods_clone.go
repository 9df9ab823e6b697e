// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import (
	"maps"
	"sync/atomic"
)

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
//
// Carries over nextEdgeID so that future AddEdge calls on the clone continue the same
// textual sequence and never collide with IDs copied by Clone.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return cloneEmptyLocked(g)
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and adjacency.
//
// Edge records are fresh values with identical ID, endpoints, weight and orientation;
// each Attrs map is shallow-copied so mutating the clone's attribute set never leaks
// into the source. Vertex Metadata maps are shared.
//
// Both read locks are held for the whole copy, so the clone is a consistent snapshot.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := cloneEmptyLocked(g)
	var e *Edge
	for _, e = range g.edges {
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		if e.Attrs != nil {
			ne.Attrs = maps.Clone(e.Attrs)
		}
		linkEdge(clone, ne)
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// nextEdgeID is reset, so textual edge IDs resume from "e1".
// Complexity: O(1).
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// cloneEmptyLocked copies flags, vertices and the edge ID counter. Caller holds both read locks.
func cloneEmptyLocked(g *Graph) *Graph {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	var id string
	var v *Vertex
	for id, v = range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacencyList[id] = make(map[string]string)
	}

	return clone
}
