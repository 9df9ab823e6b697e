// SPDX-License-Identifier: MIT

// Package core provides a thread-safe in-memory weighted Graph with a minimal,
// composable API surface, built for algorithms that temporarily mutate a graph
// and must put it back exactly as they found it.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected), fixed at construction.
//   - Self-loops (WithLoops), rejected by default.
//   - Non-negative, finite float64 weights on every edge.
//   - Opaque per-edge attributes (Edge.Attrs) carried verbatim across removal/restoration.
//   - At most one edge per endpoint pair: per ordered pair in directed graphs,
//     per unordered pair in undirected graphs. AddEdge on an occupied pair overwrites
//     the weight and attributes in place and keeps the edge ID.
//   - Constant-time edge lookup via nested maps: adjacencyList[from][to] = edgeID.
//     Undirected edges are mirrored in adjacencyList[to][from].
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Exact restoration:
//
//	RemoveEdgeBetween(u,v) returns the removed *Edge record itself. RestoreEdge(e)
//	re-links that very record (same ID, endpoints, weight, orientation and Attrs map),
//	so a remove/restore pair is unobservable afterwards. WithoutEdge(u,v,fn) wraps the
//	pair in a scoped guard that restores on every exit path, including panics.
//
// Serializing mutators:
//
//	The RWMutexes keep individual calls consistent, but a remove→search→restore sequence
//	spans several calls. Exclusive(fn) runs fn under a per-graph mutex so that concurrent
//	sequences against the same instance never observe each other's temporary removals.
//	Alternatively run against Clone().
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                    // O(1)
//	HasVertex(id string) bool                     // O(1)
//	RemoveVertex(id string) error                 // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64, opts ...EdgeOption) (string, error) // O(1), upsert
//	RemoveEdge(edgeID string) error               // O(1)
//	RemoveEdgeBetween(from, to string) (*Edge, error)
//	RestoreEdge(e *Edge) error
//	WithoutEdge(from, to string, fn func() error) error
//
//	// Query
//	Weight(from, to string) (float64, error)      // O(1)
//	EdgeBetween(from, to string) (*Edge, error)   // O(1)
//	Neighbors(id string) ([]*Edge, error)         // O(d·log d)
//	NeighborIDs(id string) ([]string, error)      // O(d·log d)
//	Vertices() []string                           // O(V·log V)
//	Edges() []*Edge                               // O(E·log E)
//
//	// Cloning & views
//	Clone() *Graph, CloneEmpty() *Graph, InducedSubgraph(g, keep)
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrEdgeNotFound    – missing edge
//	ErrBadWeight       – negative, NaN or infinite weight
//	ErrLoopNotAllowed  – self-loop when loops are disabled
//	ErrNilEdge         – nil record passed to RestoreEdge
package core
