// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, EdgeOption, sentinel errors and NewGraph.
// Concurrency:
//   - muVert guards the vertex catalog and configuration reads.
//   - muEdgeAdj guards the edge catalog and adjacency.
//   - muExclusive serializes multi-call mutation sequences (see Exclusive).

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilEdge indicates a nil *Edge was passed where a record is required.
	ErrNilEdge = errors.New("core: edge is nil")

	// ErrOrientationMismatch indicates a restored record disagrees with the graph orientation.
	ErrOrientationMismatch = errors.New("core: edge orientation does not match graph")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is shared, not deep-copied, by Clone.
	Metadata map[string]interface{}
}

// Edge represents a weighted connection between two vertices.
//
// Attrs is opaque to the graph: it is never read, copied or rewritten by core,
// which is what allows RestoreEdge to put the record back bit-for-bit.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID (the first endpoint for undirected edges).
	From string

	// To is the destination vertex ID (the second endpoint for undirected edges).
	To string

	// Weight is the non-negative, finite cost of traversing the edge.
	Weight float64

	// Directed reports whether the edge is one-way; it mirrors the graph setting.
	Directed bool

	// Attrs holds caller-defined attributes (owner, bid id, capacity, ...).
	Attrs map[string]interface{}
}

// IsNil reports whether the receiver is nil. Safe on typed-nil values.
func (e *Edge) IsNil() bool { return e == nil }

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of all edges (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeAttrs sets the attribute map of the edge. The map is stored as given
// (not copied), so the caller keeps ownership semantics explicit.
func WithEdgeAttrs(attrs map[string]interface{}) EdgeOption {
	return func(e *Edge) { e.Attrs = attrs }
}

// WithEdgeAttr sets a single attribute, allocating the map on first use.
func WithEdgeAttr(key string, value interface{}) EdgeOption {
	return func(e *Edge) {
		if e.Attrs == nil {
			e.Attrs = make(map[string]interface{})
		}
		e.Attrs[key] = value
	}
}

// Graph is the core in-memory graph data structure.
//
// Lock order is muExclusive -> muVert -> muEdgeAdj; no method acquires them in
// any other order.
type Graph struct {
	muExclusive sync.Mutex   // serializes Exclusive sections
	muVert      sync.RWMutex // guards vertices
	muEdgeAdj   sync.RWMutex // guards edges and adjacency

	// Configuration flags (immutable after construction)
	directed   bool // edge orientation
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to] = Edge.ID; undirected edges are mirrored.
	adjacencyList map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
