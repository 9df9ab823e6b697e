// SPDX-License-Identifier: MIT
//
// File: document.go
// Role: Graph document decoding and conversion to and from core.Graph.

package graphfile

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vcgpath/core"
)

// ErrBadDocument is returned for documents that do not describe a valid graph.
var ErrBadDocument = errors.New("graphfile: invalid graph document")

// Document is the serialized form of a graph plus an optional default query.
type Document struct {
	Directed bool      `json:"directed" yaml:"directed"`
	Loops    bool      `json:"loops,omitempty" yaml:"loops,omitempty"`
	Vertices []string  `json:"vertices,omitempty" yaml:"vertices,omitempty"`
	Edges    []EdgeDoc `json:"edges" yaml:"edges"`
	Source   string    `json:"source,omitempty" yaml:"source,omitempty"`
	Target   string    `json:"target,omitempty" yaml:"target,omitempty"`
}

// EdgeDoc is one edge of a Document.
type EdgeDoc struct {
	From   string         `json:"from" yaml:"from"`
	To     string         `json:"to" yaml:"to"`
	Weight float64        `json:"weight" yaml:"weight"`
	Attrs  map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Decode reads a YAML or JSON document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrBadDocument)
		}
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}

	return &doc, nil
}

// ReadFile decodes the document at path; "-" reads stdin.
func ReadFile(path string) (*Document, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Graph builds a core.Graph from the document. Listed vertices are added
// first, so isolated vertices survive. A repeated endpoint pair is rejected
// rather than silently overwriting the earlier edge.
func (d *Document) Graph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for _, v := range d.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %w", ErrBadDocument, v, err)
		}
	}
	for i, e := range d.Edges {
		if g.HasEdge(e.From, e.To) {
			return nil, fmt.Errorf("%w: edge %d %s→%s: duplicate endpoint pair", ErrBadDocument, i, e.From, e.To)
		}
		var eopts []core.EdgeOption
		if len(e.Attrs) > 0 {
			eopts = append(eopts, core.WithEdgeAttrs(maps.Clone(e.Attrs)))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight, eopts...); err != nil {
			return nil, fmt.Errorf("%w: edge %d %s→%s: %w", ErrBadDocument, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a Document in deterministic order.
func FromGraph(g *core.Graph) *Document {
	d := &Document{
		Directed: g.Directed(),
		Loops:    g.Looped(),
		Vertices: g.Vertices(),
	}
	for _, e := range g.Edges() {
		d.Edges = append(d.Edges, EdgeDoc{
			From:   e.From,
			To:     e.To,
			Weight: e.Weight,
			Attrs:  maps.Clone(e.Attrs),
		})
	}

	return d
}
