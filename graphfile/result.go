// SPDX-License-Identifier: MIT
//
// File: result.go
// Role: Result documents and their text, JSON and YAML encodings.

package graphfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vcgpath/core"
	"github.com/katalvlaran/vcgpath/dijkstra"
	"github.com/katalvlaran/vcgpath/vcg"
)

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat and Encode.
var ErrUnknownFormat = errors.New("graphfile: unknown format")

// ParseFormat validates a format name. An empty name means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatForPath guesses a structured format from a file extension, YAML by default.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}

// PaymentDoc is one paid edge.
type PaymentDoc struct {
	From    string `json:"from" yaml:"from"`
	To      string `json:"to" yaml:"to"`
	Weight  Float  `json:"weight" yaml:"weight"`
	Payment Float  `json:"payment" yaml:"payment"`
}

// ResultDoc is the serialized form of a vcg.PaymentResult.
type ResultDoc struct {
	Source       string       `json:"source" yaml:"source"`
	Target       string       `json:"target" yaml:"target"`
	Path         []string     `json:"path" yaml:"path"`
	TotalCost    Float        `json:"total_cost" yaml:"total_cost"`
	TotalPayment Float        `json:"total_payment" yaml:"total_payment"`
	Overpayment  Float        `json:"overpayment" yaml:"overpayment"`
	Payments     []PaymentDoc `json:"payments" yaml:"payments"`

	text string
}

// NewResult renders res in path order, looking up each edge's declared
// weight in g.
func NewResult(g *core.Graph, res *vcg.PaymentResult) (*ResultDoc, error) {
	doc := &ResultDoc{
		Path:         res.Path,
		TotalCost:    Float(res.TotalCost),
		TotalPayment: Float(res.TotalPayment()),
		Overpayment:  Float(res.Overpayment()),
		Payments:     []PaymentDoc{},
		text:         res.String(),
	}
	if len(res.Path) > 0 {
		doc.Source, doc.Target = res.Path[0], res.Path[len(res.Path)-1]
	}
	for _, k := range res.Edges() {
		w, err := g.Weight(k.From, k.To)
		if err != nil {
			return nil, fmt.Errorf("graphfile: result edge %s: %w", k, err)
		}
		doc.Payments = append(doc.Payments, PaymentDoc{
			From:    k.From,
			To:      k.To,
			Weight:  Float(w),
			Payment: Float(res.Payments[k]),
		})
	}

	return doc, nil
}

// String is the human-readable report.
func (d *ResultDoc) String() string { return d.text }

// PathDoc is the serialized form of a shortest-path query.
type PathDoc struct {
	Source    string   `json:"source" yaml:"source"`
	Target    string   `json:"target" yaml:"target"`
	Reachable bool     `json:"reachable" yaml:"reachable"`
	Path      []string `json:"path" yaml:"path"`
	Cost      Float    `json:"cost" yaml:"cost"`
}

// NewPath renders a dijkstra result.
func NewPath(source, target string, p *dijkstra.Path) *PathDoc {
	return &PathDoc{
		Source:    source,
		Target:    target,
		Reachable: p.Reachable(),
		Path:      p.Vertices,
		Cost:      Float(p.Cost),
	}
}

// String is the human-readable report.
func (d *PathDoc) String() string {
	if !d.Reachable {
		return fmt.Sprintf("No path from %s to %s\n", d.Source, d.Target)
	}

	return fmt.Sprintf("Shortest path:  %v\nTotal cost:     %g\n", d.Path, float64(d.Cost))
}

// Encode writes v in the requested format. Text uses v's String method.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatText, "":
		s, ok := v.(fmt.Stringer)
		if !ok {
			return fmt.Errorf("%w: %T has no text form", ErrUnknownFormat, v)
		}
		_, err := io.WriteString(w, s.String())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
