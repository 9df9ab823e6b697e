// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options, functional options, sentinel errors and the Path result type.

package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/vcgpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrEmptyTarget indicates that the provided target vertex ID is empty.
	ErrEmptyTarget = errors.New("dijkstra: target vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex does not exist.
	// It wraps core.ErrVertexNotFound, so errors.Is matches either sentinel.
	ErrVertexNotFound = fmt.Errorf("dijkstra: %w", core.ErrVertexNotFound)

	// ErrExpansionLimit indicates that the search finalized MaxExpansions vertices
	// without settling the target (or the whole reachable set).
	ErrExpansionLimit = errors.New("dijkstra: expansion limit reached")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadEpsilon indicates a negative or non-finite Epsilon.
	ErrBadEpsilon = errors.New("dijkstra: Epsilon must be finite and non-negative")

	// ErrBadMaxExpansions indicates a negative MaxExpansions.
	ErrBadMaxExpansions = errors.New("dijkstra: MaxExpansions must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath       – if true, Dijkstra returns the predecessor map; otherwise prev is nil.
// MaxDistance      – vertices farther than this are not explored. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable. Default +Inf.
// Epsilon          – costs within Epsilon of each other count as equal while relaxing.
// MaxExpansions    – upper bound on finalized vertices; 0 means unbounded.
// Ctx              – checked once per heap pop; nil means context.Background().
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Epsilon          float64
	MaxExpansions    int
	Ctx              context.Context

	target string // set by ShortestPath; the search stops once it is settled
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required by Dijkstra; ShortestPath sets it itself.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold unless threshold > 0.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithEpsilon sets the tolerance used when comparing a candidate cost against the
// current best: |a-b| ≤ eps is a tie, resolved by the lexicographic rule.
// The frontier itself stays ordered by exact cost. Panics with ErrBadEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// WithMaxExpansions bounds the number of vertices the search may finalize.
// Zero disables the bound. Panics with ErrBadMaxExpansions on a negative value.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithContext makes the search observe ctx: cancellation or deadline expiry
// aborts it with an error wrapping ctx.Err().
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source vertex ID.
//
// Defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf (explore everything reachable).
//   - InfEdgeThreshold: +Inf (no edge is a wall).
//   - Epsilon:          0 (exact comparison).
//   - MaxExpansions:    0 (unbounded).
//   - Ctx:              context.Background().
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Ctx:              context.Background(),
	}
}

// Path is the result of a source→target query.
//
// Vertices lists the chosen path from source to target inclusive. When the
// target is unreachable Vertices is nil and Cost is +Inf.
type Path struct {
	Vertices []string
	Cost     float64
}

// Reachable reports whether a path was found.
func (p *Path) Reachable() bool {
	return p != nil && len(p.Vertices) > 0
}

// Edges returns the consecutive vertex pairs of the path in traversal order.
// A single-vertex or unreachable path has no edges.
func (p *Path) Edges() [][2]string {
	if !p.Reachable() || len(p.Vertices) < 2 {
		return nil
	}
	out := make([][2]string, 0, len(p.Vertices)-1)
	for i := 1; i < len(p.Vertices); i++ {
		out = append(out, [2]string{p.Vertices[i-1], p.Vertices[i]})
	}

	return out
}
