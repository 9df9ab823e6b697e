// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: The BuildGraph orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vcgpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors wrapped with the method name.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity: O(len(bopts)) to resolve options plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Spec names a topology and its parameters; it is what CLI flags and
// config files decode into.
type Spec struct {
	Kind string  `json:"kind" yaml:"kind"` // path, cycle, star, complete, grid, ladder, random
	N    int     `json:"n" yaml:"n"`
	Rows int     `json:"rows,omitempty" yaml:"rows,omitempty"`
	Cols int     `json:"cols,omitempty" yaml:"cols,omitempty"`
	P    float64 `json:"p,omitempty" yaml:"p,omitempty"`
}

// FromSpec resolves a Spec into its Constructor.
// Unknown kinds return ErrConstructFailed.
func FromSpec(s Spec) (Constructor, error) {
	switch s.Kind {
	case MethodPath:
		return Path(s.N), nil
	case MethodCycle:
		return Cycle(s.N), nil
	case MethodStar:
		return Star(s.N), nil
	case MethodComplete:
		return Complete(s.N), nil
	case MethodGrid:
		return Grid(s.Rows, s.Cols), nil
	case MethodLadder:
		return Ladder(s.N), nil
	case MethodRandomSparse:
		return RandomSparse(s.N, s.P), nil
	default:
		return nil, fmt.Errorf("FromSpec: unknown kind %q: %w", s.Kind, ErrConstructFailed)
	}
}

// emit adds u→v with the next configured weight and, for directed graphs when
// both is set, the reverse arc v→u with its own weight.
func emit(g *core.Graph, cfg builderConfig, method, u, v string, both bool) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if both && g.Directed() {
		w = cfg.weightFn(cfg.rng)
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}

// addVertices inserts cfg.idFn(from) … cfg.idFn(to-1) in index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, from, to int) error {
	for i := from; i < to; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}
