// SPDX-License-Identifier: MIT
//
// File: calculator.go
// Role: VCG payment computation: winning path, then one alternate search per
//       path edge with that edge temporarily removed.
// Invariants:
//   - The caller's graph is identical before and after every call, on success
//     and on failure.
//   - payment(e) = alt(e) − (cost − weight(e)) ≥ weight(e); alt(e) = +Inf when
//     removing e disconnects source from target.

package vcg

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/vcgpath/core"
	"github.com/katalvlaran/vcgpath/dijkstra"
)

// Calculator computes VCG payments. It holds configuration only and is safe
// for concurrent use; the isolation of each computation is governed by
// Options.PrivateCopy.
type Calculator struct {
	opts Options
}

// New builds a Calculator from DefaultOptions and opts.
func New(opts ...Option) *Calculator {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Calculator{opts: cfg}
}

// ComputePayments is a convenience wrapper around New(opts...).ComputePayments
// with a background context.
func ComputePayments(g *core.Graph, source, target string, opts ...Option) (*PaymentResult, error) {
	return New(opts...).ComputePayments(context.Background(), g, source, target)
}

// ComputePayments returns the cheapest source→target path of g and the VCG
// payment owed to each of its edges.
//
// Implementation:
//   - Stage 1: Find the winning path. Unreachable target ⇒ ErrNoPath.
//   - Stage 2: For every path edge e in path order, record cost_others =
//     cost − weight(e), search again with e removed via g.WithoutEdge, and set
//     payment(e) = alt − cost_others (+Inf if the alternate search finds nothing).
//   - Stage 3: Return path, cost and payments.
//
// Isolation:
//   - Default: the whole computation runs inside g.Exclusive, so concurrent
//     computations on the same graph are serialized.
//   - WithPrivateCopy: g.Exclusive is held only for g.Snapshot; the
//     computation then mutates that copy.
//
// Errors:
//   - ErrNilGraph, ErrNoPath.
//   - dijkstra.ErrVertexNotFound (matches core.ErrVertexNotFound) for a missing endpoint.
//   - core.ErrEdgeNotFound if a path edge vanished mid-computation.
//   - dijkstra.ErrExpansionLimit or context errors when search bounds are configured.
func (c *Calculator) ComputePayments(ctx context.Context, g *core.Graph, source, target string) (res *PaymentResult, err error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	logger := c.opts.Logger.With(zap.String("source", source), zap.String("target", target))

	ctx, span := c.opts.Tracer.Start(ctx, "vcg.Calculator.ComputePayments",
		trace.WithAttributes(
			attribute.String("source", source),
			attribute.String("target", target),
			attribute.Bool("private_copy", c.opts.PrivateCopy),
		),
	)
	defer span.End()

	defer func() {
		duration := time.Since(start)
		c.opts.Metrics.observeResult(classify(err), duration.Seconds(), res)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, classify(err))
			logger.Debug("vcg_compute_failed", zap.Error(err), zap.Duration("duration", duration))

			return
		}
		span.SetAttributes(
			attribute.Int("path_edges", len(res.Payments)),
			attribute.Float64("total_cost", res.TotalCost),
		)
		span.SetStatus(codes.Ok, "")
		logger.Info("vcg_compute_complete",
			zap.Strings("path", res.Path),
			zap.Float64("total_cost", res.TotalCost),
			zap.Float64("total_payment", res.TotalPayment()),
			zap.Duration("duration", duration),
		)
		if c.opts.SlowThreshold > 0 && duration > c.opts.SlowThreshold {
			logger.Warn("slow_vcg_compute",
				zap.Duration("duration", duration),
				zap.Duration("threshold", c.opts.SlowThreshold),
				zap.Int("path_edges", len(res.Payments)),
			)
		}
	}()

	logger.Debug("vcg_compute_start", zap.Bool("private_copy", c.opts.PrivateCopy))

	if c.opts.PrivateCopy {
		span.AddEvent("cloning_graph")
		return c.compute(ctx, g.Snapshot(), source, target, logger)
	}

	err = g.Exclusive(func() error {
		var cerr error
		res, cerr = c.compute(ctx, g, source, target, logger)

		return cerr
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// compute runs the mechanism on g. The caller guarantees nobody else mutates g.
func (c *Calculator) compute(ctx context.Context, g *core.Graph, source, target string, logger *zap.Logger) (*PaymentResult, error) {
	search := c.searchOptions(ctx)

	c.opts.Metrics.observeSearch("winning")
	win, err := dijkstra.ShortestPath(g, source, target, search...)
	if err != nil {
		return nil, err
	}
	if !win.Reachable() {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, source, target)
	}

	directed := g.Directed()
	res := &PaymentResult{
		Path:      win.Vertices,
		TotalCost: win.Cost,
		Payments:  make(map[EdgeKey]float64, len(win.Vertices)),
		Directed:  directed,
	}

	var hop [2]string
	for _, hop = range win.Edges() {
		u, v := hop[0], hop[1]
		w, err := g.Weight(u, v)
		if err != nil {
			return nil, fmt.Errorf("vcg: path edge %s→%s: %w", u, v, err)
		}
		costOthers := win.Cost - w

		var alt float64
		err = g.WithoutEdge(u, v, func() error {
			var aerr error
			alt, aerr = c.alternate(ctx, g, source, target, u, v, search)

			return aerr
		})
		if err != nil {
			return nil, err
		}

		payment := alt - costOthers
		res.Payments[c.key(directed, u, v)] = payment
		logger.Debug("vcg_edge_payment",
			zap.String("edge", EdgeKey{From: u, To: v}.String()),
			zap.Float64("weight", w),
			zap.Float64("alt_cost", alt),
			zap.Float64("payment", payment),
		)
	}

	return res, nil
}

// alternate returns the cheapest source→target cost with u→v removed, +Inf if none.
func (c *Calculator) alternate(ctx context.Context, g *core.Graph, source, target, u, v string, search []dijkstra.Option) (float64, error) {
	_, span := c.opts.Tracer.Start(ctx, "vcg.Calculator.alternate",
		trace.WithAttributes(
			attribute.String("edge_from", u),
			attribute.String("edge_to", v),
		),
	)
	defer span.End()

	c.opts.Metrics.observeSearch("alternate")
	p, err := dijkstra.ShortestPath(g, source, target, search...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "alternate search failed")

		return 0, err
	}
	span.SetAttributes(attribute.Bool("reachable", p.Reachable()))
	if !p.Reachable() {
		return math.Inf(1), nil
	}

	return p.Cost, nil
}

// searchOptions prepends the context so caller-supplied options can still override it.
func (c *Calculator) searchOptions(ctx context.Context) []dijkstra.Option {
	out := make([]dijkstra.Option, 0, len(c.opts.Search)+1)
	out = append(out, dijkstra.WithContext(ctx))

	return append(out, c.opts.Search...)
}

// key orients a payment key according to graph orientation and CanonicalKeys.
func (c *Calculator) key(directed bool, u, v string) EdgeKey {
	if !directed && c.opts.CanonicalKeys && v < u {
		u, v = v, u
	}

	return EdgeKey{From: u, To: v}
}

// classify maps an error to a metrics/span result label.
func classify(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, ErrNoPath):
		return resultNoPath
	case errors.Is(err, core.ErrVertexNotFound):
		return resultNotFound
	case errors.Is(err, context.Canceled):
		return resultCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return resultTimeout
	case errors.Is(err, dijkstra.ErrExpansionLimit):
		return resultLimit
	default:
		return resultError
	}
}
