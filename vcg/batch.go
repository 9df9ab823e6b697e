// SPDX-License-Identifier: MIT
//
// File: batch.go
// Role: Concurrent evaluation of many (source, target) queries over one graph.

package vcg

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vcgpath/core"
)

// Query is one (source, target) pair for ComputeBatch.
type Query struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// BatchResult pairs a query with its outcome. Exactly one of Result and Err is set.
type BatchResult struct {
	Query  Query
	Result *PaymentResult
	Err    error
}

// ComputeBatch evaluates queries concurrently and returns results in query order.
//
// The batch takes one Snapshot of g up front, so it waits for in-place
// computations holding g's exclusive section and then only reads g once.
// Every query runs on its own clone of that snapshot, and workers never
// observe each other's edge removals.
// Concurrency is bounded by Options.Concurrency.
//
// Per-query failures (ErrNoPath, missing vertices, expansion limits) are
// recorded in BatchResult.Err and do not stop the batch. Cancellation of ctx
// stops scheduling further queries and is returned as the batch error; queries
// that never ran keep a zero BatchResult.
func (c *Calculator) ComputeBatch(ctx context.Context, g *core.Graph, queries []Query) ([]BatchResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}

	base := g.Snapshot()
	worker := &Calculator{opts: c.opts}
	worker.opts.PrivateCopy = true

	out := make([]BatchResult, len(queries))
	eg, egCtx := errgroup.WithContext(ctx)
	if c.opts.Concurrency > 0 {
		eg.SetLimit(c.opts.Concurrency)
	}

	for i, q := range queries {
		i, q := i, q
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := worker.ComputePayments(egCtx, base, q.Source, q.Target)
			out[i] = BatchResult{Query: q, Result: res, Err: err}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}

			return nil
		})
	}

	err := eg.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		c.opts.Logger.Warn("vcg_batch_aborted", zap.Int("queries", len(queries)), zap.Error(err))
		return out, err
	}
	c.opts.Logger.Debug("vcg_batch_complete", zap.Int("queries", len(queries)))

	return out, nil
}
