// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Calculator configuration via functional options.

package vcg

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/vcgpath/dijkstra"
)

// tracerName is the instrumentation scope used when no tracer is supplied.
const tracerName = "github.com/katalvlaran/vcgpath/vcg"

// Options configures a Calculator.
//
// Logger        – structured logger; zap.NewNop() by default.
// Metrics       – Prometheus collectors; nil disables metrics.
// Tracer        – OpenTelemetry tracer; the global provider's tracer by default.
// PrivateCopy   – compute on g.Snapshot() instead of holding g.Exclusive.
// CanonicalKeys – key undirected payments as (min, max) instead of traversal order.
// Search        – extra options for every shortest-path search (bounds, epsilon).
// SlowThreshold – computations slower than this are logged at Warn; 0 disables.
// Concurrency   – parallelism of ComputeBatch; ≤ 0 means one worker per query.
type Options struct {
	Logger        *zap.Logger
	Metrics       *Metrics
	Tracer        trace.Tracer
	PrivateCopy   bool
	CanonicalKeys bool
	Search        []dijkstra.Option
	SlowThreshold time.Duration
	Concurrency   int
}

// Option represents a functional option for configuring a Calculator.
type Option func(*Options)

// DefaultOptions returns the configuration used when no options are given:
// no-op logger, no metrics, global tracer, exclusive in-place computation,
// traversal-order keys, unbounded searches.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Tracer: otel.Tracer(tracerName),
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithTracer sets the OpenTelemetry tracer. A nil tracer is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithPrivateCopy makes every computation run against a private clone of the
// graph. The exclusive section is held only while the copy is taken; the
// searches run on the copy without blocking other computations on g.
func WithPrivateCopy() Option {
	return func(o *Options) {
		o.PrivateCopy = true
	}
}

// WithCanonicalKeys keys undirected payments as (min(u,v), max(u,v)).
// Directed graphs always use arc orientation.
func WithCanonicalKeys() Option {
	return func(o *Options) {
		o.CanonicalKeys = true
	}
}

// WithSearchOptions appends options applied to every shortest-path search,
// e.g. dijkstra.WithMaxExpansions or dijkstra.WithEpsilon.
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// WithSlowThreshold logs computations slower than d at Warn level.
func WithSlowThreshold(d time.Duration) Option {
	return func(o *Options) {
		o.SlowThreshold = d
	}
}

// WithConcurrency bounds the number of queries ComputeBatch runs at once.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}
