// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Prometheus instrumentation for payment computations.

package vcg

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for vcgpath_payment_computations_total.
const (
	resultSuccess  = "success"
	resultNoPath   = "no_path"
	resultNotFound = "vertex_not_found"
	resultCanceled = "canceled"
	resultTimeout  = "timeout"
	resultLimit    = "expansion_limit"
	resultError    = "error"
)

// Metrics groups the collectors updated by a Calculator.
// A nil *Metrics disables instrumentation.
type Metrics struct {
	computations     *prometheus.CounterVec
	duration         prometheus.Histogram
	searches         *prometheus.CounterVec
	pathEdges        prometheus.Histogram
	infinitePayments prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// Passing prometheus.DefaultRegisterer exposes them on the default /metrics handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		computations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vcgpath",
			Name:      "payment_computations_total",
			Help:      "Total payment computations by result",
		}, []string{"result"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vcgpath",
			Name:      "payment_computation_duration_seconds",
			Help:      "Payment computation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
		}),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vcgpath",
			Name:      "shortest_path_searches_total",
			Help:      "Shortest-path searches run by the calculator, by kind",
		}, []string{"kind"}), // "winning" or "alternate"
		pathEdges: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vcgpath",
			Name:      "winning_path_edges",
			Help:      "Number of edges on winning paths",
			Buckets:   []float64{1, 2, 3, 5, 10, 20, 50, 100},
		}),
		infinitePayments: f.NewCounter(prometheus.CounterOpts{
			Namespace: "vcgpath",
			Name:      "infinite_payments_total",
			Help:      "Path edges whose removal disconnected source from target",
		}),
	}
}

func (m *Metrics) observeSearch(kind string) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(kind).Inc()
}

func (m *Metrics) observeResult(result string, seconds float64, res *PaymentResult) {
	if m == nil {
		return
	}
	m.computations.WithLabelValues(result).Inc()
	m.duration.Observe(seconds)
	if res == nil {
		return
	}
	m.pathEdges.Observe(float64(len(res.Payments)))
	m.infinitePayments.Add(float64(len(res.Bottleneck())))
}
