// SPDX-License-Identifier: MIT

// Package vcg computes Vickrey-Clarke-Groves payments for cheapest-path
// procurement on a core.Graph.
//
// Every edge is an independent agent that declared its cost as the edge weight.
// The mechanism buys the cheapest source→target path and pays each edge e on
// it the externality it imposes on everyone else:
//
//	payment(e) = alt(e) − (cost − weight(e))
//
// where cost is the winning path's cost and alt(e) is the cheapest
// source→target cost once e is removed (+Inf if none remains). Payments are
// never below the declared weight, and edges off the path are paid nothing.
//
// Algorithm:
//
//  1. One shortest-path search for the winning path (dijkstra.ShortestPath,
//     lexicographic tie-break, so results are reproducible).
//  2. For each path edge in path order: g.WithoutEdge(u, v, search), which
//     removes the exact edge record and re-links it on every exit path.
//
// Total work is (k+1) searches for a path of k edges.
//
// Concurrency:
//
// A computation mutates the graph it runs on. By default the Calculator holds
// g.Exclusive for the whole computation, so computations sharing one graph are
// serialized. WithPrivateCopy runs each computation on g.Clone() instead, and
// ComputeBatch always does, fanning queries out over an errgroup.
//
// Payment keys:
//
// Directed graphs key payments by arc. Undirected graphs key them in path
// traversal order by default; WithCanonicalKeys switches to (min, max).
// PaymentResult.Payment accepts either orientation for undirected results.
//
// Observability:
//
// A Calculator logs through zap (no-op by default), records Prometheus metrics
// when given NewMetrics(reg), and opens an OpenTelemetry span per computation
// with one child span per alternate search.
//
// Errors:
//
//   - ErrNilGraph, ErrNoPath.
//   - dijkstra.ErrVertexNotFound (errors.Is also matches core.ErrVertexNotFound).
//   - core.ErrEdgeNotFound when a path edge disappears mid-computation.
//   - dijkstra.ErrExpansionLimit and context errors under search bounds.
package vcg
