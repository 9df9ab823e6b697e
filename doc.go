// SPDX-License-Identifier: MIT

// Package vcgpath prices cheapest-path procurement with the
// Vickrey-Clarke-Groves mechanism.
//
// Each edge of a weighted graph is an independent agent that declares its
// cost. The buyer takes the cheapest source→target path and pays each edge on
// it the cost of the best route avoiding that edge, minus what the other
// winning edges declared. Under this rule no edge gains by misreporting.
//
// What is in the box:
//
//	core/        thread-safe weighted graph with exact edge remove/restore
//	dijkstra/    shortest paths with a deterministic lexicographic tie-break
//	vcg/         the payment calculator, batch mode, metrics and tracing
//	bfs/         hop-count reachability probes
//	builder/     seeded graph generators (path, grid, ladder, random, ...)
//	graphfile/   YAML/JSON graph and result documents, +Inf-safe
//	server/      HTTP API (gin) with /metrics and request deadlines
//	cmd/vcgpath  CLI: pay, path, generate, serve
//
// Quick ASCII example (directed, weights on arcs):
//
//	s ──2──▶ v ──3──▶ t
//	└─────────6────────┘
//
// The winning path s→v→t costs 5. Without s→v the buyer would pay 6, so s→v
// is paid 6 − 3 = 3; likewise v→t is paid 6 − 2 = 4.
//
//	go get github.com/katalvlaran/vcgpath
package vcgpath
