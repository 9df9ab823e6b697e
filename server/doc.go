// SPDX-License-Identifier: MIT

// Package server exposes the payment calculator over HTTP.
//
// Routes:
//
//	POST /v1/payments        graph document + source/target → payment result
//	POST /v1/payments/batch  graph document + queries → one result or error per query
//	POST /v1/paths           graph document + source/target → cheapest path
//	GET  /healthz            liveness
//	GET  /metrics            Prometheus exposition
//
// Every request gets its own graph built from the posted document, so
// requests never share mutable state. Searches run under the request
// deadline and the configured expansion bound.
package server
