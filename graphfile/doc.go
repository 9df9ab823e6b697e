// SPDX-License-Identifier: MIT

// Package graphfile converts between on-disk graph documents and core.Graph,
// and renders payment results for output.
//
// Documents are YAML. JSON input is accepted as-is because every JSON
// document is valid YAML:
//
//	directed: true
//	vertices: [s, v, t]        # optional; endpoints are added implicitly
//	edges:
//	  - {from: s, to: v, weight: 2, attrs: {owner: alice}}
//	  - {from: v, to: t, weight: 3}
//	source: s
//	target: t
//
// Result documents carry infinite payments. YAML encodes them as .inf; JSON
// has no infinity literal, so Float marshals them as the string "+Inf" and
// accepts that string back.
package graphfile
