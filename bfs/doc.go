// SPDX-License-Identifier: MIT

// Package bfs implements breadth-first search over core.Graph.
//
// Edge weights are ignored: BFS measures distance in hops. In vcgpath it is
// the cheap connectivity probe used before weighted work, for example when
// the generator must emit a graph in which the target is reachable, or when
// a caller wants to know up front which path edges are bridges.
//
// Features:
//   - Deterministic visit order (neighbors expanded in sorted order).
//   - Depth limit, per-edge filter (WithFilterEdge, WithoutEdgeID), visit hook.
//   - Cancellation via context.
//
// Complexity: O(V + E log d) time, O(V) space.
package bfs
