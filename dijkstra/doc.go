// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph
// with a deterministic tie-break.
//
// Overview:
//
//   - Dijkstra computes minimum-cost distances from a single source to every
//     reachable vertex; ShortestPath answers a single source→target query and
//     stops as soon as the target is settled.
//   - Weights are non-negative by construction (core rejects anything else),
//     so no pre-scan for negative weights is needed.
//   - Directed graphs are traversed along edge orientation only; undirected
//     graphs in both directions.
//
// Tie-break:
//
//	Among minimum-cost paths the engine returns the one whose vertex sequence
//	is lexicographically smallest under Go string ordering. Heap entries are
//	ordered by (cost, label sequence); sequences compare element-wise and a
//	proper prefix ranks first. Every extension of a path is strictly larger in
//	that order, so the first time a vertex is popped its label is final.
//	Repeated queries on an unchanged graph therefore return identical paths.
//
// Unreachability:
//
//	An unreachable target is a normal outcome, not an error: ShortestPath
//	returns Path{Vertices: nil, Cost: +Inf}. Dijkstra reports +Inf distances.
//
// Bounds for service use:
//
//   - WithContext(ctx):      cancellation/deadline checked once per heap pop.
//   - WithMaxExpansions(n):  abort with ErrExpansionLimit after n finalized vertices.
//   - WithMaxDistance(x):    do not explore beyond distance x.
//   - WithInfEdgeThreshold:  edges with weight ≥ threshold are walls.
//   - WithEpsilon(eps):      costs within eps tie during relaxation.
//
// Complexity:
//
//   - Time:  O((V + E) log V) heap work; tie comparisons add a factor of the
//     compared path length.
//   - Space: O(V · L + E) for per-vertex label sequences and lazy heap entries.
//
// Errors (sentinel):
//
//   - ErrEmptySource, ErrEmptyTarget, ErrNilGraph.
//   - ErrVertexNotFound (wraps core.ErrVertexNotFound).
//   - ErrExpansionLimit.
//   - ErrBadMaxDistance, ErrBadInfThreshold, ErrBadEpsilon, ErrBadMaxExpansions
//     (raised as panics by the option constructors).
package dijkstra
