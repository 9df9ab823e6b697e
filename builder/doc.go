// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph generators for experiments,
// benchmarks and property tests of the payment mechanism.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a core.Graph,
// resolves builder options into an immutable config and applies constructors
// in order. Constructors validate their parameters first and return sentinel
// errors (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource); they
// never panic at runtime. Option constructors panic on programmer errors such
// as a nil function or a negative weight bound.
//
// Topologies:
//
//   - Path(n), Cycle(n), Star(n), Complete(n)
//   - Grid(rows, cols) with coordinate IDs "r,c"
//   - Ladder(n): two rails joined by rungs, a natural fixture with exactly two
//     disjoint routes between the rail ends
//   - RandomSparse(n, p): Erdős–Rényi-like sampling with a seeded RNG
//
// Determinism: the same options, seed and constructor order always produce the
// same vertex IDs, edge emission order and weights.
package builder
