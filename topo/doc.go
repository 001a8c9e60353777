// SPDX-License-Identifier: MIT

// Package topo synthesizes network topologies as core.Graph values.
//
// What:
//
//   - Random(cfg): a tree-like network in the style of an RPL DODAG — a
//     random spanning-tree backbone plus distance-biased cross edges,
//     matching the density law target = nodes·prob·10. Tree-heavy graphs
//     are rich in cut vertices, the interesting input for meshification.
//   - Star(n), Path(n), Ring(n), Wheel(n): deterministic shapes used by
//     tests, examples, and benchmarks.
//
// Determinism:
//   - All randomness flows through a single seeded math/rand source:
//     same Config ⇒ identical graph, across runs and platforms.
//
// Errors:
//
//	ErrNodeCount    node count below the shape's minimum
//	ErrProbability  connection probability outside [0, 1]
//
// Degree-capacity refusals during synthesis are skipped, not fatal: a
// constrained neighborhood simply ends up sparser, as in the field.
package topo
