// Package meshify hardens tree-like network topologies against
// single-point-of-failure disconnection.
//
// The pipeline finds every cut vertex (articulation point) of an undirected
// simple graph, decomposes the graph into biconnected components (blocks),
// and adds a near-minimal set of redundant edges toward biconnecting it.
// The greedy pairing never increases the cut-vertex count; residual cut
// vertices, when the pairing cannot resolve them, are reported by the
// verification pass.
//
// Subpackages:
//
//	core/   — the GraphStore: a dense-ID undirected simple graph with
//	          degree-capacity accounting and redundant-edge marking
//	bicomp/ — Tarjan-style biconnectivity decomposition, leaf-block
//	          selection, greedy meshification, and verification
//	topo/   — topology synthesis: random tree-plus-cross-edge networks
//	          and deterministic shapes (star, path, ring, wheel)
//	dot/    — Graphviz DOT serialization and optional image rendering
//
// Quick sketch: a path 0-1-2-3-4 has three cut vertices (1, 2, 3) and two
// leaf blocks ({0,1} and {3,4}); meshification closes the path into a ring
// with a single redundant edge (0,4), after which no cut vertex remains.
//
// For L leaf blocks the meshifier adds at most ⌈L/2⌉ edges: each added edge
// touches two leaf blocks, and every leaf block must be touched at least
// once, so the pairing is optimal for this goal.
//
// The cmd/meshify binary wires the pieces into a batch run: synthesize,
// analyze, export, meshify, verify, report.
package meshify
