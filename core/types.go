// Package core defines the GraphStore: an undirected simple graph over a
// dense integer vertex set [0, n), optimized for single-threaded batch
// analysis passes.
//
// Vertices are implicit (every id in [0, n) exists); edges are inserted
// through AddEdge and never removed. Each edge may carry a "redundant"
// mark, set through AddRedundantEdge, which downstream consumers use to
// distinguish augmentation edges from original topology.
//
// Every insertion either succeeds or reports a sentinel error; there are
// no silent no-ops. In particular a full adjacency list (when a degree
// capacity is configured) surfaces ErrDegreeCapacity instead of dropping
// the edge, so callers can never under-count true degree.
//
// Errors:
//
//	ErrOrder          - graph order is not positive.
//	ErrVertexRange    - vertex id outside [0, n).
//	ErrSelfLoop       - attempt to add an edge (v, v).
//	ErrEdgeExists     - edge between the pair already exists.
//	ErrDegreeCapacity - an endpoint's adjacency capacity is exhausted.
package core

import "errors"

// Sentinel errors for GraphStore operations.
var (
	// ErrOrder indicates New was called with a non-positive vertex count.
	ErrOrder = errors.New("core: graph order must be positive")

	// ErrVertexRange indicates an operation referenced a vertex id outside [0, n).
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrSelfLoop indicates a self-loop was attempted; loops are never allowed.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEdgeExists indicates a parallel edge was attempted; the graph is simple.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrDegreeCapacity indicates an edge insertion was refused because an
	// endpoint's adjacency list is at its configured capacity.
	ErrDegreeCapacity = errors.New("core: adjacency capacity reached")
)

// Option configures a Graph before first use.
type Option func(*Graph)

// WithDegreeCap limits every vertex to at most cap incident edges.
// A non-positive cap leaves the graph unbounded (the default).
//
// The cap models constrained radio neighborhoods: an insertion that would
// exceed it is refused with ErrDegreeCapacity rather than silently dropped.
func WithDegreeCap(cap int) Option {
	return func(g *Graph) {
		if cap > 0 {
			g.degreeCap = cap
		}
	}
}

// pair is the canonical unordered edge key with u < v.
type pair struct{ u, v int }

// key normalizes (u, v) into its canonical pair.
func key(u, v int) pair {
	if u > v {
		u, v = v, u
	}

	return pair{u, v}
}

// Graph is the long-lived topology store mutated only by edge insertion.
//
// It is deliberately not concurrency-safe: the meshification workflow is a
// single-threaded batch pipeline (analyze → meshify → verify), and analysis
// state lives outside the Graph in per-pass contexts.
type Graph struct {
	order     int   // number of vertices, ids are [0, order)
	degreeCap int   // max incident edges per vertex; 0 = unbounded
	adj       [][]int
	edges     map[pair]struct{} // edge existence, canonical u < v
	redundant map[pair]struct{} // subset of edges marked redundant
}

// New creates an empty Graph with n vertices and no edges.
// Returns ErrOrder when n < 1.
//
// Complexity: O(n).
func New(n int, opts ...Option) (*Graph, error) {
	if n < 1 {
		return nil, ErrOrder
	}

	g := &Graph{
		order:     n,
		adj:       make([][]int, n),
		edges:     make(map[pair]struct{}),
		redundant: make(map[pair]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
