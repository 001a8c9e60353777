package bicomp

import (
	"context"
	"errors"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to Analyze,
	// Verify, or Harden.
	ErrNilGraph = errors.New("bicomp: graph is nil")
)

// Option configures optional behavior of the analysis pass.
type Option func(*Options)

// Options holds configurable parameters for Analyze.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// Cancellation is observed between root traversals.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// A nil ctx has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Block is the member vertex set of one biconnected component, each vertex
// listed once, in edge-pop discovery order.
type Block []int

// Result captures one analysis pass over a graph snapshot.
//
// All per-vertex slices are indexed by vertex id and sized to the graph
// order. A Result is scoped to the edge set it was computed from; mutate
// the graph and the roles (cut flags, discovery times) go stale.
type Result struct {
	// Disc holds 1-based discovery times; 0 means the vertex exists but
	// carries no timestamp yet (unreachable ids never stay at 0 because
	// the traversal covers every component).
	Disc []int

	// Low holds low-link values: the minimum discovery time reachable via
	// tree edges plus at most one back edge. Low[u] ≤ Disc[u] always.
	Low []int

	// Parent holds DFS tree parents, -1 for roots.
	Parent []int

	// Visited flags traversal coverage.
	Visited []bool

	// CutVertex marks articulation points: vertices whose removal would
	// increase the number of connected components.
	CutVertex []bool

	// Blocks lists the biconnected components in discovery order. Block
	// indices are not renumbered; downstream pairing consumes this order.
	Blocks []Block
}

// CutCount returns the number of vertices marked as cut vertices.
func (r *Result) CutCount() int {
	n := 0
	for _, c := range r.CutVertex {
		if c {
			n++
		}
	}

	return n
}

// CutVertices returns the ids of all cut vertices in ascending order.
func (r *Result) CutVertices() []int {
	var out []int
	for v, c := range r.CutVertex {
		if c {
			out = append(out, v)
		}
	}

	return out
}

// BlockCount returns the number of biconnected components found.
func (r *Result) BlockCount() int { return len(r.Blocks) }

// LeafBlock is a block incident to the rest of the graph through exactly
// one cut vertex, together with the endpoint it offers for meshification.
type LeafBlock struct {
	// Index is the block's position in Result.Blocks (discovery order).
	Index int

	// Nodes is the block's member set (aliases Result.Blocks[Index]).
	Nodes Block

	// Cut is the single cut vertex inside the block.
	Cut int

	// Rep is the representative endpoint: any non-cut member, or the cut
	// vertex itself for a degenerate single-member block.
	Rep int
}

// MeshResult reports the outcome of one meshification pass.
type MeshResult struct {
	// Added lists the redundant edges inserted, as {a, b} pairs in
	// pairing order.
	Added [][2]int

	// Skipped counts pairs rejected by the guards: self-pair, edge
	// already present, or capacity refusal. Skips are non-fatal and show
	// up as residual cut vertices after verification.
	Skipped int
}

// VerifyReport compares the analysis before and after meshification.
type VerifyReport struct {
	// After is the fresh analysis of the mutated graph.
	After *Result

	CutBefore    int
	CutAfter     int
	BlocksBefore int
	BlocksAfter  int
}

// Eliminated returns how many cut vertices meshification removed.
func (v *VerifyReport) Eliminated() int { return v.CutBefore - v.CutAfter }

// HardenReport aggregates the full pipeline: analysis, leaf-block
// selection, meshification, and verification.
type HardenReport struct {
	// Before is the analysis of the untouched graph.
	Before *Result

	// Leaves is the leaf-block list fed to the meshifier (nil when the
	// graph was already biconnected).
	Leaves []LeafBlock

	// Mesh is the meshification outcome; empty when no leaf blocks exist.
	Mesh *MeshResult

	// Verify reports the post-meshification state. For an already
	// biconnected graph it reuses Before on both sides.
	Verify *VerifyReport
}
