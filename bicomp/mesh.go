package bicomp

import (
	"errors"

	"github.com/velmoren/meshify/core"
)

// Meshify inserts redundant edges between paired leaf blocks, mutating g.
//
// Pairing rule: leaves are consumed in block discovery order, two at a
// time; with an odd count the final unpaired block wraps around to the
// block at position 0, closing the cycle. Each pair contributes the edge
// between its representatives — ⌈L/2⌉ candidate edges for L leaf blocks,
// the minimum that can touch every leaf block at least once.
//
// Guards per candidate edge (a, b): a ≠ b, the edge must not already
// exist, and both endpoints need spare adjacency capacity. A rejected
// candidate is skipped and counted, never fatal; the residual cut vertex
// shows up in the verification pass. With exactly one leaf block the
// wrap-around pairs the block with itself and the a ≠ b guard rejects it —
// a documented limitation of the pairing rule.
//
// Complexity: O(L).
func Meshify(g *core.Graph, leaves []LeafBlock) *MeshResult {
	res := &MeshResult{}

	for i := 0; i < len(leaves); i += 2 {
		first := leaves[i]
		second := leaves[0] // odd count: wrap to the front
		if i+1 < len(leaves) {
			second = leaves[i+1]
		}

		a, b := first.Rep, second.Rep
		if a == b {
			res.Skipped++
			continue
		}

		switch err := g.AddRedundantEdge(a, b); {
		case err == nil:
			res.Added = append(res.Added, [2]int{a, b})
		case errors.Is(err, core.ErrEdgeExists), errors.Is(err, core.ErrDegreeCapacity):
			res.Skipped++
		default:
			// Representatives come from analysis of the same graph, so a
			// range or loop refusal here means the inputs are mismatched.
			res.Skipped++
		}
	}

	return res
}
