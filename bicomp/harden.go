package bicomp

import "github.com/velmoren/meshify/core"

// Harden runs the full pipeline on g: analyze, select leaf blocks, meshify,
// verify. The graph is mutated in place by the meshification stage.
//
// When the initial pass finds no cut vertices the pipeline stops early:
// no meshifier invocation, and the verification report reuses the initial
// analysis on both sides.
//
// Complexity: O(V+E) — two analysis passes plus the O(L) pairing.
func Harden(g *core.Graph, opts ...Option) (*HardenReport, error) {
	// 1. Initial analysis
	before, err := Analyze(g, opts...)
	if err != nil {
		return nil, err
	}

	// 2. Already biconnected: nothing to do
	cutBefore := before.CutCount()
	if cutBefore == 0 {
		return &HardenReport{
			Before: before,
			Mesh:   &MeshResult{},
			Verify: &VerifyReport{
				After:        before,
				CutBefore:    cutBefore,
				CutAfter:     cutBefore,
				BlocksBefore: before.BlockCount(),
				BlocksAfter:  before.BlockCount(),
			},
		}, nil
	}

	// 3. Pair leaf blocks and insert redundant edges
	leaves := LeafBlocks(before)
	mesh := Meshify(g, leaves)

	// 4. Verification pass over the mutated graph
	verify, err := Verify(g, before, opts...)
	if err != nil {
		return nil, err
	}

	return &HardenReport{
		Before: before,
		Leaves: leaves,
		Mesh:   mesh,
		Verify: verify,
	}, nil
}
