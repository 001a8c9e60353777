package bicomp

// LeafBlocks scans the blocks of an analysis pass and returns those with
// exactly one cut-vertex member, in block discovery order.
//
// A leaf block hangs off the rest of the graph through its single cut
// vertex, so it is the natural attachment point for a redundant edge. For
// each leaf the representative endpoint is the first non-cut member; a
// degenerate block with no non-cut member falls back to the cut vertex
// itself.
//
// A biconnected graph (single block, zero cut vertices) yields no leaf
// blocks.
//
// Complexity: O(sum of block sizes) = O(V+E).
func LeafBlocks(res *Result) []LeafBlock {
	if res == nil {
		return nil
	}

	var leaves []LeafBlock
	for i, blk := range res.Blocks {
		cut, cuts := -1, 0
		for _, v := range blk {
			if res.CutVertex[v] {
				cut = v
				cuts++
			}
		}
		if cuts != 1 {
			continue
		}

		leaves = append(leaves, LeafBlock{
			Index: i,
			Nodes: blk,
			Cut:   cut,
			Rep:   representative(blk, res.CutVertex),
		})
	}

	return leaves
}

// representative picks the first non-cut member, falling back to the sole
// member when the block holds only its cut vertex.
func representative(blk Block, cut []bool) int {
	for _, v := range blk {
		if !cut[v] {
			return v
		}
	}

	return blk[0]
}
