package bicomp_test

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmoren/meshify/bicomp"
	"github.com/velmoren/meshify/core"
)

// buildGraph creates a graph of order n with the given edges.
func buildGraph(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// randomGraph builds a G(n, p) graph from a seeded source, so failures
// reproduce by seed.
func randomGraph(t *testing.T, rng *rand.Rand, n int, p float64) *core.Graph {
	t.Helper()
	g, err := core.New(n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				require.NoError(t, g.AddEdge(u, v))
			}
		}
	}

	return g
}

// componentsWithout counts connected components of g after deleting
// vertex skip (and its incident edges). Pass skip=-1 to count components
// of the intact graph. Brute-force oracle for the cut-vertex definition.
func componentsWithout(g *core.Graph, skip int) int {
	n := g.Order()
	seen := make([]bool, n)
	comps := 0
	for s := 0; s < n; s++ {
		if s == skip || seen[s] {
			continue
		}
		comps++
		queue := []int{s}
		seen[s] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range g.Neighbors(u) {
				if v == skip || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return comps
}

// oracleCutVertices returns the brute-force cut-vertex set: vertices whose
// removal strictly increases the component count. Removing an isolated or
// degree-1 vertex never increases the count, so those fall out of the
// comparison on their own.
func oracleCutVertices(g *core.Graph) []int {
	base := componentsWithout(g, -1)
	var cuts []int
	for v := 0; v < g.Order(); v++ {
		if componentsWithout(g, v) > base {
			cuts = append(cuts, v)
		}
	}

	return cuts
}

// blockSets normalizes blocks into sorted node sets in sorted order, so
// comparisons ignore block indices and internal ordering.
func blockSets(blocks []bicomp.Block) [][]int {
	out := make([][]int, 0, len(blocks))
	for _, b := range blocks {
		s := append([]int(nil), b...)
		sort.Ints(s)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}

		return len(a) < len(b)
	})

	return out
}

func TestAnalyze_NilGraph(t *testing.T) {
	res, err := bicomp.Analyze(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bicomp.ErrNilGraph)
}

func TestAnalyze_SingleVertex(t *testing.T) {
	g := buildGraph(t, 1, nil)
	res, err := bicomp.Analyze(g)
	require.NoError(t, err)

	assert.True(t, res.Visited[0])
	assert.Equal(t, 0, res.CutCount())
	assert.Equal(t, 0, res.BlockCount(), "an isolated vertex induces no edge block")
}

func TestAnalyze_SingleEdge(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}})
	res, err := bicomp.Analyze(g)
	require.NoError(t, err)

	// degree-1 endpoints are never cut vertices
	assert.Equal(t, 0, res.CutCount())
	assert.Equal(t, [][]int{{0, 1}}, blockSets(res.Blocks))
}

func TestAnalyze_Star(t *testing.T) {
	// center 0 with leaves 1..4
	g := buildGraph(t, 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	res, err := bicomp.Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, res.CutVertices())
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, blockSets(res.Blocks))
}

func TestAnalyze_Path(t *testing.T) {
	// 0-1-2-3-4
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	res, err := bicomp.Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, res.CutVertices())
	assert.Equal(t, [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, blockSets(res.Blocks))
}

func TestAnalyze_Triangle(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	res, err := bicomp.Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, 0, res.CutCount())
	assert.Equal(t, [][]int{{0, 1, 2}}, blockSets(res.Blocks))
}

func TestAnalyze_Dumbbell(t *testing.T) {
	// two triangles joined by the bridge 2-3
	g := buildGraph(t, 6, [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{2, 3},
	})
	res, err := bicomp.Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, res.CutVertices())
	assert.Equal(t, [][]int{{0, 1, 2}, {2, 3}, {3, 4, 5}}, blockSets(res.Blocks))
}

func TestAnalyze_DisconnectedForest(t *testing.T) {
	// component A: path 0-1; component B: triangle 2,3,4; isolated 5
	g := buildGraph(t, 6, [][2]int{{0, 1}, {2, 3}, {3, 4}, {4, 2}})
	res, err := bicomp.Analyze(g)
	require.NoError(t, err)

	for v := 0; v < 6; v++ {
		assert.True(t, res.Visited[v], "forest traversal must reach %d", v)
	}
	assert.Equal(t, 0, res.CutCount())
	assert.Equal(t, [][]int{{0, 1}, {2, 3, 4}}, blockSets(res.Blocks))
}

func TestAnalyze_LowNeverExceedsDisc(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 40; trial++ {
		g := randomGraph(t, rng, 4+rng.Intn(9), 0.3)
		res, err := bicomp.Analyze(g)
		require.NoError(t, err)
		for v := 0; v < g.Order(); v++ {
			require.True(t, res.Visited[v])
			require.LessOrEqual(t, res.Low[v], res.Disc[v], "low[%d] > disc[%d]", v, v)
			require.Positive(t, res.Disc[v])
		}
	}
}

func TestAnalyze_MatchesBruteForceOracle(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		rng := rand.New(rand.NewSource(seed))
		n := 4 + rng.Intn(9) // V ≤ 12
		g := randomGraph(t, rng, n, 0.25+rng.Float64()*0.3)

		res, err := bicomp.Analyze(g)
		require.NoError(t, err)

		want := oracleCutVertices(g)
		got := res.CutVertices()
		if want == nil {
			assert.Empty(t, got, "seed=%d", seed)
		} else {
			assert.Equal(t, want, got, "seed=%d n=%d", seed, n)
		}
	}
}

func TestAnalyze_BlockPartitionInvariants(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewSource(100 + seed))
		g := randomGraph(t, rng, 5+rng.Intn(8), 0.3)
		res, err := bicomp.Analyze(g)
		require.NoError(t, err)

		// membership[v] = number of blocks containing v
		membership := make([]int, g.Order())
		inBlock := make([]map[int]bool, len(res.Blocks))
		for i, blk := range res.Blocks {
			inBlock[i] = make(map[int]bool, len(blk))
			for _, v := range blk {
				require.False(t, inBlock[i][v], "seed=%d: duplicate member %d in block %d", seed, v, i)
				inBlock[i][v] = true
				membership[v]++
			}
		}

		// every edge belongs to exactly one block
		for _, e := range g.Edges() {
			owners := 0
			for i := range res.Blocks {
				if inBlock[i][e[0]] && inBlock[i][e[1]] {
					owners++
				}
			}
			require.Equal(t, 1, owners, "seed=%d: edge %v in %d blocks", seed, e, owners)
		}

		// cut vertices span ≥2 blocks, non-cut vertices with edges exactly 1
		for v := 0; v < g.Order(); v++ {
			switch {
			case res.CutVertex[v]:
				require.GreaterOrEqual(t, membership[v], 2, "seed=%d: cut %d", seed, v)
			case g.Degree(v) > 0:
				require.Equal(t, 1, membership[v], "seed=%d: vertex %d", seed, v)
			default:
				require.Equal(t, 0, membership[v], "seed=%d: isolated %d", seed, v)
			}
		}
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := randomGraph(t, rng, 10, 0.3)

	first, err := bicomp.Analyze(g)
	require.NoError(t, err)
	second, err := bicomp.Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, first.CutVertices(), second.CutVertices())
	assert.Equal(t, first.BlockCount(), second.BlockCount())
	assert.Equal(t, blockSets(first.Blocks), blockSets(second.Blocks))
}

func TestAnalyze_AdjacencyOrderInvariant(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 5}, {5, 3}}
	forward := buildGraph(t, 6, edges)

	reversed := make([][2]int, len(edges))
	for i, e := range edges {
		reversed[len(edges)-1-i] = [2]int{e[1], e[0]}
	}
	backward := buildGraph(t, 6, reversed)

	a, err := bicomp.Analyze(forward)
	require.NoError(t, err)
	b, err := bicomp.Analyze(backward)
	require.NoError(t, err)

	assert.Equal(t, a.CutVertices(), b.CutVertices())
	assert.Equal(t, blockSets(a.Blocks), blockSets(b.Blocks))
}

func TestAnalyze_ContextCanceled(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {2, 3}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bicomp.Analyze(g, bicomp.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
