package bicomp

import (
	"github.com/velmoren/meshify/core"
)

// stackEdge is one entry of the transient DFS edge stack used to delimit
// block boundaries. The stack is empty before and after a complete pass.
type stackEdge struct{ u, v int }

// frame is one explicit DFS stack frame. Frames replace native recursion:
// tree depth can reach V on path-like graphs, so the walk must not grow
// the goroutine stack proportionally.
type frame struct {
	node     int // vertex being explored
	next     int // cursor into the vertex's adjacency list
	children int // tree children discovered so far (root articulation test)
}

// walker holds all per-pass bookkeeping. A fresh walker is built for every
// Analyze call; nothing leaks between passes.
type walker struct {
	adj       [][]int
	res       *Result
	timer     int
	edgeStack []stackEdge
	frames    []frame
	inBlock   []int // scratch: last block index that claimed the vertex
}

// Analyze runs a biconnectivity decomposition over the graph's current
// edge set. It visits every component (iterating unvisited roots), marks
// cut vertices, and partitions the edges into blocks.
//
// Cancellation via WithContext is checked between root traversals.
//
// Complexity: O(V+E) time, O(V+E) memory.
func Analyze(g *core.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Snapshot adjacency and build fresh per-pass state
	n := g.Order()
	adj := make([][]int, n)
	for u := 0; u < n; u++ {
		adj[u] = g.Neighbors(u)
	}
	res := &Result{
		Disc:      make([]int, n),
		Low:       make([]int, n),
		Parent:    make([]int, n),
		Visited:   make([]bool, n),
		CutVertex: make([]bool, n),
	}
	w := &walker{adj: adj, res: res, inBlock: make([]int, n)}
	for u := 0; u < n; u++ {
		res.Parent[u] = -1
		w.inBlock[u] = -1
	}

	// 4. Traverse the forest: one tree per unvisited root
	for root := 0; root < n; root++ {
		if res.Visited[root] {
			continue
		}
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}
		w.explore(root)
	}

	return res, nil
}

// explore walks one DFS tree from root using the explicit frame stack,
// assigning discovery/low values, marking cut vertices, and popping blocks
// off the edge stack at articulation boundaries.
func (w *walker) explore(root int) {
	w.discover(root)
	w.frames = append(w.frames[:0], frame{node: root})

	for len(w.frames) > 0 {
		f := &w.frames[len(w.frames)-1]
		u := f.node

		// 1. Advance u's neighbor cursor until a tree edge descends or
		//    the adjacency is exhausted.
		descended := false
		for f.next < len(w.adj[u]) {
			v := w.adj[u][f.next]
			f.next++

			if !w.res.Visited[v] {
				// Tree edge: push (u,v), descend into v.
				f.children++
				w.res.Parent[v] = u
				w.edgeStack = append(w.edgeStack, stackEdge{u, v})
				w.discover(v)
				w.frames = append(w.frames, frame{node: v})
				descended = true
				break
			}

			// Back edge, observed from its deeper endpoint only so each
			// edge is stacked exactly once. The parent edge is excluded.
			if v != w.res.Parent[u] && w.res.Disc[v] < w.res.Disc[u] {
				w.edgeStack = append(w.edgeStack, stackEdge{u, v})
				if w.res.Disc[v] < w.res.Low[u] {
					w.res.Low[u] = w.res.Disc[v]
				}
			}
		}
		if descended {
			continue
		}

		// 2. u is finished: unwind one frame and run the child-return
		//    logic in its parent (the recursive "after the call" block).
		w.frames = w.frames[:len(w.frames)-1]
		if len(w.frames) == 0 {
			// Root finished. Any residual stacked edges form the last
			// block of this component (root with one child, or a root
			// block never closed by the articulation test).
			if len(w.edgeStack) > 0 {
				w.drainBlock(stackEdge{-1, -1})
			}

			continue
		}

		p := &w.frames[len(w.frames)-1]
		pu := p.node
		if w.res.Low[u] < w.res.Low[pu] {
			w.res.Low[pu] = w.res.Low[u]
		}

		// Articulation test: a root with more than one tree child, or a
		// non-root whose subtree cannot reach above it.
		rootCut := w.res.Parent[pu] == -1 && p.children > 1
		innerCut := w.res.Parent[pu] != -1 && w.res.Low[u] >= w.res.Disc[pu]
		if rootCut || innerCut {
			w.res.CutVertex[pu] = true
			w.drainBlock(stackEdge{pu, u})
		}
	}
}

// discover stamps v with the next discovery time and seeds its low-link.
func (w *walker) discover(v int) {
	w.res.Visited[v] = true
	w.timer++
	w.res.Disc[v] = w.timer
	w.res.Low[v] = w.timer
}

// drainBlock pops the edge stack into a new block. With a real boundary
// edge it pops until that edge inclusive; with the {-1,-1} sentinel it
// drains the whole stack (root residue). Each distinct endpoint is
// collected once, deduplicated via the inBlock stamp.
func (w *walker) drainBlock(until stackEdge) {
	id := len(w.res.Blocks)
	var members Block

	for len(w.edgeStack) > 0 {
		e := w.edgeStack[len(w.edgeStack)-1]
		w.edgeStack = w.edgeStack[:len(w.edgeStack)-1]

		if w.inBlock[e.u] != id {
			w.inBlock[e.u] = id
			members = append(members, e.u)
		}
		if w.inBlock[e.v] != id {
			w.inBlock[e.v] = id
			members = append(members, e.v)
		}

		if e == until {
			break
		}
	}

	w.res.Blocks = append(w.res.Blocks, members)
}
