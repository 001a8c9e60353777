package core

import "sort"

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.order }

// DegreeCap returns the configured per-vertex capacity, 0 when unbounded.
func (g *Graph) DegreeCap() int { return g.degreeCap }

// EdgeCount returns the total number of edges, redundant ones included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// RedundantEdgeCount returns the number of edges marked redundant.
func (g *Graph) RedundantEdgeCount() int { return len(g.redundant) }

// Degree returns the number of edges incident to u, or 0 for an
// out-of-range id.
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= g.order {
		return 0
	}

	return len(g.adj[u])
}

// Neighbors returns a copy of u's adjacency list in insertion order.
// Mutating the returned slice does not affect the graph.
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= g.order {
		return nil
	}
	out := make([]int, len(g.adj[u]))
	copy(out, g.adj[u])

	return out
}

// HasEdge reports whether an edge between u and v exists.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.edges[key(u, v)]

	return ok
}

// IsRedundant reports whether the edge between u and v exists and carries
// the redundant mark.
func (g *Graph) IsRedundant(u, v int) bool {
	_, ok := g.redundant[key(u, v)]

	return ok
}

// AddEdge inserts the undirected edge (u, v).
//
// Validation ladder (first failure wins):
//  1. Both ids must lie in [0, n)            → ErrVertexRange
//  2. u must differ from v                   → ErrSelfLoop
//  3. The edge must not already exist        → ErrEdgeExists
//  4. Both endpoints must have spare capacity → ErrDegreeCapacity
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.order || v < 0 || v >= g.order {
		return ErrVertexRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if g.HasEdge(u, v) {
		return ErrEdgeExists
	}
	if g.degreeCap > 0 && (len(g.adj[u]) >= g.degreeCap || len(g.adj[v]) >= g.degreeCap) {
		return ErrDegreeCapacity
	}

	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges[key(u, v)] = struct{}{}

	return nil
}

// AddRedundantEdge inserts (u, v) like AddEdge and, on success, marks the
// edge redundant. On failure the graph is unchanged.
func (g *Graph) AddRedundantEdge(u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return err
	}
	g.redundant[key(u, v)] = struct{}{}

	return nil
}

// Edges returns every edge exactly once as [2]int{u, v} with u < v,
// sorted ascending by (u, v). The deterministic order keeps exports and
// golden tests stable regardless of insertion history.
//
// Complexity: O(E log E).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, len(g.edges))
	for p := range g.edges {
		out = append(out, [2]int{p.u, p.v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}

// MaxDegree returns the largest vertex degree currently in the graph.
func (g *Graph) MaxDegree() int {
	max := 0
	for _, nbs := range g.adj {
		if len(nbs) > max {
			max = len(nbs)
		}
	}

	return max
}

// AvgDegree returns the mean vertex degree, 2E/V.
func (g *Graph) AvgDegree() float64 {
	return 2 * float64(len(g.edges)) / float64(g.order)
}
