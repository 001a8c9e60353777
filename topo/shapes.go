// SPDX-License-Identifier: MIT

// Shape constructors shared by tests, examples, and benchmarks.
// All emit edges in a stable order, so analysis results are reproducible.

package topo

import (
	"fmt"

	"github.com/velmoren/meshify/core"
)

// Minimum orders per shape.
const (
	minStarNodes  = 2
	minPathNodes  = 2
	minRingNodes  = 3
	minWheelNodes = 4
)

// Star returns a hub-and-spoke graph: vertex 0 connected to 1..n-1.
// The hub is a cut vertex for n ≥ 3, and every spoke is its own block.
func Star(n int) (*core.Graph, error) {
	g, err := newShape("Star", n, minStarNodes)
	if err != nil {
		return nil, err
	}
	for v := 1; v < n; v++ {
		if err = shapeEdge("Star", g, 0, v); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Path returns the linear graph 0-1-…-(n-1). Every interior vertex is a
// cut vertex; the two end edges are the leaf blocks.
func Path(n int) (*core.Graph, error) {
	g, err := newShape("Path", n, minPathNodes)
	if err != nil {
		return nil, err
	}
	for v := 0; v < n-1; v++ {
		if err = shapeEdge("Path", g, v, v+1); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Ring returns the cycle 0-1-…-(n-1)-0: a biconnected graph with no cut
// vertices and a single block.
func Ring(n int) (*core.Graph, error) {
	g, err := newShape("Ring", n, minRingNodes)
	if err != nil {
		return nil, err
	}
	for v := 0; v < n-1; v++ {
		if err = shapeEdge("Ring", g, v, v+1); err != nil {
			return nil, err
		}
	}
	if err = shapeEdge("Ring", g, n-1, 0); err != nil {
		return nil, err
	}

	return g, nil
}

// Wheel returns a ring 1..n-1 with hub 0 connected to every rim vertex.
func Wheel(n int) (*core.Graph, error) {
	g, err := newShape("Wheel", n, minWheelNodes)
	if err != nil {
		return nil, err
	}
	for v := 1; v < n-1; v++ {
		if err = shapeEdge("Wheel", g, v, v+1); err != nil {
			return nil, err
		}
	}
	if err = shapeEdge("Wheel", g, n-1, 1); err != nil {
		return nil, err
	}
	for v := 1; v < n; v++ {
		if err = shapeEdge("Wheel", g, 0, v); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// newShape validates the order and allocates an unbounded store.
func newShape(name string, n, min int) (*core.Graph, error) {
	if n < min {
		return nil, fmt.Errorf("topo: %s: n=%d < min=%d: %w", name, n, min, ErrNodeCount)
	}
	g, err := core.New(n)
	if err != nil {
		return nil, fmt.Errorf("topo: %s: %w", name, err)
	}

	return g, nil
}

// shapeEdge inserts one shape edge with method context on failure.
// Constructors emit distinct in-range pairs exactly once on an unbounded
// store, so failures indicate a broken constructor, not bad input.
func shapeEdge(name string, g *core.Graph, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("topo: %s: AddEdge(%d,%d): %w", name, u, v, err)
	}

	return nil
}
