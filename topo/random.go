// SPDX-License-Identifier: MIT

package topo

import (
	"errors"
	"fmt"

	"github.com/velmoren/meshify/core"
)

// Random synthesizes a tree-like network topology.
//
// Stage 1 builds a spanning-tree backbone: each vertex i ∈ [1, n) attaches
// to a uniformly random earlier vertex, so the graph starts connected and
// saturated with cut vertices. Stage 2 sprinkles cross edges until the
// target density nodes·prob·10 is met or the attempt budget (3× target)
// runs out; a candidate (u, v) is accepted with probability
// 1/(1+|u−v|/10), biasing links toward id-near vertices the way physical
// proximity does.
//
// Degree-capacity refusals are skipped (the node's neighborhood is full);
// duplicate and self-pair candidates are simply re-rolled against the
// attempt budget.
//
// Deterministic for a fixed Config. Complexity: O(n + target attempts).
func Random(cfg Config) (*core.Graph, error) {
	// 1. Validate parameters
	if cfg.Nodes < 2 {
		return nil, fmt.Errorf("topo: Random: nodes=%d: %w", cfg.Nodes, ErrNodeCount)
	}
	if cfg.ConnectionProb < 0 || cfg.ConnectionProb > 1 {
		return nil, fmt.Errorf("topo: Random: prob=%v: %w", cfg.ConnectionProb, ErrProbability)
	}

	// 2. Allocate the store
	var gopts []core.Option
	if cfg.DegreeCap > 0 {
		gopts = append(gopts, core.WithDegreeCap(cfg.DegreeCap))
	}
	g, err := core.New(cfg.Nodes, gopts...)
	if err != nil {
		return nil, fmt.Errorf("topo: Random: %w", err)
	}
	rng := rngFromSeed(cfg.Seed)

	// 3. Spanning-tree backbone
	for i := 1; i < cfg.Nodes; i++ {
		parent := rng.Intn(i)
		if err = g.AddEdge(i, parent); err != nil && !errors.Is(err, core.ErrDegreeCapacity) {
			return nil, fmt.Errorf("topo: Random: backbone AddEdge(%d,%d): %w", i, parent, err)
		}
	}

	// 4. Distance-biased cross edges up to the density target
	target := int(float64(cfg.Nodes) * cfg.ConnectionProb * crossEdgeFactor)
	for attempts := 0; g.EdgeCount() < target && attempts < attemptFactor*target; attempts++ {
		u, v := rng.Intn(cfg.Nodes), rng.Intn(cfg.Nodes)
		if u == v || g.HasEdge(u, v) {
			continue
		}

		dist := u - v
		if dist < 0 {
			dist = -dist
		}
		if rng.Float64() >= 1.0/(1.0+float64(dist)/distanceScale) {
			continue
		}

		if err = g.AddEdge(u, v); err != nil && !errors.Is(err, core.ErrDegreeCapacity) {
			return nil, fmt.Errorf("topo: Random: cross AddEdge(%d,%d): %w", u, v, err)
		}
	}

	return g, nil
}
