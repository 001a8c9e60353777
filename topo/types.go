// SPDX-License-Identifier: MIT

package topo

import (
	"errors"
	"math/rand"
)

// Defaults for Random synthesis. DefaultDegreeCap mirrors the constrained
// neighborhood table of the embedded reference environment.
const (
	DefaultNodes          = 50
	DefaultConnectionProb = 0.15
	DefaultDegreeCap      = 80

	// crossEdgeFactor scales nodes·prob into the cross-edge target.
	crossEdgeFactor = 10
	// attemptFactor bounds cross-edge sampling at attemptFactor × target.
	attemptFactor = 3
	// distanceScale softens the id-distance bias of cross edges.
	distanceScale = 10.0

	// defaultSeed keeps zero-value configs reproducible.
	defaultSeed int64 = 1
)

// Sentinel errors for topology synthesis.
var (
	// ErrNodeCount indicates a node count below the requested shape's minimum.
	ErrNodeCount = errors.New("topo: node count too small")

	// ErrProbability indicates a connection probability outside [0, 1].
	ErrProbability = errors.New("topo: connection probability out of range")
)

// Config tunes Random synthesis.
type Config struct {
	// Nodes is the vertex count; ids are dense in [0, Nodes).
	Nodes int

	// ConnectionProb drives the cross-edge target: Nodes·ConnectionProb·10.
	ConnectionProb float64

	// DegreeCap limits per-vertex adjacency; 0 leaves the graph unbounded.
	DegreeCap int

	// Seed feeds the deterministic RNG; 0 selects a fixed default seed.
	Seed int64
}

// DefaultConfig returns the reference-environment defaults: 50 nodes,
// probability 0.15, degree cap 80, fixed seed.
func DefaultConfig() Config {
	return Config{
		Nodes:          DefaultNodes,
		ConnectionProb: DefaultConnectionProb,
		DegreeCap:      DefaultDegreeCap,
	}
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to the fixed
// default so zero-value configs stay reproducible.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
