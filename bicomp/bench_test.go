package bicomp_test

import (
	"testing"

	"github.com/velmoren/meshify/bicomp"
	"github.com/velmoren/meshify/topo"
)

// BenchmarkAnalyze_Path10000 stresses the explicit frame stack: a path
// graph drives the DFS to its maximum depth (V frames on the heap, zero
// goroutine-stack growth).
//
// Complexity per op: O(V + E) ≈ O(2V).
func BenchmarkAnalyze_Path10000(b *testing.B) {
	g, err := topo.Path(10000)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bicomp.Analyze(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAnalyze_Random1000 measures the decomposition on a synthesized
// tree-plus-cross-edge topology of 1000 nodes.
func BenchmarkAnalyze_Random1000(b *testing.B) {
	g, err := topo.Random(topo.Config{Nodes: 1000, ConnectionProb: 0.15, Seed: 1})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bicomp.Analyze(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHarden_Random500 measures the full pipeline. Harden mutates its
// input, so each iteration resynthesizes the graph; the rebuild cost is
// included and identical across iterations (fixed seed).
func BenchmarkHarden_Random500(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g, err := topo.Random(topo.Config{Nodes: 500, ConnectionProb: 0.1, Seed: 7})
		if err != nil {
			b.Fatal(err)
		}
		if _, err = bicomp.Harden(g); err != nil {
			b.Fatal(err)
		}
	}
}
