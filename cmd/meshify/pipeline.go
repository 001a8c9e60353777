package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/velmoren/meshify/bicomp"
	"github.com/velmoren/meshify/dot"
	"github.com/velmoren/meshify/topo"
)

// Output file names, kept from the tool's RPL DODAG origin.
const (
	dotOldName   = "dodag_old.dot"
	dotFinalName = "dodag_final.dot"
	pngOldName   = "dodag_old.png"
	pngFinalName = "dodag_final.png"
)

// timings captures per-stage wall time for the run report.
type timings struct {
	Generate time.Duration
	Analyze  time.Duration
	Meshify  time.Duration
	Verify   time.Duration
	Export   time.Duration
	Total    time.Duration
}

// run executes one meshification batch: synthesize, analyze, export the
// original view, meshify, verify, export the final view, optionally
// render. Export and render failures are logged and non-fatal; the core
// results stay valid either way.
func run(ctx context.Context, cfg Config, log *logrus.Entry) (*Report, error) {
	startTotal := time.Now()
	var tm timings

	// 1. Topology synthesis
	start := time.Now()
	g, err := topo.Random(topo.Config{
		Nodes:          cfg.Nodes,
		ConnectionProb: cfg.ConnectionProb,
		DegreeCap:      cfg.DegreeCap,
		Seed:           cfg.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize topology: %w", err)
	}
	tm.Generate = time.Since(start)
	originalEdges := g.EdgeCount()
	avgDegreeInitial := g.AvgDegree()
	log.WithFields(logrus.Fields{
		"nodes": cfg.Nodes,
		"edges": originalEdges,
	}).Info("topology generated")

	// 2. Initial analysis
	start = time.Now()
	before, err := bicomp.Analyze(g, bicomp.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("initial analysis: %w", err)
	}
	tm.Analyze = time.Since(start)
	log.WithFields(logrus.Fields{
		"cut_vertices": before.CutCount(),
		"blocks":       before.BlockCount(),
	}).Info("initial analysis complete")

	// 3. Export the pre-meshification view
	oldDot := filepath.Join(cfg.OutputDir, dotOldName)
	start = time.Now()
	if err = dot.WriteFile(oldDot, g, before); err != nil {
		log.WithError(err).Warn("export of original topology failed")
		oldDot = ""
	}
	tm.Export += time.Since(start)

	// 4. Meshify and verify (skipped when already biconnected)
	var (
		leaves []bicomp.LeafBlock
		mesh   = &bicomp.MeshResult{}
		verify *bicomp.VerifyReport
	)
	if before.CutCount() > 0 {
		start = time.Now()
		leaves = bicomp.LeafBlocks(before)
		mesh = bicomp.Meshify(g, leaves)
		tm.Meshify = time.Since(start)
		log.WithFields(logrus.Fields{
			"leaf_blocks": len(leaves),
			"edges_added": len(mesh.Added),
			"skipped":     mesh.Skipped,
		}).Info("redundant edges added")

		start = time.Now()
		if verify, err = bicomp.Verify(g, before, bicomp.WithContext(ctx)); err != nil {
			return nil, fmt.Errorf("verification analysis: %w", err)
		}
		tm.Verify = time.Since(start)
	} else {
		log.Info("graph is already biconnected")
		verify = &bicomp.VerifyReport{
			After:        before,
			BlocksBefore: before.BlockCount(),
			BlocksAfter:  before.BlockCount(),
		}
	}

	// 5. Export the final view with redundant-edge styling
	finalDot := filepath.Join(cfg.OutputDir, dotFinalName)
	start = time.Now()
	if err = dot.WriteFile(finalDot, g, verify.After, dot.WithRedundant(true)); err != nil {
		log.WithError(err).Warn("export of meshified topology failed")
		finalDot = ""
	}
	tm.Export += time.Since(start)

	// 6. Optional rendering via Graphviz; never fatal
	var rendered []string
	if cfg.Render {
		for _, pair := range [][2]string{
			{oldDot, filepath.Join(cfg.OutputDir, pngOldName)},
			{finalDot, filepath.Join(cfg.OutputDir, pngFinalName)},
		} {
			if pair[0] == "" {
				continue
			}
			if err = dot.Render(ctx, pair[0], pair[1]); err != nil {
				log.WithError(err).Warn("render failed; install graphviz for PNG output")
				continue
			}
			rendered = append(rendered, pair[1])
		}
	}

	tm.Total = time.Since(startTotal)

	// 7. Assemble the report
	rep := &Report{
		Nodes:            cfg.Nodes,
		MaxNodes:         maxNodes,
		ConnectionProb:   cfg.ConnectionProb,
		Seed:             cfg.Seed,
		OriginalEdges:    originalEdges,
		RedundantEdges:   g.RedundantEdgeCount(),
		AvgDegreeInitial: avgDegreeInitial,
		AvgDegreeFinal:   g.AvgDegree(),
		MaxDegreeFinal:   g.MaxDegree(),
		Blocks:           before.BlockCount(),
		LeafBlocks:       len(leaves),
		SkippedPairs:     mesh.Skipped,
		CutBefore:        verify.CutBefore,
		CutAfter:         verify.CutAfter,
		Timings:          tm,
	}
	for _, f := range []string{oldDot, finalDot} {
		if f != "" {
			rep.Files = append(rep.Files, f)
		}
	}
	rep.Files = append(rep.Files, rendered...)

	return rep, nil
}
