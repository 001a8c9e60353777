package main

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Report is the printable summary of one meshification run.
type Report struct {
	RunID     string
	Timestamp time.Time

	Nodes          int
	MaxNodes       int
	ConnectionProb float64
	Seed           int64

	OriginalEdges  int
	RedundantEdges int

	AvgDegreeInitial float64
	AvgDegreeFinal   float64
	MaxDegreeFinal   int

	Blocks       int
	LeafBlocks   int
	SkippedPairs int
	CutBefore    int
	CutAfter     int

	Timings timings
	Files   []string
}

// TotalEdges returns the post-meshification edge count.
func (r *Report) TotalEdges() int { return r.OriginalEdges + r.RedundantEdges }

// OverheadPct returns the redundant-edge overhead relative to the
// original edge count.
func (r *Report) OverheadPct() float64 {
	if r.OriginalEdges == 0 {
		return 0
	}

	return 100 * float64(r.RedundantEdges) / float64(r.OriginalEdges)
}

// EliminatedPct returns the share of initial cut vertices removed.
func (r *Report) EliminatedPct() float64 {
	if r.CutBefore == 0 {
		return 0
	}

	return 100 * float64(r.CutBefore-r.CutAfter) / float64(r.CutBefore)
}

// Write renders the report as aligned plain text.
func (r *Report) Write(w io.Writer) {
	sec := func(title string) {
		fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
	}

	fmt.Fprintf(w, "MESHIFICATION RESULTS\n")
	fmt.Fprintf(w, "run %s at %s\n", r.RunID, r.Timestamp.Format("2006-01-02 15:04:05"))

	sec("Network configuration")
	fmt.Fprintf(w, "  network size          %6d nodes (max %d)\n", r.Nodes, r.MaxNodes)
	fmt.Fprintf(w, "  connection prob       %6.2f\n", r.ConnectionProb)
	fmt.Fprintf(w, "  seed                  %6d\n", r.Seed)

	sec("Topology metrics")
	fmt.Fprintf(w, "  original edges        %6d\n", r.OriginalEdges)
	fmt.Fprintf(w, "  redundant edges added %6d\n", r.RedundantEdges)
	fmt.Fprintf(w, "  total edges           %6d\n", r.TotalEdges())
	fmt.Fprintf(w, "  edge overhead         %6.2f%%\n", r.OverheadPct())

	sec("Degree distribution")
	fmt.Fprintf(w, "  avg degree initial    %6.2f\n", r.AvgDegreeInitial)
	fmt.Fprintf(w, "  avg degree final      %6.2f\n", r.AvgDegreeFinal)
	fmt.Fprintf(w, "  max degree final      %6d\n", r.MaxDegreeFinal)

	sec("Biconnectivity analysis")
	fmt.Fprintf(w, "  biconnected blocks    %6d\n", r.Blocks)
	fmt.Fprintf(w, "  leaf blocks           %6d\n", r.LeafBlocks)
	fmt.Fprintf(w, "  skipped pairings      %6d\n", r.SkippedPairs)
	fmt.Fprintf(w, "  cut vertices initial  %6d\n", r.CutBefore)
	fmt.Fprintf(w, "  cut vertices final    %6d\n", r.CutAfter)
	fmt.Fprintf(w, "  eliminated            %6d (%.1f%%)\n", r.CutBefore-r.CutAfter, r.EliminatedPct())

	sec("Execution time")
	fmt.Fprintf(w, "  topology generation   %10s\n", r.Timings.Generate.Round(time.Microsecond))
	fmt.Fprintf(w, "  initial analysis      %10s\n", r.Timings.Analyze.Round(time.Microsecond))
	fmt.Fprintf(w, "  redundancy addition   %10s\n", r.Timings.Meshify.Round(time.Microsecond))
	fmt.Fprintf(w, "  final analysis        %10s\n", r.Timings.Verify.Round(time.Microsecond))
	fmt.Fprintf(w, "  dot export            %10s\n", r.Timings.Export.Round(time.Microsecond))
	fmt.Fprintf(w, "  total                 %10s\n", r.Timings.Total.Round(time.Microsecond))

	if len(r.Files) > 0 {
		sec("Output files")
		for _, f := range r.Files {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
}
