package bicomp

import "github.com/velmoren/meshify/core"

// Verify re-analyzes the (typically meshified) graph with independent
// state and reports the residual cut-vertex and block counts against the
// pre-meshification pass.
//
// Complexity: O(V+E), one full analysis pass.
func Verify(g *core.Graph, before *Result, opts ...Option) (*VerifyReport, error) {
	after, err := Analyze(g, opts...)
	if err != nil {
		return nil, err
	}

	rep := &VerifyReport{
		After:       after,
		CutAfter:    after.CutCount(),
		BlocksAfter: after.BlockCount(),
	}
	if before != nil {
		rep.CutBefore = before.CutCount()
		rep.BlocksBefore = before.BlockCount()
	}

	return rep, nil
}
