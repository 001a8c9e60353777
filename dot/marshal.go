package dot

import (
	"fmt"
	"os"
	"strings"

	"github.com/velmoren/meshify/bicomp"
	"github.com/velmoren/meshify/core"
)

// Marshal renders g as an undirected DOT graph.
//
// Styling: vertex 0 is the root (blue on lightblue); vertices flagged in
// res.CutVertex are cut vertices (red on pink); with WithRedundant(true),
// edges marked redundant in g draw green and thick. res may be nil, in
// which case no cut-vertex styling is applied.
//
// Complexity: O(V + E log E) (edges are emitted in deterministic order).
func Marshal(g *core.Graph, res *bicomp.Result, opts ...Option) ([]byte, error) {
	// 1. Validate and apply options
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	var b strings.Builder

	// 2. Header: sfdp layout hints for large sparse topologies
	fmt.Fprintf(&b, "graph %s {\n", o.Name)
	b.WriteString("  layout=sfdp; K=0.5; overlap=prism; splines=true;\n")
	b.WriteString("  node [shape=circle,width=0.3,fixedsize=true,fontsize=8];\n")

	// 3. Styled vertices: root first, then cut vertices
	for u := 0; u < g.Order(); u++ {
		switch {
		case u == 0:
			fmt.Fprintf(&b, "  %d [color=blue,style=filled,fillcolor=lightblue];\n", u)
		case res != nil && u < len(res.CutVertex) && res.CutVertex[u]:
			fmt.Fprintf(&b, "  %d [color=red,style=filled,fillcolor=pink];\n", u)
		}
	}

	// 4. Edges, each once with u < v
	for _, e := range g.Edges() {
		if o.Redundant && g.IsRedundant(e[0], e[1]) {
			fmt.Fprintf(&b, "  %d -- %d [color=\"#00AA00\",penwidth=2.0];\n", e[0], e[1])
		} else {
			fmt.Fprintf(&b, "  %d -- %d [color=black];\n", e[0], e[1])
		}
	}

	b.WriteString("}\n")

	return []byte(b.String()), nil
}

// WriteFile marshals g and writes the DOT text to path with 0644
// permissions.
func WriteFile(path string, g *core.Graph, res *bicomp.Result, opts ...Option) error {
	data, err := Marshal(g, res, opts...)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("dot: write %s: %w", path, err)
	}

	return nil
}
