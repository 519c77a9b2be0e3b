// SPDX-License-Identifier: MIT
// File: dot.go
// Role: Graphviz DOT export of the bipartite relation, plus a PNG
// rasterizer over goccy/go-graphviz.

package viz

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/vbrankov/sparserel/o2m"
)

// ToDotString renders a as an undirected bipartite DOT graph: element
// vertices "e<i>" as boxes on one rank, node vertices "n<j>" as circles
// on another, one edge per (element, node) pair.
func ToDotString(a *o2m.O2M) string {
	var b strings.Builder
	b.WriteString("graph bipartite {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [fontsize=10];\n")

	b.WriteString("  { rank=same;")
	for e := 0; e < a.Count(); e++ {
		fmt.Fprintf(&b, " e%d [shape=box];", e)
	}
	b.WriteString(" }\n")

	b.WriteString("  { rank=same;")
	for n := 0; n <= a.MaxNode(); n++ {
		fmt.Fprintf(&b, " n%d [shape=circle];", n)
	}
	b.WriteString(" }\n")

	for e := 0; e < a.Count(); e++ {
		for _, n := range a.Row(e) {
			if n >= 0 {
				fmt.Fprintf(&b, "  e%d -- n%d;\n", e, n)
			}
		}
	}
	b.WriteString("}\n")

	return b.String()
}

// RenderPNG rasterizes the DOT export of a and writes the PNG bytes
// to w.
func RenderPNG(ctx context.Context, a *o2m.O2M, w io.Writer) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("viz: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDotString(a)))
	if err != nil {
		return fmt.Errorf("viz: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return fmt.Errorf("viz: render: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("viz: write: %w", err)
	}

	return nil
}
