// SPDX-License-Identifier: MIT
// File: eps.go
// Role: Encapsulated PostScript export of the bipartite relation.
// Layout: elements as labelled dots in a vertical column on the left,
// nodes as dots in a horizontal row along the bottom, one line per
// (element, node) pair.

package viz

import (
	"fmt"
	"strings"

	"github.com/vbrankov/sparserel/o2m"
)

const (
	epsMargin  = 36.0
	epsSpacing = 24.0
	epsDotR    = 3.0
)

// ToEpsString renders a as an EPSF-3.0 document. The output is stable
// for a given relation; nothing beyond being well-formed PostScript is
// guaranteed.
func ToEpsString(a *o2m.O2M) string {
	elems := a.Count()
	nodes := a.MaxNode() + 1

	width := epsMargin*2 + float64(max(nodes, 1))*epsSpacing
	height := epsMargin*2 + float64(max(elems, 1))*epsSpacing

	elemX := epsMargin
	elemY := func(e int) float64 { return height - epsMargin - float64(e)*epsSpacing }
	nodeY := epsMargin
	nodeX := func(n int) float64 { return epsMargin + epsSpacing + float64(n)*epsSpacing }

	var b strings.Builder
	b.WriteString("%!PS-Adobe-3.0 EPSF-3.0\n")
	fmt.Fprintf(&b, "%%%%BoundingBox: 0 0 %.0f %.0f\n", width, height)
	b.WriteString("%%EndComments\n")
	b.WriteString("0.5 setlinewidth\n")

	// Relation lines first so the dots print on top of them.
	for e := 0; e < elems; e++ {
		for _, n := range a.Row(e) {
			if n < 0 {
				continue
			}
			fmt.Fprintf(&b, "newpath %.1f %.1f moveto %.1f %.1f lineto stroke\n",
				elemX, elemY(e), nodeX(n), nodeY)
		}
	}

	for e := 0; e < elems; e++ {
		fmt.Fprintf(&b, "newpath %.1f %.1f %.1f 0 360 arc fill\n", elemX, elemY(e), epsDotR)
		fmt.Fprintf(&b, "%.1f %.1f moveto /Helvetica findfont 8 scalefont setfont (e%d) show\n",
			elemX-epsMargin/2, elemY(e)-epsDotR, e)
	}
	for n := 0; n < nodes; n++ {
		fmt.Fprintf(&b, "newpath %.1f %.1f %.1f 0 360 arc fill\n", nodeX(n), nodeY, epsDotR)
		fmt.Fprintf(&b, "%.1f %.1f moveto /Helvetica findfont 8 scalefont setfont (n%d) show\n",
			nodeX(n)-epsDotR, nodeY-epsMargin/3, n)
	}

	b.WriteString("showpage\n")
	b.WriteString("%%EOF\n")

	return b.String()
}
