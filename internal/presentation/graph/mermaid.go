// Package graph renders a parsed GRD back to Mermaid flowchart source.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/braid/pkg/grd"
)

// brackets maps each shape to its opening and closing tokens.
var brackets = map[grd.Shape][2]string{
	grd.ShapeRectangle:     {"[", "]"},
	grd.ShapeRounded:       {"(", ")"},
	grd.ShapeCircle:        {"((", "))"},
	grd.ShapeDecision:      {"{", "}"},
	grd.ShapeSubroutine:    {"[[", "]]"},
	grd.ShapeParallelogram: {"[/", "/]"},
}

// Render produces Mermaid flowchart source for a structure: the direction
// header, one declaration per node in declaration order, then one line per
// edge in source order. Parsing the output again yields an equivalent
// structure, which is what makes stored GRDs round-trippable.
func Render(s *grd.Structure) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "flowchart %s\n", s.Direction())

	for _, node := range s.Nodes() {
		b, ok := brackets[node.Shape]
		if !ok {
			b = brackets[grd.ShapeRectangle]
		}
		if node.Label == node.ID && node.Shape == grd.ShapeRectangle {
			// Bare node: no annotation worth repeating.
			fmt.Fprintf(&sb, "    %s\n", node.ID)
			continue
		}
		fmt.Fprintf(&sb, "    %s%s%s%s\n", node.ID, b[0], quoteLabel(node.Label), b[1])
	}

	for _, e := range s.Edges() {
		if e.Label != "" {
			fmt.Fprintf(&sb, "    %s -->|%s| %s\n", e.From, quoteLabel(e.Label), e.To)
			continue
		}
		fmt.Fprintf(&sb, "    %s --> %s\n", e.From, e.To)
	}

	return sb.String()
}

// quoteLabel protects labels containing characters the grammar treats as
// structure. Double quotes inside labels become single quotes, the same
// concession Mermaid itself requires.
func quoteLabel(label string) string {
	if !strings.ContainsAny(label, `"|[]{}()<>`) {
		return label
	}
	return `"` + strings.ReplaceAll(label, `"`, "'") + `"`
}
