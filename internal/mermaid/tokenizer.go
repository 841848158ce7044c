package mermaid

import (
	"strings"

	"github.com/aretw0/braid/pkg/grd"
)

// Line is one logical statement line of flowchart source.
type Line struct {
	Number int    // 1-based position in the source
	Text   string // trimmed statement text
}

// Lines splits flowchart source into statement lines. Blank lines and
// full-line `%%` comments are dropped; surviving lines are trimmed but keep
// their original 1-based line numbers so errors point back at the source.
func Lines(src string) []Line {
	raw := strings.Split(src, "\n")
	out := make([]Line, 0, len(raw))
	for i, text := range raw {
		text = strings.TrimSpace(text)
		if text == "" || strings.HasPrefix(text, "%%") {
			continue
		}
		out = append(out, Line{Number: i + 1, Text: text})
	}
	return out
}

// ParseHeader recognizes a diagram header line such as "flowchart TD" or
// "graph LR". It returns the declared direction and whether the line was a
// header at all. A header with no direction token defaults to top-down.
func ParseHeader(text string) (grd.Direction, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", false
	}
	switch fields[0] {
	case "flowchart", "graph":
	default:
		return "", false
	}
	if len(fields) == 1 {
		return grd.DirectionTD, true
	}
	switch d := grd.Direction(fields[1]); d {
	case grd.DirectionTD, grd.DirectionTB, grd.DirectionLR, grd.DirectionRL, grd.DirectionBT:
		return d, true
	}
	// "flowchart sideways" is not a header we understand; let the grammar
	// report it as a malformed statement instead of guessing.
	return "", false
}
