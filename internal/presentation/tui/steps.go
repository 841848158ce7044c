package tui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/aretw0/braid/pkg/grd"
)

var (
	stepNum  = color.New(color.FgCyan, color.Bold)
	stepDeps = color.New(color.Faint)
	noteTint = color.New(color.FgYellow)
)

// FormatSteps renders an execution plan as colored terminal text, one line
// per step. Color codes are suppressed automatically when stdout is not a
// terminal, so the output stays pipe-safe.
func FormatSteps(steps []grd.Step) string {
	var sb strings.Builder
	for _, s := range steps {
		sb.WriteString(stepNum.Sprintf("%3d.", s.Number))
		fmt.Fprintf(&sb, " %s (%s)", s.Label, s.ID)
		if len(s.DependsOn) > 0 {
			sb.WriteString(stepDeps.Sprintf("  depends on: %s", strings.Join(s.DependsOn, ", ")))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatNotes renders non-fatal validation notes.
func FormatNotes(notes []string) string {
	var sb strings.Builder
	for _, n := range notes {
		sb.WriteString(noteTint.Sprintf("note: %s", n))
		sb.WriteString("\n")
	}
	return sb.String()
}
