package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/braid/pkg/grd"
)

// NewRenderer returns a function that renders markdown for the terminal
// using glamour, auto-detecting light/dark background.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		// Fall back to passing markdown through untouched.
		return func(markdown string) (string, error) { return markdown, nil }
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// PlanMarkdown formats an execution plan as a markdown document suitable
// for NewRenderer.
func PlanMarkdown(steps []grd.Step) string {
	var sb strings.Builder
	sb.WriteString("# Execution Plan\n\n")
	for _, s := range steps {
		if len(s.DependsOn) == 0 {
			fmt.Fprintf(&sb, "%d. **%s** (`%s`)\n", s.Number, s.Label, s.ID)
			continue
		}
		fmt.Fprintf(&sb, "%d. **%s** (`%s`) (after %s)\n",
			s.Number, s.Label, s.ID, strings.Join(s.DependsOn, ", "))
	}
	return sb.String()
}
