// Package extract pulls fenced mermaid code blocks out of surrounding text,
// typically markdown returned by a model.
package extract

import (
	"strings"

	"github.com/aretw0/braid/pkg/grd"
)

// Block locates the first fenced code block holding a diagram and returns
// its content verbatim: the extractor never rewrites what it finds, so
// re-wrapping the result in the same fence reproduces the original bytes.
// A block qualifies when its tag is "mermaid" (matched case-insensitively,
// three backticks or three tildes) or when it has no tag at all but its
// body starts a line with the "flowchart" or "graph" keyword; models often
// leave the info string off.
//
// When the text has no fence markers at all but already looks like
// flowchart source (contains the "flowchart" or "graph" keyword at the
// start of a line), the whole input is returned as-is. Otherwise Block
// returns grd.ErrNoDiagram; absence of a diagram is a recoverable
// condition, not a failure.
func Block(text string) (string, error) {
	if block, ok := fencedBlock(text); ok {
		return block, nil
	}
	if looksLikeFlowchart(text) {
		return strings.TrimSpace(text), nil
	}
	return "", grd.ErrNoDiagram
}

// fencedBlock scans for the first diagram-bearing fence: mermaid-tagged, or
// untagged with flowchart source inside. Differently-tagged blocks are
// skipped so a markdown document mixing code samples still yields the right
// diagram.
func fencedBlock(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		marker, tag, ok := fenceOpen(lines[i])
		if !ok {
			continue
		}
		var body []string
		for j := i + 1; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == marker {
				content := strings.Join(body, "\n")
				if strings.EqualFold(tag, "mermaid") {
					return content, true
				}
				if tag == "" && looksLikeFlowchart(content) {
					return content, true
				}
				// Not our block; resume the outer scan after it.
				i = j
				break
			}
			body = append(body, lines[j])
		}
	}
	return "", false
}

// fenceOpen recognizes an opening fence line and returns the closing marker
// plus the info tag.
func fenceOpen(line string) (marker, tag string, ok bool) {
	trimmed := strings.TrimSpace(line)
	for _, m := range []string{"```", "~~~"} {
		if strings.HasPrefix(trimmed, m) {
			return m, strings.TrimSpace(strings.TrimPrefix(trimmed, m)), true
		}
	}
	return "", "", false
}

func looksLikeFlowchart(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "flowchart" || fields[0] == "graph" {
			return true
		}
	}
	return false
}
