package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/braid/pkg/grd"
)

const diagram = "flowchart TD\n    A[Start] --> B[End]"

func TestBlock_BacktickFence(t *testing.T) {
	text := "Here is the plan:\n\n```mermaid\n" + diagram + "\n```\n\nDone."

	got, err := Block(text)
	if err != nil {
		t.Fatalf("Block() error = %v", err)
	}
	if got != diagram {
		t.Errorf("Block() = %q, want %q", got, diagram)
	}
}

func TestBlock_TildeFence(t *testing.T) {
	text := "~~~mermaid\n" + diagram + "\n~~~"

	got, err := Block(text)
	if err != nil {
		t.Fatalf("Block() error = %v", err)
	}
	if got != diagram {
		t.Errorf("Block() = %q, want %q", got, diagram)
	}
}

func TestBlock_CaseInsensitiveTag(t *testing.T) {
	text := "```Mermaid\n" + diagram + "\n```"

	got, err := Block(text)
	if err != nil {
		t.Fatalf("Block() error = %v", err)
	}
	if got != diagram {
		t.Errorf("Block() = %q, want %q", got, diagram)
	}
}

func TestBlock_UntaggedFence(t *testing.T) {
	// Models often omit the info string; an untagged fence wrapping
	// flowchart source still counts, and only the body comes back.
	text := "Here is the plan:\n\n```\n" + diagram + "\n```\n"

	got, err := Block(text)
	if err != nil {
		t.Fatalf("Block() error = %v", err)
	}
	if got != diagram {
		t.Errorf("Block() = %q, want %q", got, diagram)
	}
}

func TestBlock_UntaggedFenceWithoutFlowchart(t *testing.T) {
	text := "```\nnot a diagram\n```"

	_, err := Block(text)
	if !errors.Is(err, grd.ErrNoDiagram) {
		t.Errorf("Block() error = %v, want ErrNoDiagram", err)
	}
}

func TestBlock_SkipsOtherBlocks(t *testing.T) {
	text := "```python\nprint('hi')\n```\n\n```mermaid\n" + diagram + "\n```"

	got, err := Block(text)
	if err != nil {
		t.Fatalf("Block() error = %v", err)
	}
	if got != diagram {
		t.Errorf("Block() = %q, want %q", got, diagram)
	}
}

func TestBlock_FirstMermaidWins(t *testing.T) {
	second := "flowchart LR\n    X --> Y"
	text := "```mermaid\n" + diagram + "\n```\n```mermaid\n" + second + "\n```"

	got, err := Block(text)
	if err != nil {
		t.Fatalf("Block() error = %v", err)
	}
	if got != diagram {
		t.Errorf("Block() = %q, want first block %q", got, diagram)
	}
}

func TestBlock_BareSourceFallback(t *testing.T) {
	got, err := Block("  " + diagram + "  ")
	if err != nil {
		t.Fatalf("Block() error = %v", err)
	}
	if got != diagram {
		t.Errorf("Block() = %q, want %q", got, diagram)
	}
}

func TestBlock_NotFound(t *testing.T) {
	_, err := Block("just some prose with no diagram in it")
	if !errors.Is(err, grd.ErrNoDiagram) {
		t.Errorf("Block() error = %v, want ErrNoDiagram", err)
	}
}

func TestBlock_RoundTrip(t *testing.T) {
	// The extractor must not alter content: re-wrapping the result in the
	// same fence reproduces the original block byte for byte.
	body := "flowchart TD\n    A[Start]  -->  B[End]\n    %% comment kept verbatim"
	text := "```mermaid\n" + body + "\n```"

	got, err := Block(text)
	if err != nil {
		t.Fatalf("Block() error = %v", err)
	}
	if rewrapped := "```mermaid\n" + got + "\n```"; rewrapped != text {
		t.Errorf("round-trip mismatch:\n got %q\nwant %q", rewrapped, text)
	}
}

func TestParseDocument_Frontmatter(t *testing.T) {
	text := strings.Join([]string{
		"---",
		"title: Word problem",
		"tags: [math, easy]",
		"difficulty: 2",
		"---",
		"",
		"```mermaid",
		diagram,
		"```",
	}, "\n")

	doc, err := ParseDocument(text)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if doc.Meta.Title != "Word problem" {
		t.Errorf("Title = %q, want %q", doc.Meta.Title, "Word problem")
	}
	if len(doc.Meta.Tags) != 2 || doc.Meta.Tags[0] != "math" {
		t.Errorf("Tags = %v, want [math easy]", doc.Meta.Tags)
	}
	if _, ok := doc.Meta.Extra["difficulty"]; !ok {
		t.Errorf("Extra = %v, want difficulty key", doc.Meta.Extra)
	}
	if doc.Source != diagram {
		t.Errorf("Source = %q, want %q", doc.Source, diagram)
	}
}

func TestParseDocument_NoFrontmatter(t *testing.T) {
	doc, err := ParseDocument("```mermaid\n" + diagram + "\n```")
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if doc.Meta.Title != "" {
		t.Errorf("Title = %q, want empty", doc.Meta.Title)
	}
	if doc.Source != diagram {
		t.Errorf("Source = %q, want %q", doc.Source, diagram)
	}
}

func TestParseDocument_MalformedFrontmatter(t *testing.T) {
	_, err := ParseDocument("---\n\t: bad\n---\nbody")
	if err == nil {
		t.Fatal("ParseDocument() should reject malformed frontmatter")
	}
}
