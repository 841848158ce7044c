package mermaid

import (
	"errors"
	"testing"

	"github.com/aretw0/braid/pkg/grd"
)

func parseLine(t *testing.T, text string) Statement {
	t.Helper()
	stmt, err := ParseStatement(Line{Number: 1, Text: text})
	if err != nil {
		t.Fatalf("ParseStatement(%q) error = %v", text, err)
	}
	return stmt
}

func TestParseStatement_BareNode(t *testing.T) {
	stmt := parseLine(t, "A")
	if len(stmt.Nodes) != 1 || len(stmt.Edges) != 0 {
		t.Fatalf("got %d nodes %d edges, want 1/0", len(stmt.Nodes), len(stmt.Edges))
	}
	n := stmt.Nodes[0]
	if n.ID != "A" || n.Explicit {
		t.Errorf("node = %+v, want bare A", n)
	}
}

func TestParseStatement_Shapes(t *testing.T) {
	tests := []struct {
		text  string
		label string
		shape grd.Shape
	}{
		{"A[Label text]", "Label text", grd.ShapeRectangle},
		{"A(Rounded)", "Rounded", grd.ShapeRounded},
		{"A((Circle))", "Circle", grd.ShapeCircle},
		{"A{Decision?}", "Decision?", grd.ShapeDecision},
		{"A[[Subroutine]]", "Subroutine", grd.ShapeSubroutine},
		{"A[/Input/]", "Input", grd.ShapeParallelogram},
		{`A["quoted label"]`, "quoted label", grd.ShapeRectangle},
		{"A[]", "", grd.ShapeRectangle},
	}

	for _, tt := range tests {
		stmt := parseLine(t, tt.text)
		if len(stmt.Nodes) != 1 {
			t.Fatalf("%q: got %d nodes, want 1", tt.text, len(stmt.Nodes))
		}
		n := stmt.Nodes[0]
		if !n.Explicit || n.Label != tt.label || n.Shape != tt.shape {
			t.Errorf("%q: node = %+v, want label %q shape %q", tt.text, n, tt.label, tt.shape)
		}
	}
}

func TestParseStatement_Edges(t *testing.T) {
	tests := []struct {
		text  string
		label string
	}{
		{"A --> B", ""},
		{"A-->B", ""},
		{"A -.-> B", ""},
		{"A ==> B", ""},
		{"A -->|yes| B", "yes"},
		{"A -- yes --> B", "yes"},
		{"A -. maybe .-> B", "maybe"},
		{"A == fast ==> B", "fast"},
		{`A -- "has spaces" --> B`, "has spaces"},
	}

	for _, tt := range tests {
		stmt := parseLine(t, tt.text)
		if len(stmt.Edges) != 1 {
			t.Fatalf("%q: got %d edges, want 1", tt.text, len(stmt.Edges))
		}
		e := stmt.Edges[0]
		if e.From != "A" || e.To != "B" || e.Label != tt.label {
			t.Errorf("%q: edge = %+v, want A->B label %q", tt.text, e, tt.label)
		}
	}
}

func TestParseStatement_InlineDeclarationOnEdge(t *testing.T) {
	stmt := parseLine(t, "A[Start] -->|go| B{Check}")
	if len(stmt.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(stmt.Nodes))
	}
	if stmt.Nodes[0].Label != "Start" || stmt.Nodes[1].Shape != grd.ShapeDecision {
		t.Errorf("nodes = %+v", stmt.Nodes)
	}
	if stmt.Edges[0].Label != "go" {
		t.Errorf("edge label = %q, want go", stmt.Edges[0].Label)
	}
}

func TestParseStatement_Chain(t *testing.T) {
	stmt := parseLine(t, "A --> B --> C")
	if len(stmt.Nodes) != 3 || len(stmt.Edges) != 2 {
		t.Fatalf("got %d nodes %d edges, want 3/2", len(stmt.Nodes), len(stmt.Edges))
	}
	if stmt.Edges[0] != (grd.Edge{From: "A", To: "B"}) || stmt.Edges[1] != (grd.Edge{From: "B", To: "C"}) {
		t.Errorf("edges = %+v", stmt.Edges)
	}
}

func TestParseStatement_Errors(t *testing.T) {
	tests := []string{
		"-->",              // no source node
		"A -->",            // no target node
		"A --> --> B",      // missing middle node
		"A ~~> B",          // unknown arrow
		"A[unterminated",   // missing closer
		"A -->|no close B", // unterminated pipe label
		"A -- text --o B",  // arrow never closed
	}

	for _, text := range tests {
		_, err := ParseStatement(Line{Number: 7, Text: text})
		if err == nil {
			t.Errorf("ParseStatement(%q) should fail", text)
			continue
		}
		var syntaxErr *grd.SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("ParseStatement(%q) error = %T, want *grd.SyntaxError", text, err)
			continue
		}
		if syntaxErr.Line != 7 {
			t.Errorf("ParseStatement(%q) line = %d, want 7", text, syntaxErr.Line)
		}
		if syntaxErr.Text != text {
			t.Errorf("ParseStatement(%q) text = %q", text, syntaxErr.Text)
		}
	}
}
