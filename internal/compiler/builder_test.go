package compiler

import (
	"errors"
	"testing"

	"github.com/aretw0/braid/pkg/grd"
)

func compile(t *testing.T, src string) *grd.Structure {
	t.Helper()
	s, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return s
}

func TestCompile_Linear(t *testing.T) {
	s := compile(t, "flowchart TD\n  A[Start] --> B[Calc]\n  B --> C[Answer]")

	if s.NodeCount() != 3 || s.EdgeCount() != 2 {
		t.Fatalf("got %d nodes %d edges, want 3/2", s.NodeCount(), s.EdgeCount())
	}
	if ids := s.NodeIDs(); ids[0] != "A" || ids[1] != "B" || ids[2] != "C" {
		t.Errorf("NodeIDs() = %v, want [A B C]", ids)
	}
	if b, _ := s.Node("B"); b.Label != "Calc" {
		t.Errorf("B label = %q, want Calc", b.Label)
	}
}

func TestCompile_HeaderlessInput(t *testing.T) {
	s := compile(t, "A --> B\nA --> C")
	if s.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", s.NodeCount())
	}
	if s.Direction() != grd.DirectionTD {
		t.Errorf("Direction() = %q, want TD default", s.Direction())
	}
}

func TestCompile_DirectionRecorded(t *testing.T) {
	s := compile(t, "graph LR\n  A --> B")
	if s.Direction() != grd.DirectionLR {
		t.Errorf("Direction() = %q, want LR", s.Direction())
	}
}

func TestCompile_SingleNodeNoEdges(t *testing.T) {
	s := compile(t, "flowchart TD\n  A[Only]")
	if s.NodeCount() != 1 || s.EdgeCount() != 0 {
		t.Fatalf("got %d nodes %d edges, want 1/0", s.NodeCount(), s.EdgeCount())
	}
	if n, _ := s.Node("A"); n.Label != "Only" {
		t.Errorf("label = %q, want Only", n.Label)
	}
}

func TestCompile_Empty(t *testing.T) {
	// An empty diagram is a valid empty structure; rejecting it is the
	// validator's job.
	for _, src := range []string{"", "flowchart TD", "%% nothing but comments"} {
		s := compile(t, src)
		if s.NodeCount() != 0 {
			t.Errorf("Compile(%q) = %d nodes, want 0", src, s.NodeCount())
		}
	}
}

func TestCompile_ImplicitNodes(t *testing.T) {
	s := compile(t, "flowchart TD\n  A --> B")
	b, ok := s.Node("B")
	if !ok {
		t.Fatal("implicit node B missing")
	}
	if b.Label != "B" || b.Shape != grd.ShapeRectangle {
		t.Errorf("implicit node = %+v, want bare defaults", b)
	}
}

func TestCompile_LaterDeclarationUpdatesLabel(t *testing.T) {
	s := compile(t, "flowchart TD\n  A --> B\n  B[Full annotation]\n  B --> C")

	if s.NodeCount() != 3 {
		t.Fatalf("NodeCount() = %d, want 3", s.NodeCount())
	}
	b, _ := s.Node("B")
	if b.Label != "Full annotation" {
		t.Errorf("B label = %q, want updated annotation", b.Label)
	}
	// Declaration order keeps B's first-mention position.
	if ids := s.NodeIDs(); ids[1] != "B" {
		t.Errorf("NodeIDs() = %v, want B second", ids)
	}
}

func TestCompile_BareReferenceKeepsDeclaration(t *testing.T) {
	s := compile(t, "flowchart TD\n  B{Check}\n  A --> B")
	b, _ := s.Node("B")
	if b.Label != "Check" || b.Shape != grd.ShapeDecision {
		t.Errorf("B = %+v, bare re-mention must not downgrade it", b)
	}
}

func TestCompile_ParallelEdgesPreserved(t *testing.T) {
	s := compile(t, "flowchart TD\n  A -->|yes| B\n  A -->|no| B")
	if s.EdgeCount() != 2 {
		t.Fatalf("EdgeCount() = %d, want parallel edges kept", s.EdgeCount())
	}
	edges := s.Outgoing("A")
	if edges[0].Label != "yes" || edges[1].Label != "no" {
		t.Errorf("Outgoing(A) = %+v, want source order", edges)
	}
}

func TestCompile_SyntaxErrorHasLineNumber(t *testing.T) {
	_, err := Compile("flowchart TD\n  A --> B\n  @@@bad@@@")
	var syntaxErr *grd.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("Compile() error = %v, want *grd.SyntaxError", err)
	}
	if syntaxErr.Line != 3 {
		t.Errorf("Line = %d, want 3", syntaxErr.Line)
	}
}
