package mermaid

import (
	"testing"

	"github.com/aretw0/braid/pkg/grd"
)

func TestLines_StripsCommentsAndBlanks(t *testing.T) {
	src := "flowchart TD\n\n%% full line comment\n  A --> B  \n\t\n%%another\nB --> C"

	lines := Lines(src)
	if len(lines) != 3 {
		t.Fatalf("Lines() = %d lines, want 3", len(lines))
	}

	want := []Line{
		{Number: 1, Text: "flowchart TD"},
		{Number: 4, Text: "A --> B"},
		{Number: 7, Text: "B --> C"},
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("lines[%d] = %+v, want %+v", i, lines[i], w)
		}
	}
}

func TestLines_Empty(t *testing.T) {
	if got := Lines(""); len(got) != 0 {
		t.Errorf("Lines(\"\") = %v, want none", got)
	}
	if got := Lines("%% only a comment\n\n"); len(got) != 0 {
		t.Errorf("Lines(comment only) = %v, want none", got)
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		text   string
		dir    grd.Direction
		header bool
	}{
		{"flowchart TD", grd.DirectionTD, true},
		{"flowchart LR", grd.DirectionLR, true},
		{"graph BT", grd.DirectionBT, true},
		{"graph RL", grd.DirectionRL, true},
		{"graph TB", grd.DirectionTB, true},
		{"flowchart", grd.DirectionTD, true},
		{"graph", grd.DirectionTD, true},
		{"flowchart sideways", "", false},
		{"A --> B", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		dir, ok := ParseHeader(tt.text)
		if ok != tt.header || dir != tt.dir {
			t.Errorf("ParseHeader(%q) = (%q, %v), want (%q, %v)", tt.text, dir, ok, tt.dir, tt.header)
		}
	}
}
