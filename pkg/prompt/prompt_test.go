package prompt

import (
	"strings"
	"testing"

	"github.com/aretw0/braid/pkg/grd"
)

func TestPlanning(t *testing.T) {
	out, err := Planning(PlanRequest{Problem: "What is 15% of 240?"})
	if err != nil {
		t.Fatalf("Planning() error = %v", err)
	}
	if !strings.Contains(out, "Problem: What is 15% of 240?") {
		t.Error("prompt missing the problem statement")
	}
	if !strings.Contains(out, "```mermaid") || !strings.Contains(out, "flowchart TD") {
		t.Error("prompt missing the format example")
	}
	if strings.Contains(out, "Examples:") {
		t.Error("prompt has an examples section with no examples supplied")
	}
}

func TestPlanning_Examples(t *testing.T) {
	out, err := Planning(PlanRequest{
		Problem: "Sort a list",
		Examples: []Example{
			{Problem: "Reverse a string", GRD: "flowchart TD\n  A --> B"},
			{Problem: "Sum a list", GRD: "flowchart TD\n  X --> Y"},
		},
	})
	if err != nil {
		t.Fatalf("Planning() error = %v", err)
	}
	if !strings.Contains(out, "Example 1:") || !strings.Contains(out, "Example 2:") {
		t.Error("examples not numbered from 1")
	}
	if !strings.Contains(out, "Problem: Reverse a string") {
		t.Error("example problem missing")
	}
	if strings.Index(out, "Reverse a string") > strings.Index(out, "Sum a list") {
		t.Error("examples out of order")
	}
}

func TestExecution(t *testing.T) {
	out, err := Execution(StepRequest{
		Problem: "Compute the area",
		Source:  "flowchart TD\n  A[Measure] --> B[Multiply]",
		Step: grd.Step{
			ID:        "B",
			Number:    2,
			Label:     "Multiply",
			DependsOn: []string{"A"},
		},
		PreviousResults: "Step 1: width 3, height 4",
	})
	if err != nil {
		t.Fatalf("Execution() error = %v", err)
	}
	if !strings.Contains(out, "Current step (2): Multiply") {
		t.Error("prompt missing the current step line")
	}
	if !strings.Contains(out, "This step depends on: A") {
		t.Error("prompt missing the dependency line")
	}
	if !strings.Contains(out, "width 3, height 4") {
		t.Error("prompt missing previous results")
	}
}

func TestExecution_FirstStep(t *testing.T) {
	out, err := Execution(StepRequest{
		Problem: "Compute the area",
		Source:  "flowchart TD\n  A[Measure]",
		Step:    grd.Step{ID: "A", Number: 1, Label: "Measure"},
	})
	if err != nil {
		t.Fatalf("Execution() error = %v", err)
	}
	if strings.Contains(out, "depends on") {
		t.Error("first step should have no dependency line")
	}
	if strings.Contains(out, "previous steps") {
		t.Error("first step should have no previous-results section")
	}
}

func TestExecution_MultipleDependencies(t *testing.T) {
	out, err := Execution(StepRequest{
		Problem: "Merge",
		Source:  "flowchart TD\n  A --> C\n  B --> C",
		Step:    grd.Step{ID: "C", Number: 3, Label: "Merge", DependsOn: []string{"A", "B"}},
	})
	if err != nil {
		t.Fatalf("Execution() error = %v", err)
	}
	if !strings.Contains(out, "This step depends on: A, B") {
		t.Error("dependencies not joined with a comma")
	}
}
