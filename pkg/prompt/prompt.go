/*
Package prompt renders the prompts a diagram producer and a step executor
need: one asking a model to draw a GRD for a problem, one asking it to
execute a single step of an existing GRD. Braid itself never sends these
anywhere; callers own the model interaction.
*/
package prompt

import (
	"strings"
	"text/template"

	"github.com/aretw0/braid/pkg/grd"
)

// Example is a few-shot problem/diagram pair appended to planning prompts.
type Example struct {
	Problem string `json:"problem" yaml:"problem"`
	GRD     string `json:"grd" yaml:"grd"`
}

// PlanRequest parameterizes a planning prompt.
type PlanRequest struct {
	Problem  string
	Examples []Example
}

// StepRequest parameterizes a step-execution prompt.
type StepRequest struct {
	Problem         string   // the original problem
	Source          string   // the GRD flowchart source being followed
	Step            grd.Step // the step to execute now
	PreviousResults string   // results from already-executed steps
}

var funcs = template.FuncMap{
	"inc":  func(i int) int { return i + 1 },
	"join": strings.Join,
}

var planTemplate = template.Must(template.New("plan").Funcs(funcs).Parse(`You are tasked with solving a problem using structured reasoning.

First, create a Guided Reasoning Diagram (GRD) in Mermaid flowchart format that maps out the solution steps.
Then, execute the plan step by step.

Problem: {{.Problem}}

Generate a Mermaid flowchart that shows:
1. Problem analysis
2. Solution steps
3. Decision points (if any)
4. Final answer derivation

Use this format:
` + "```mermaid" + `
flowchart TD
    Start[Problem Analysis] --> Step1[Step 1 Description]
    Step1 --> Step2[Step 2 Description]
    Step2 --> Answer[Final Answer]
` + "```" + `
{{- if .Examples}}

Examples:
{{- range $i, $e := .Examples}}

Example {{inc $i}}:
Problem: {{$e.Problem}}
GRD:
{{$e.GRD}}
{{- end}}
{{- end}}
`))

var stepTemplate = template.Must(template.New("step").Funcs(funcs).Parse(`You are executing one step of a Guided Reasoning Diagram.

Problem: {{.Problem}}

GRD:
{{.Source}}

Current step ({{.Step.Number}}): {{.Step.Label}}
{{- if .Step.DependsOn}}
This step depends on: {{join .Step.DependsOn ", "}}
{{- end}}
{{- if .PreviousResults}}

Results from previous steps:
{{.PreviousResults}}
{{- end}}

Produce the result of executing the current step. The result should be a
clear, concise output that can be used in subsequent steps.
`))

// Planning renders the prompt asking a model to produce a GRD for problem,
// optionally with few-shot examples.
func Planning(req PlanRequest) (string, error) {
	var sb strings.Builder
	if err := planTemplate.Execute(&sb, req); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Execution renders the prompt asking a model to execute a single step.
func Execution(req StepRequest) (string, error) {
	var sb strings.Builder
	if err := stepTemplate.Execute(&sb, req); err != nil {
		return "", err
	}
	return sb.String(), nil
}
