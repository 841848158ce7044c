/*
Package braid parses Guided Reasoning Diagrams (GRDs), Mermaid flowcharts
describing an ordered set of reasoning sub-steps, and derives deterministic
execution plans from them.

A GRD arrives as free text, typically markdown produced by a language model
with the diagram inside a fenced code block. Braid extracts the diagram,
parses the flowchart grammar into an immutable graph, validates that the
graph is a well-formed DAG with a usable start node, and computes a
reproducible topological execution order where each step carries its
declared dependencies.

# Pipeline

Extraction -> tokenization -> grammar -> graph building -> validation ->
planning. Each stage consumes only the previous stage's output; every parse
is a pure function of its input text, so all entry points are safe for
concurrent use without locking.

# Usage

	steps, err := braid.Plan(`
	flowchart TD
	    A[Analyze problem] --> B[Compute]
	    B --> C[Answer]
	`)
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range steps {
		fmt.Printf("%d. %s (after %v)\n", s.Number, s.Label, s.DependsOn)
	}

Callers who only need a yes/no answer can use Validate, which returns a
boolean plus the first problem found. Braid never executes reasoning steps
and never calls a model; it only supplies the plan.
*/
package braid
