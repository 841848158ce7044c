package grd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoDiagram is returned by extraction when the input contains neither a
// fenced mermaid block nor bare flowchart source. Absence of a diagram is an
// expected, recoverable condition for callers.
var ErrNoDiagram = errors.New("no mermaid diagram found")

// ErrEmptyGraph is returned when validation or planning is asked to operate
// on a structure with no nodes.
var ErrEmptyGraph = errors.New("graph has no nodes")

// ErrNoStartNode is returned when every node has at least one incoming edge,
// meaning the graph is entirely cyclic and has no possible entry point.
var ErrNoStartNode = errors.New("graph has no start node")

// SyntaxError reports a statement line that matches no grammar rule.
// Line numbers are 1-based and refer to the diagram source, not the
// surrounding document.
type SyntaxError struct {
	Line   int    // 1-based line number
	Text   string // the raw offending line
	Reason string // what the scanner expected
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// IntegrityError reports an edge endpoint that does not exist in the node
// set. The builder creates implicit nodes for undeclared endpoints, so
// through the normal pipeline this only fires on directly constructed
// structures.
type IntegrityError struct {
	Edge    Edge
	Missing string // the endpoint id that was not found
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("edge %s --> %s references undeclared node %q", e.Edge.From, e.Edge.To, e.Missing)
}

// CycleError reports a directed cycle. A GRD must be a DAG: a reasoning step
// cannot depend on its own unfinished output.
type CycleError struct {
	Nodes []string // members of the cycle, in traversal order
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("graph contains a cycle: %s", strings.Join(e.Nodes, " -> "))
}
