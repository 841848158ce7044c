/*
Package metrics scores the quality of a Guided Reasoning Diagram. The
scores are used by optimizer loops to compare candidate diagrams for the
same problem; all of them are pure functions over parsed structures.
*/
package metrics

import (
	"github.com/aretw0/braid"
	"github.com/aretw0/braid/pkg/grd"
	"github.com/aretw0/braid/pkg/planner"
)

// Node-count band considered a reasonable decomposition: fewer than
// minNodes suggests the problem was not broken down, more than maxNodes
// suggests noise.
const (
	minNodes = 3
	maxNodes = 20
)

// Report carries the individual scores plus their weighted combination.
// All values are in [0, 1].
type Report struct {
	Validity     float64 `json:"validity" yaml:"validity"`
	Completeness float64 `json:"completeness" yaml:"completeness"`
	Traceability float64 `json:"traceability" yaml:"traceability"`
	Overall      float64 `json:"overall" yaml:"overall"`
}

// Validity is 1 when the text parses and validates as a GRD, else 0.
func Validity(text string) float64 {
	if ok, _ := braid.Validate(text); ok {
		return 1.0
	}
	return 0.0
}

// Completeness scores how complete a structure is: it should have entry
// points, terminal nodes, a reasonable number of steps, and edges
// connecting them.
func Completeness(s *grd.Structure) float64 {
	score := 0.0
	if len(s.StartNodes()) > 0 {
		score += 0.3
	}
	if len(s.EndNodes()) > 0 {
		score += 0.3
	}
	switch n := s.NodeCount(); {
	case n >= minNodes && n <= maxNodes:
		score += 0.2
	case n > maxNodes:
		score += 0.1
	}
	if s.EdgeCount() > 0 {
		score += 0.2
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// Traceability scores how executable a structure is: the fraction of nodes
// that make it into an execution order, averaged with an acyclicity score.
func Traceability(s *grd.Structure) float64 {
	if s.NodeCount() == 0 {
		return 0.0
	}

	order, err := planner.Order(s)
	if err != nil {
		return 0.0
	}

	reachability := float64(len(order)) / float64(s.NodeCount())
	cycleScore := 0.5
	if len(order) == s.NodeCount() {
		cycleScore = 1.0
	}
	return (reachability + cycleScore) / 2.0
}

// Evaluate produces the full report for a diagram-bearing text. An invalid
// diagram scores zero across the board, matching Validity's short-circuit.
func Evaluate(text string) Report {
	validity := Validity(text)
	if validity == 0.0 {
		return Report{}
	}

	s, err := braid.Parse(text)
	if err != nil {
		return Report{}
	}

	r := Report{
		Validity:     validity,
		Completeness: Completeness(s),
		Traceability: Traceability(s),
	}
	r.Overall = r.Validity*0.4 + r.Completeness*0.3 + r.Traceability*0.3
	return r
}
