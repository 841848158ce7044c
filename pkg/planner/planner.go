/*
Package planner derives a deterministic, dependency-respecting execution
order from a parsed GRD, together with the step-by-step plan a step
executor consumes.
*/
package planner

import (
	"github.com/aretw0/braid/internal/validator"
	"github.com/aretw0/braid/pkg/grd"
)

// Order computes a topological order over the structure using Kahn's
// algorithm on in-degree counts. When several nodes are ready at the same
// time, the one declared earliest in the source wins; the same diagram
// therefore always yields the same order across runs.
//
// Order is safe to call without validating first: an empty structure
// returns grd.ErrEmptyGraph, and a structure that cannot be fully ordered
// returns a *grd.CycleError naming the cycle members.
func Order(s *grd.Structure) ([]string, error) {
	if s.NodeCount() == 0 {
		return nil, grd.ErrEmptyGraph
	}

	ids := s.NodeIDs()
	indegree := make(map[string]int, len(ids))
	for _, id := range ids {
		indegree[id] = s.InDegree(id)
	}

	order := make([]string, 0, len(ids))
	placed := make(map[string]bool, len(ids))
	for len(order) < len(ids) {
		// Pick the earliest-declared node whose dependencies are all
		// placed. Linear scan keeps the tie-break rule obvious; diagrams
		// are small.
		next := ""
		for _, id := range ids {
			if !placed[id] && indegree[id] == 0 {
				next = id
				break
			}
		}
		if next == "" {
			// Nothing is ready but nodes remain: the remainder contains a
			// cycle. Locate it so the error names the members.
			if cycle := validator.FindCycle(s); cycle != nil {
				return nil, &grd.CycleError{Nodes: cycle}
			}
			// Unreachable given the indegree bookkeeping.
			return nil, &grd.CycleError{Nodes: remaining(ids, placed)}
		}

		placed[next] = true
		order = append(order, next)
		for _, e := range s.Outgoing(next) {
			indegree[e.To]--
		}
	}

	return order, nil
}

// Steps zips an execution order with node metadata, producing one Step per
// node. Step numbers are 1-based; each step's DependsOn lists its immediate
// predecessors in the order their edges were declared, so every dependency
// of step k carries a step number lower than k.
func Steps(s *grd.Structure, order []string) []grd.Step {
	steps := make([]grd.Step, 0, len(order))
	for i, id := range order {
		node, _ := s.Node(id)
		steps = append(steps, grd.Step{
			ID:        id,
			Number:    i + 1,
			Label:     node.Label,
			DependsOn: s.Predecessors(id),
		})
	}
	return steps
}

// Plan is the common composition of Order and Steps.
func Plan(s *grd.Structure) ([]grd.Step, error) {
	order, err := Order(s)
	if err != nil {
		return nil, err
	}
	return Steps(s, order), nil
}

func remaining(ids []string, placed map[string]bool) []string {
	var out []string
	for _, id := range ids {
		if !placed[id] {
			out = append(out, id)
		}
	}
	return out
}
