// Package validator checks structural well-formedness of a parsed GRD.
package validator

import (
	"fmt"

	"github.com/aretw0/braid/pkg/grd"
)

// Validate runs the structural checks in order and returns the first
// failure: non-empty, referential integrity, at least one possible start
// node, and acyclicity. A nil return means the structure can be planned.
//
// Validate never mutates the structure; it is a pure predicate and safe to
// call repeatedly.
func Validate(s *grd.Structure) error {
	if s.NodeCount() == 0 {
		return grd.ErrEmptyGraph
	}

	// Referential integrity holds by construction when the builder made
	// the structure; structures assembled by hand still need the check.
	for _, e := range s.Edges() {
		if _, ok := s.Node(e.From); !ok {
			return &grd.IntegrityError{Edge: e, Missing: e.From}
		}
		if _, ok := s.Node(e.To); !ok {
			return &grd.IntegrityError{Edge: e, Missing: e.To}
		}
	}

	// A graph where every node has an incoming edge is entirely cyclic;
	// there is nowhere to begin executing.
	if len(s.StartNodes()) == 0 {
		return fmt.Errorf("%w: every node has an incoming edge", grd.ErrNoStartNode)
	}

	if cycle := FindCycle(s); cycle != nil {
		return &grd.CycleError{Nodes: cycle}
	}

	return nil
}

// Unreachable returns the ids of nodes not reachable from any start node,
// in declaration order. Unreachable nodes are a note for the caller rather
// than a validation failure; callers should surface them to the diagram
// author.
func Unreachable(s *grd.Structure) []string {
	visited := make(map[string]bool, s.NodeCount())
	stack := s.StartNodes()
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		for _, e := range s.Outgoing(id) {
			if !visited[e.To] {
				stack = append(stack, e.To)
			}
		}
	}

	var out []string
	for _, id := range s.NodeIDs() {
		if !visited[id] {
			out = append(out, id)
		}
	}
	return out
}

// FindCycle performs a depth-first traversal tracking the recursion stack
// and returns the members of the first directed cycle found, in traversal
// order. It returns nil for a DAG.
func FindCycle(s *grd.Structure) []string {
	const (
		white = 0 // unvisited
		grey  = 1 // on the recursion stack
		black = 2 // fully explored
	)
	color := make(map[string]int, s.NodeCount())
	var stack []string

	var walk func(id string) []string
	walk = func(id string) []string {
		color[id] = grey
		stack = append(stack, id)
		for _, e := range s.Outgoing(id) {
			switch color[e.To] {
			case white:
				if cycle := walk(e.To); cycle != nil {
					return cycle
				}
			case grey:
				// Back-edge: the cycle is the stack segment from the
				// target down to the current node.
				for i, on := range stack {
					if on == e.To {
						return append([]string(nil), stack[i:]...)
					}
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
		return nil
	}

	for _, id := range s.NodeIDs() {
		if color[id] == white {
			if cycle := walk(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
