// Package compiler folds tokenized flowchart statements into an immutable
// grd.Structure.
package compiler

import (
	"github.com/aretw0/braid/internal/mermaid"
	"github.com/aretw0/braid/pkg/grd"
)

// Compile parses flowchart source into a structure. The source may start
// with a "flowchart TD" / "graph LR" header; header-less input is accepted
// and defaults to top-down.
//
// Declaration policy: the first mention of an id fixes its position in
// declaration order. A bare reference never downgrades an earlier explicit
// declaration; an explicit declaration updates label and shape
// (last-write-wins, since re-mentioning a node with a fuller annotation is
// the common idiom). Edge endpoints that were never explicitly declared are
// created implicitly as bare nodes with label == id.
//
// An empty source yields an empty, valid structure; "must have at least one
// node" is the validator's rule, not the builder's.
func Compile(src string) (*grd.Structure, error) {
	lines := mermaid.Lines(src)

	direction := grd.DirectionTD
	if len(lines) > 0 {
		if d, ok := mermaid.ParseHeader(lines[0].Text); ok {
			direction = d
			lines = lines[1:]
		}
	}

	b := builder{index: make(map[string]int)}
	for _, ln := range lines {
		stmt, err := mermaid.ParseStatement(ln)
		if err != nil {
			return nil, err
		}
		for _, ref := range stmt.Nodes {
			b.declare(ref)
		}
		b.edges = append(b.edges, stmt.Edges...)
	}

	return grd.NewStructure(direction, b.nodes, b.edges)
}

type builder struct {
	nodes []grd.Node
	index map[string]int // id -> position in nodes
	edges []grd.Edge
}

func (b *builder) declare(ref mermaid.NodeRef) {
	i, seen := b.index[ref.ID]
	if !seen {
		node := grd.Node{ID: ref.ID, Label: ref.ID, Shape: ref.Shape}
		if ref.Explicit {
			node.Label = ref.Label
		}
		b.index[ref.ID] = len(b.nodes)
		b.nodes = append(b.nodes, node)
		return
	}
	if ref.Explicit {
		b.nodes[i].Label = ref.Label
		b.nodes[i].Shape = ref.Shape
	}
}
