package grd

// Structure is a parsed Guided Reasoning Diagram. It is built once and is
// immutable thereafter: accessors return copies, so a Structure may be
// shared freely between goroutines without locking.
type Structure struct {
	direction Direction
	order     []string        // node ids in declaration order
	nodes     map[string]Node // id -> node
	edges     []Edge          // source order

	adjacency map[string][]Edge // from -> outgoing edges, source order
	reverse   map[string][]Edge // to -> incoming edges, source order
}

// NewStructure assembles a Structure from nodes (in declaration order) and
// edges (in source order). Every edge endpoint must reference a declared
// node; a missing endpoint returns an IntegrityError rather than silently
// dropping the edge. An empty node list is a valid, empty structure.
func NewStructure(direction Direction, nodes []Node, edges []Edge) (*Structure, error) {
	if direction == "" {
		direction = DirectionTD
	}

	s := &Structure{
		direction: direction,
		order:     make([]string, 0, len(nodes)),
		nodes:     make(map[string]Node, len(nodes)),
		edges:     make([]Edge, 0, len(edges)),
		adjacency: make(map[string][]Edge),
		reverse:   make(map[string][]Edge),
	}

	for _, n := range nodes {
		if _, seen := s.nodes[n.ID]; !seen {
			s.order = append(s.order, n.ID)
		}
		s.nodes[n.ID] = n
	}

	for _, e := range edges {
		if _, ok := s.nodes[e.From]; !ok {
			return nil, &IntegrityError{Edge: e, Missing: e.From}
		}
		if _, ok := s.nodes[e.To]; !ok {
			return nil, &IntegrityError{Edge: e, Missing: e.To}
		}
		s.edges = append(s.edges, e)
		s.adjacency[e.From] = append(s.adjacency[e.From], e)
		s.reverse[e.To] = append(s.reverse[e.To], e)
	}

	return s, nil
}

// Direction returns the layout hint from the diagram header.
func (s *Structure) Direction() Direction { return s.direction }

// NodeCount returns the number of distinct nodes.
func (s *Structure) NodeCount() int { return len(s.order) }

// EdgeCount returns the number of edges, counting parallel edges separately.
func (s *Structure) EdgeCount() int { return len(s.edges) }

// Node looks up a node by id.
func (s *Structure) Node(id string) (Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Nodes returns all nodes in declaration order.
func (s *Structure) Nodes() []Node {
	out := make([]Node, len(s.order))
	for i, id := range s.order {
		out[i] = s.nodes[id]
	}
	return out
}

// NodeIDs returns all node ids in declaration order.
func (s *Structure) NodeIDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Edges returns all edges in source order.
func (s *Structure) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)
	return out
}

// Outgoing returns the edges leaving id, in source order.
func (s *Structure) Outgoing(id string) []Edge {
	out := make([]Edge, len(s.adjacency[id]))
	copy(out, s.adjacency[id])
	return out
}

// Predecessors returns the ids of nodes with an edge into id, in the order
// those edges were declared. Parallel edges contribute one entry each.
func (s *Structure) Predecessors(id string) []string {
	in := s.reverse[id]
	out := make([]string, len(in))
	for i, e := range in {
		out[i] = e.From
	}
	return out
}

// InDegree returns the number of edges into id.
func (s *Structure) InDegree(id string) int { return len(s.reverse[id]) }

// StartNodes returns the ids of nodes with no incoming edges, in
// declaration order. These are the possible entry points of the diagram.
func (s *Structure) StartNodes() []string {
	var out []string
	for _, id := range s.order {
		if len(s.reverse[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// EndNodes returns the ids of nodes with no outgoing edges, in declaration
// order.
func (s *Structure) EndNodes() []string {
	var out []string
	for _, id := range s.order {
		if len(s.adjacency[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}
