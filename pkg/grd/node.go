package grd

// Shape identifies the bracket style a node was declared with.
// Shape is presentation metadata only; it never affects ordering semantics,
// but it is preserved so a structure can be rendered back to source.
type Shape string

const (
	// ShapeRectangle is the default `[...]` box.
	ShapeRectangle Shape = "rectangle"
	// ShapeRounded is the `(...)` stadium box.
	ShapeRounded Shape = "rounded"
	// ShapeCircle is the `((...))` circle.
	ShapeCircle Shape = "circle"
	// ShapeDecision is the `{...}` diamond used for branch points.
	ShapeDecision Shape = "decision"
	// ShapeSubroutine is the `[[...]]` double-walled box.
	ShapeSubroutine Shape = "subroutine"
	// ShapeParallelogram is the `[/.../]` input/output box.
	ShapeParallelogram Shape = "parallelogram"
)

// Node is a single diagram box.
type Node struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Shape Shape  `json:"shape" yaml:"shape"`
}

// Edge is a directed relation between two node ids. Edges form a multiset:
// the same pair of nodes may be connected more than once with different
// labels (branching).
type Edge struct {
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Direction is the layout hint from the diagram header (e.g. "flowchart TD").
// Like Shape it carries no graph semantics.
type Direction string

const (
	DirectionTD Direction = "TD"
	DirectionTB Direction = "TB"
	DirectionLR Direction = "LR"
	DirectionRL Direction = "RL"
	DirectionBT Direction = "BT"
)
