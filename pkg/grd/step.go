package grd

// Step is one entry of a derived execution plan. Steps are produced by the
// planner from an ordered structure; like the structure itself they are
// never mutated after creation.
type Step struct {
	// ID is the id of the node this step executes.
	ID string `json:"step_id" yaml:"step_id"`
	// Number is the 1-based position in the computed execution order.
	Number int `json:"step_number" yaml:"step_number"`
	// Label is the node label.
	Label string `json:"label" yaml:"label"`
	// DependsOn lists the step ids whose nodes have an edge into this
	// node, in the order those edges were declared.
	DependsOn []string `json:"depends_on" yaml:"depends_on"`
}
