package graph

// EdgeKind classifies the relationship an edge represents.
type EdgeKind string

// Edge kinds.
const (
	// EdgeAssociation comes from the topology introspection facility.
	EdgeAssociation EdgeKind = "association"
	// EdgeDependency comes from a resource's dependency list.
	EdgeDependency EdgeKind = "dependency"
	// EdgeDNSService links a DNS zone to infrastructure it serves.
	EdgeDNSService EdgeKind = "dns_service"
)

// LineStyle is the stroke pattern rendered for an edge.
type LineStyle string

// Stroke patterns.
const (
	LineSolid  LineStyle = "solid"
	LineDashed LineStyle = "dashed"
	LineDotted LineStyle = "dotted"
)

// EdgeStyle is the style descriptor attached to an edge. The zero value
// renders with the emitter's per-kind defaults.
type EdgeStyle struct {
	Line     LineStyle `json:"line,omitempty" bson:"line,omitempty"`
	Color    string    `json:"color,omitempty" bson:"color,omitempty"`
	PenWidth int       `json:"pen_width,omitempty" bson:"pen_width,omitempty"`
	Weight   int       `json:"weight,omitempty" bson:"weight,omitempty"`
	MinLen   int       `json:"min_len,omitempty" bson:"min_len,omitempty"`
}

// IsZero reports whether the style carries no explicit attributes.
func (s EdgeStyle) IsZero() bool {
	return s == EdgeStyle{}
}

// Node is a canonical graph node synthesized from one resource or one
// resource group.
type Node struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Label    string `json:"label" bson:"label"`
	Category string `json:"category,omitempty" bson:"category,omitempty"`
	Type     string `json:"type,omitempty" bson:"type,omitempty"`

	// Grouped marks a node that collapses several resources into one visual
	// node (grouping depth 1). A node is individual or grouped, never both.
	Grouped bool `json:"grouped,omitempty" bson:"grouped,omitempty"`

	// Attrs holds scalar values only; AddNode drops anything else.
	Attrs map[string]any `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

// Attr returns the string form of a scalar attribute, or "" when absent.
func (n *Node) Attr(key string) string {
	if n.Attrs == nil {
		return ""
	}
	if v, ok := n.Attrs[key]; ok {
		return ScalarString(v)
	}
	return ""
}

// Edge is a directed, typed, styled connection between two nodes.
type Edge struct {
	From  string    `json:"from" bson:"from"`
	To    string    `json:"to" bson:"to"`
	Label string    `json:"label,omitempty" bson:"label,omitempty"`
	Kind  EdgeKind  `json:"kind" bson:"kind"`
	Style EdgeStyle `json:"style,omitempty" bson:"style,omitempty"`
}

// Cluster is a visual container grouping the nodes of one owning group.
type Cluster struct {
	Name    string   `json:"name" bson:"name"`
	Label   string   `json:"label" bson:"label"`
	NodeIDs []string `json:"node_ids" bson:"node_ids"`
}
