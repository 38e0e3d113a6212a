// Package graph provides the directed graph structure the diagram pipeline
// assembles nodes and edges into.
//
// Node and edge iteration order is insertion order, always. Diagram layouts
// become unstable when declaration order varies between runs, so the graph
// never exposes map iteration to callers.
package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist in the graph.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Graph is a directed graph with deterministic iteration order.
//
// The zero value is not usable - use New. Graph is not safe for concurrent
// use without external synchronization; each diagram build starts from a
// freshly empty graph.
type Graph struct {
	byID     map[string]*Node
	order    []string
	edges    []Edge
	outgoing map[string][]string
	incoming map[string][]string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		byID:     make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode adds a node to the graph. Non-scalar attribute values are dropped
// rather than rejected: the downstream text emitter cannot serialize nested
// containers, and upstream synthesis is expected to have flattened them
// already.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.byID[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Attrs != nil {
		n.Attrs = scalarOnly(n.Attrs)
	}
	node := &n
	g.byID[node.ID] = node
	g.order = append(g.order, node.ID)
	return nil
}

// AddEdge adds a directed edge between two existing nodes. Multiple edges
// between the same ordered pair are allowed; the edge synthesizer's collapse
// pass decides what survives.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.byID[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.byID[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// Node returns the node with the given ID, or nil.
func (g *Graph) Node(id string) *Node {
	return g.byID[id]
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, id := range g.order {
		out[i] = g.byID[id]
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Outgoing returns the target IDs of edges leaving the given node, in
// insertion order.
func (g *Graph) Outgoing(id string) []string {
	return g.outgoing[id]
}

// Incoming returns the source IDs of edges entering the given node, in
// insertion order.
func (g *Graph) Incoming(id string) []string {
	return g.incoming[id]
}

// IsScalar reports whether v can be carried into the emitted document as a
// plain attribute value.
func IsScalar(v any) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

// ScalarString renders a scalar attribute value as text.
func ScalarString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func scalarOnly(attrs map[string]any) map[string]any {
	clean := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if IsScalar(v) {
			clean[k] = v
		}
	}
	return clean
}
