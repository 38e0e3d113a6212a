package graph

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestAddNodeValidation(t *testing.T) {
	g := New()

	if err := g.AddNode(Node{}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("empty ID: err = %v, want ErrInvalidNodeID", err)
	}
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("duplicate ID: err = %v, want ErrDuplicateNodeID", err)
	}
}

func TestAddNodeDropsNonScalarAttrs(t *testing.T) {
	g := New()
	err := g.AddNode(Node{ID: "a", Attrs: map[string]any{
		"name":   "vm1",
		"count":  3,
		"ratio":  1.5,
		"nested": map[string]any{"x": 1},
		"list":   []string{"a"},
	}})
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	n := g.Node("a")
	if len(n.Attrs) != 3 {
		t.Errorf("Attrs = %v, want 3 scalar entries", n.Attrs)
	}
	if _, ok := n.Attrs["nested"]; ok {
		t.Error("nested attr should be dropped")
	}
}

func TestAddEdgeRequiresNodes(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatal(err)
	}

	if err := g.AddEdge(Edge{From: "x", To: "a"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("unknown source: err = %v", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("unknown target: err = %v", err)
	}
}

func TestInsertionOrderIsStable(t *testing.T) {
	g := New()
	ids := []string{"z", "m", "a", "q", "b"}
	for _, id := range ids {
		if err := g.AddNode(Node{ID: id}); err != nil {
			t.Fatal(err)
		}
	}

	got := make([]string, 0, len(ids))
	for _, n := range g.Nodes() {
		got = append(got, n.ID)
	}
	if !reflect.DeepEqual(got, ids) {
		t.Errorf("Nodes() order = %v, want %v", got, ids)
	}
}

func TestAdjacency(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b", "c"} {
		if err := g.AddNode(Node{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	edges := []Edge{
		{From: "a", To: "b"},
		{From: "a", To: "c"},
		{From: "b", To: "c"},
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			t.Fatal(err)
		}
	}

	if got := g.Outgoing("a"); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("Outgoing(a) = %v", got)
	}
	if got := g.Incoming("c"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Incoming(c) = %v", got)
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 3 {
		t.Errorf("counts = %d/%d", g.NodeCount(), g.EdgeCount())
	}
}

func TestParallelEdgesAllowed(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b"} {
		if err := g.AddNode(Node{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddEdge(Edge{From: "a", To: "b"}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "b", Label: "again"}); err != nil {
		t.Errorf("parallel edge: %v", err)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", g.EdgeCount())
	}
}

func TestIsScalar(t *testing.T) {
	scalars := []any{"s", true, 1, int64(2), uint(3), 1.5, float32(2.5)}
	for _, v := range scalars {
		if !IsScalar(v) {
			t.Errorf("IsScalar(%T) = false", v)
		}
	}
	nonScalars := []any{nil, []string{"a"}, map[string]any{}, struct{}{}}
	for _, v := range nonScalars {
		if IsScalar(v) {
			t.Errorf("IsScalar(%T) = true", v)
		}
	}
}

func TestScalarString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"text", "text"},
		{42, "42"},
		{true, "true"},
		{1.5, "1.5"},
	}
	for _, tt := range tests {
		if got := ScalarString(tt.in); got != tt.want {
			t.Errorf("ScalarString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEdgeStyleIsZero(t *testing.T) {
	if !(EdgeStyle{}).IsZero() {
		t.Error("zero EdgeStyle should report IsZero")
	}
	if (EdgeStyle{Color: "red"}).IsZero() {
		t.Error("styled EdgeStyle should not report IsZero")
	}
}

func ExampleGraph() {
	g := New()
	_ = g.AddNode(Node{ID: "vm", Label: "vm1"})
	_ = g.AddNode(Node{ID: "disk", Label: "disk1"})
	_ = g.AddEdge(Edge{From: "vm", To: "disk", Label: "attached", Kind: EdgeDependency})

	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s (%s)\n", e.From, e.To, e.Label)
	}
	// Output: vm -> disk (attached)
}
