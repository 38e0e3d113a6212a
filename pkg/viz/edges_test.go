package viz

import (
	"strings"
	"testing"

	"github.com/azmapper/azmap/pkg/graph"
	"github.com/azmapper/azmap/pkg/model"
)

func TestAssociationEdges(t *testing.T) {
	resources := []model.Resource{
		{Name: "nic1", Type: "Microsoft.Network/networkInterfaces", ResourceGroup: "rg1", SubscriptionID: "sub-1"},
		{Name: "vm1", Type: "Microsoft.Compute/virtualMachines", ResourceGroup: "rg1", SubscriptionID: "sub-1"},
	}
	topology := model.NetworkTopology{Associations: []model.Association{
		{
			SourceID:        "/subscriptions/sub-1/resourceGroups/rg1/providers/Microsoft.Network/networkInterfaces/nic1",
			TargetID:        "/subscriptions/sub-1/resourceGroups/rg1/providers/Microsoft.Compute/virtualMachines/vm1",
			AssociationType: "attached to",
		},
		// Dangling target: dropped.
		{
			SourceID: "/subscriptions/sub-1/resourceGroups/rg1/providers/Microsoft.Network/networkInterfaces/nic1",
			TargetID: "/subscriptions/sub-1/resourceGroups/rg1/providers/Microsoft.Network/publicIPAddresses/pip1",
		},
	}}

	edges := AssociationEdges(topology, resources)
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	e := edges[0]
	if e.From != "network_nic1_networkinterfaces" || e.To != "compute_vm1_virtualmachines" {
		t.Errorf("edge endpoints %s -> %s", e.From, e.To)
	}
	if e.Label != "attached to" || e.Kind != graph.EdgeAssociation {
		t.Errorf("edge label %q kind %v", e.Label, e.Kind)
	}
	if e.Style.Color != "blue" || e.Style.Line != graph.LineSolid {
		t.Errorf("association style = %+v", e.Style)
	}
}

func TestDependencyEdges(t *testing.T) {
	resources := []model.Resource{
		{Name: "vm1", Type: "Microsoft.Compute/virtualMachines", ResourceGroup: "rg1",
			Dependencies: []model.DependencyRef{
				{TargetName: "disk1", Kind: model.DependencyExplicit},
				{TargetName: "missing", Kind: model.DependencyExplicit},
				{TargetName: "pip1", Kind: model.DependencyExplicit},
			}},
		{Name: "disk1", Type: "Microsoft.Compute/disks", ResourceGroup: "rg1"},
		{Name: "pip1", Type: "Microsoft.Network/publicIPAddresses", ResourceGroup: "rg1"},
	}

	edges := DependencyEdges(resources)
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(edges))
	}

	attached := edges[0]
	if attached.Label != "attached" {
		t.Errorf("VM to disk label = %q, want attached", attached.Label)
	}
	want := graph.EdgeStyle{Line: graph.LineSolid, Color: "darkgreen", PenWidth: 2, Weight: 10, MinLen: 1}
	if attached.Style != want {
		t.Errorf("VM to disk style = %+v, want %+v", attached.Style, want)
	}
	if attached.Kind != graph.EdgeDependency {
		t.Errorf("kind = %v, want dependency", attached.Kind)
	}

	fallback := edges[1]
	if fallback.Label != "depends on" {
		t.Errorf("unlisted pair label = %q, want depends on", fallback.Label)
	}
	if fallback.Style.Line != graph.LineDashed || fallback.Style.Color != "red" {
		t.Errorf("unlisted pair style = %+v", fallback.Style)
	}
}

func TestDependencyStyleDerived(t *testing.T) {
	source := model.Resource{Name: "vm1", Type: "Microsoft.Compute/virtualMachines"}

	label, style := dependencyStyle(source,
		model.Resource{Name: "pip1", Type: "Microsoft.Network/publicIPAddresses"},
		model.DependencyDerived, "ip reference")
	if label != "derived (ip reference)" {
		t.Errorf("derived label = %q", label)
	}
	if style.Line != graph.LineDotted || style.Color != "orange" || style.PenWidth != 1 {
		t.Errorf("derived style = %+v", style)
	}

	// The VM to storage account pair has a listed style yet still branches on
	// the derived kind.
	label, style = dependencyStyle(source,
		model.Resource{Name: "sa1", Type: "Microsoft.Storage/storageAccounts"},
		model.DependencyDerived, "boot diagnostics")
	if label != "derived storage (boot diagnostics)" {
		t.Errorf("derived storage label = %q", label)
	}
	if style.Line != graph.LineDotted || style.Color != "orange" {
		t.Errorf("derived storage style = %+v", style)
	}

	label, _ = dependencyStyle(source,
		model.Resource{Name: "sa1", Type: "Microsoft.Storage/storageAccounts"},
		model.DependencyExplicit, "")
	if label != "stores data" {
		t.Errorf("explicit storage label = %q", label)
	}
}

func TestDependencyStyleIdentity(t *testing.T) {
	consumers := []string{
		"Microsoft.Compute/virtualMachines",
		"Microsoft.ContainerService/managedClusters",
		"Microsoft.Web/sites",
	}
	identity := model.Resource{Name: "id1", Type: "Microsoft.ManagedIdentity/userAssignedIdentities"}
	for _, ct := range consumers {
		label, style := dependencyStyle(model.Resource{Name: "c", Type: ct}, identity, model.DependencyExplicit, "")
		if label != "uses identity" || style.Color != "teal" {
			t.Errorf("%s: label %q color %q", ct, label, style.Color)
		}
	}
}

func TestDNSServiceEdges(t *testing.T) {
	resources := []model.Resource{
		{Name: "myapp.example.com", Type: "Microsoft.Network/dnszones", ResourceGroup: "rg1"},
		// Shares the zone base name: derived match.
		{Name: "myapp-vm", Type: "Microsoft.Compute/virtualMachines", ResourceGroup: "rg1"},
		// No name overlap: no edge.
		{Name: "other", Type: "Microsoft.Network/loadBalancers", ResourceGroup: "rg1"},
		// Domain recorded in cluster properties: explicit match.
		{Name: "aro1", Type: "Microsoft.RedHatOpenShift/OpenShiftClusters", ResourceGroup: "rg1",
			Properties: map[string]any{"openshift_dns_domains": []any{"apps.example.com"}}},
	}

	edges := dnsServiceEdges(resources)
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(edges))
	}
	for _, e := range edges {
		if e.Kind != graph.EdgeDNSService {
			t.Errorf("edge %s -> %s kind = %v", e.From, e.To, e.Kind)
		}
	}

	derived := edges[0]
	if derived.To != "compute_myapp_vm_virtualmachines" {
		t.Errorf("first edge target = %s", derived.To)
	}
	if !strings.Contains(derived.Label, "derived") || derived.Style.Color != "orange" || derived.Style.Line != graph.LineDotted {
		t.Errorf("derived DNS edge = %q %+v", derived.Label, derived.Style)
	}

	explicit := edges[1]
	if explicit.To != "redhatopenshift_aro1_openshiftclusters" {
		t.Errorf("second edge target = %s", explicit.To)
	}
	if explicit.Label != "provides DNS for" || explicit.Style.Color != "darkgreen" || explicit.Style.Line != graph.LineDashed {
		t.Errorf("explicit DNS edge = %q %+v", explicit.Label, explicit.Style)
	}
}

func TestDNSNameMatch(t *testing.T) {
	tests := []struct {
		name         string
		zoneName     string
		resourceName string
		want         bool
	}{
		{"base name contained", "myapp.example.com", "myapp-vm", true},
		{"fragment of four chars", "prod.example.com", "lb-example-front", true},
		{"short fragments ignored", "ab.io", "ab-vm", true}, // matched via base name, not fragment
		{"no overlap", "zone.example.com", "unrelated", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := strings.ToLower(strings.SplitN(tt.zoneName, ".", 2)[0])
			if got := dnsNameMatch(tt.zoneName, base, tt.resourceName); got != tt.want {
				t.Errorf("dnsNameMatch(%q, %q, %q) = %v, want %v", tt.zoneName, base, tt.resourceName, got, tt.want)
			}
		})
	}
}

func TestCollapseBidirectional(t *testing.T) {
	types := map[string]string{
		"nic": "Microsoft.Network/networkInterfaces",
		"vm":  "Microsoft.Compute/virtualMachines",
		"pip": "Microsoft.Network/publicIPAddresses",
		"lb":  "Microsoft.Network/loadBalancers",
	}
	nodeType := func(id string) (string, bool) {
		t, ok := types[id]
		return t, ok
	}

	edges := []graph.Edge{
		{From: "nic", To: "vm", Label: "attached"},
		{From: "vm", To: "nic", Label: "uses"},
		{From: "pip", To: "nic", Label: "assigned"},
		{From: "nic", To: "pip", Label: "exposes"},
		// Bidirectional but no preferred direction: both survive.
		{From: "lb", To: "vm", Label: "balances"},
		{From: "vm", To: "lb", Label: "behind"},
	}

	got := CollapseBidirectional(edges, nodeType)
	if len(got) != 4 {
		t.Fatalf("got %d edges, want 4", len(got))
	}
	wantLabels := []string{"attached", "exposes", "balances", "behind"}
	for i, e := range got {
		if e.Label != wantLabels[i] {
			t.Errorf("edge %d label = %q, want %q", i, e.Label, wantLabels[i])
		}
	}
}

func TestCollapseBidirectionalLeavesParallelTriples(t *testing.T) {
	nodeType := func(id string) (string, bool) {
		if id == "nic" {
			return "Microsoft.Network/networkInterfaces", true
		}
		return "Microsoft.Compute/virtualMachines", true
	}
	edges := []graph.Edge{
		{From: "nic", To: "vm", Label: "a"},
		{From: "vm", To: "nic", Label: "b"},
		{From: "nic", To: "vm", Label: "c"},
	}
	if got := CollapseBidirectional(edges, nodeType); len(got) != 3 {
		t.Errorf("triple between one pair should be untouched, got %d edges", len(got))
	}
}
