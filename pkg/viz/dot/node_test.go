package dot

import (
	"strings"
	"testing"

	"github.com/azmapper/azmap/pkg/graph"
	"github.com/azmapper/azmap/pkg/model"
)

// fixedResolver maps every type to one icon path.
type fixedResolver struct{ path string }

func (r fixedResolver) IconPath(string) (string, bool) { return r.path, r.path != "" }

func TestFormatNodeTextFallback(t *testing.T) {
	gen := NewGenerator(model.DefaultConfig(), nil)
	n := &graph.Node{
		ID:    "compute_vm1_virtualmachines",
		Name:  "vm1",
		Label: "vm1\n(Compute)",
		Type:  "Microsoft.Compute/virtualMachines",
		Attrs: map[string]any{"location": "westeurope", "resource_group": "rg1"},
	}

	got := gen.formatNode(n)
	for _, want := range []string{
		`"compute_vm1_virtualmachines" [`,
		`label="vm1\n(Compute)"`,
		`style="filled"`,
		`location="westeurope"`,
		`resource_group="rg1"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("node missing %q in %s", want, got)
		}
	}

	// Attr keys are emitted sorted so documents stay byte-stable.
	if strings.Index(got, "location=") > strings.Index(got, "resource_group=") {
		t.Error("attrs not in sorted key order")
	}
}

func TestFormatNodeHTMLLabel(t *testing.T) {
	gen := NewGenerator(model.DefaultConfig(), fixedResolver{path: "/icons/vm.png"})
	n := &graph.Node{
		ID:   "compute_vm1_virtualmachines",
		Name: "vm1",
		Type: "Microsoft.Compute/virtualMachines",
		Attrs: map[string]any{
			"power_state":  "running",
			"prop_vm_size": "Standard_B2s",
		},
	}

	got := gen.formatNode(n)
	for _, want := range []string{
		`<img src="/icons/vm.png"/>`,
		"<B><FONT POINT-SIZE=\"11\">vm1</FONT></B>",
		"Provider:",
		"Type:",
		"virtualMachines",
		"State:",
		"RUNNING",
		`COLOR="green"`,
		"Size:",
		"Standard_B2s",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("node missing %q in %s", want, got)
		}
	}
}

func TestFormatNodeMinimalVerbosityOmitsDetails(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Verbosity = model.VerbosityMinimal

	gen := NewGenerator(cfg, fixedResolver{path: "/icons/vm.png"})
	n := &graph.Node{
		ID:    "compute_vm1_virtualmachines",
		Name:  "vm1",
		Type:  "Microsoft.Compute/virtualMachines",
		Attrs: map[string]any{"prop_vm_size": "Standard_B2s"},
	}

	got := gen.formatNode(n)
	if strings.Contains(got, "Provider:") || strings.Contains(got, "Size:") {
		t.Errorf("minimal verbosity should hide detail rows: %s", got)
	}
}

func TestFormatNodePowerStateGating(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.ShowPowerState = false

	gen := NewGenerator(cfg, fixedResolver{path: "/icons/vm.png"})
	n := &graph.Node{
		ID:    "compute_vm1_virtualmachines",
		Name:  "vm1",
		Type:  "Microsoft.Compute/virtualMachines",
		Attrs: map[string]any{"power_state": "running"},
	}

	if got := gen.formatNode(n); strings.Contains(got, "State:") {
		t.Errorf("power state shown despite being disabled: %s", got)
	}
}

func TestFormatNodePlaceholderStyling(t *testing.T) {
	gen := NewGenerator(model.DefaultConfig(), fixedResolver{path: "/icons/vm.png"})

	placeholder := &graph.Node{
		ID:   "network_ext_publicipaddresses",
		Name: "ext",
		Type: "Microsoft.Network/publicIPAddresses",
		Attrs: map[string]any{
			"prop_is_placeholder": "true",
			"prop_access_note":    "referenced from another subscription",
		},
	}
	got := gen.formatNode(placeholder)
	if !strings.Contains(got, `style="dotted"`) || !strings.Contains(got, `color="orange"`) {
		t.Errorf("placeholder treatment missing: %s", got)
	}
	if !strings.Contains(got, "referenced from another subscription") {
		t.Errorf("access note row missing: %s", got)
	}

	crossTenant := &graph.Node{
		ID:   "network_ext2_publicipaddresses",
		Name: "ext2",
		Type: "Microsoft.Network/publicIPAddresses",
		Attrs: map[string]any{
			"prop_is_placeholder":  "true",
			"prop_is_cross_tenant": "true",
		},
	}
	got = gen.formatNode(crossTenant)
	if !strings.Contains(got, `style="dashed"`) || !strings.Contains(got, `color="red"`) {
		t.Errorf("cross-tenant treatment missing: %s", got)
	}
}

func TestFormatNodeGroupedCount(t *testing.T) {
	gen := NewGenerator(model.DefaultConfig(), fixedResolver{path: "/icons/vm.png"})
	n := &graph.Node{
		ID:      "group_compute",
		Name:    "Compute",
		Type:    "Microsoft.Compute/virtualMachines",
		Grouped: true,
		Attrs:   map[string]any{"resource_count": 3},
	}

	got := gen.formatNode(n)
	if !strings.Contains(got, "Resources:") || !strings.Contains(got, ">3<") {
		t.Errorf("grouped count row missing: %s", got)
	}
}
