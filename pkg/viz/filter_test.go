package viz

import (
	"testing"

	"github.com/azmapper/azmap/pkg/model"
)

func resourceNames(resources []model.Resource) []string {
	names := make([]string, len(resources))
	for i, r := range resources {
		names[i] = r.Name
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name         string
		resourceType string
		pattern      string
		want         bool
	}{
		{"exact match", "Microsoft.Compute/virtualMachines", "microsoft.compute/virtualmachines", true},
		{"exact mismatch", "Microsoft.Compute/disks", "microsoft.compute/virtualmachines", false},
		{"no wildcard no substring", "Microsoft.Network/networkInterfaces", "network", false},
		{"trailing wildcard", "Microsoft.Network/networkInterfaces", "microsoft.network/*", true},
		{"trailing wildcard mismatch", "Microsoft.Compute/disks", "microsoft.network/*", false},
		{"leading wildcard", "Microsoft.Compute/disks", "*/disks", true},
		{"prefix and suffix", "Microsoft.Network/privateDnsZones", "microsoft.network/*zones", true},
		{"two wildcards contains", "Microsoft.Network/privateDnsZones", "*dnszones*", true},
		{"two wildcards no match", "Microsoft.Compute/disks", "*dnszones*", false},
		{"only wildcards", "Microsoft.Compute/disks", "**", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesPattern(tt.resourceType, tt.pattern); got != tt.want {
				t.Errorf("MatchesPattern(%q, %q) = %v, want %v", tt.resourceType, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFilterExcludeTypes(t *testing.T) {
	resources := []model.Resource{
		{Name: "vm1", Type: "Microsoft.Compute/virtualMachines", ResourceGroup: "rg1"},
		{Name: "nic1", Type: "Microsoft.Network/networkInterfaces", ResourceGroup: "rg1"},
		{Name: "disk1", Type: "Microsoft.Compute/disks", ResourceGroup: "rg1"},
	}
	cfg := model.DefaultConfig()
	cfg.ExcludeTypes = []string{"microsoft.network/*"}

	got := resourceNames(Filter(resources, cfg))
	want := []string{"vm1", "disk1"}
	if !equalStrings(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

func TestFilterNoConfigIsIdentity(t *testing.T) {
	resources := []model.Resource{
		{Name: "vm1", Type: "Microsoft.Compute/virtualMachines"},
		{Name: "zone1", Type: "Microsoft.Network/dnszones"},
	}
	got := Filter(resources, model.DefaultConfig())
	if !equalStrings(resourceNames(got), resourceNames(resources)) {
		t.Errorf("Filter() reordered or dropped resources: %v", resourceNames(got))
	}
}

func TestFilterComputeOnly(t *testing.T) {
	resources := []model.Resource{
		{Name: "vm1", Type: "Microsoft.Compute/virtualMachines", ResourceGroup: "rg1",
			Dependencies: []model.DependencyRef{{TargetName: "disk1"}}},
		{Name: "disk1", Type: "Microsoft.Compute/disks", ResourceGroup: "rg1"},
		// Same group as the seed: pulled in.
		{Name: "nic1", Type: "Microsoft.Network/networkInterfaces", ResourceGroup: "rg1",
			Dependencies: []model.DependencyRef{{TargetName: "subnet1"}}},
		// Different group, depends on the seed: pulled in.
		{Name: "lb1", Type: "Microsoft.Network/loadBalancers", ResourceGroup: "rg2",
			Dependencies: []model.DependencyRef{{TargetName: "vm1"}}},
		// Container of an included NIC, reached through the NIC chain.
		{Name: "subnet1", Type: "Microsoft.Network/virtualNetworks/subnets", ResourceGroup: "rg2"},
		// Related type but unconnected: excluded.
		{Name: "pip-other", Type: "Microsoft.Network/publicIPAddresses", ResourceGroup: "rg2"},
		// Not a compute-related type at all: excluded.
		{Name: "zone1", Type: "Microsoft.Network/dnszones", ResourceGroup: "rg1"},
		// Synthetic gateway is always kept.
		{Name: "Internet", Type: model.InternetGatewayType},
	}
	cfg := model.DefaultConfig()
	cfg.ComputeOnly = true

	got := resourceNames(Filter(resources, cfg))
	want := []string{"vm1", "disk1", "nic1", "lb1", "subnet1", "Internet"}
	if !equalStrings(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

func TestFilterComputeOnlyIsIdempotent(t *testing.T) {
	resources := []model.Resource{
		{Name: "vm1", Type: "Microsoft.Compute/virtualMachines", ResourceGroup: "rg1"},
		{Name: "nic1", Type: "Microsoft.Network/networkInterfaces", ResourceGroup: "rg1"},
		{Name: "vnet-far", Type: "Microsoft.Network/virtualNetworks", ResourceGroup: "rg2"},
	}
	cfg := model.DefaultConfig()
	cfg.ComputeOnly = true

	once := Filter(resources, cfg)
	twice := Filter(once, cfg)
	if !equalStrings(resourceNames(once), resourceNames(twice)) {
		t.Errorf("second pass changed the result: %v vs %v", resourceNames(once), resourceNames(twice))
	}
}

func TestFilterComputeOnlyNoSeeds(t *testing.T) {
	resources := []model.Resource{
		{Name: "nic1", Type: "Microsoft.Network/networkInterfaces", ResourceGroup: "rg1"},
		{Name: "vnet1", Type: "Microsoft.Network/virtualNetworks", ResourceGroup: "rg1"},
	}
	cfg := model.DefaultConfig()
	cfg.ComputeOnly = true

	if got := Filter(resources, cfg); len(got) != 0 {
		t.Errorf("Filter() = %v, want empty set without compute seeds", resourceNames(got))
	}
}
