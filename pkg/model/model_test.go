package model

import (
	"reflect"
	"testing"
)

func TestEffectiveCategory(t *testing.T) {
	tests := []struct {
		name     string
		resource Resource
		want     string
	}{
		{"explicit category wins", Resource{Category: "Custom", Type: "Microsoft.Compute/virtualMachines"}, "Custom"},
		{"derived from provider", Resource{Type: "Microsoft.Compute/virtualMachines"}, "Compute"},
		{"non-microsoft provider", Resource{Type: "Internet/Gateway"}, "Internet"},
		{"no slash", Resource{Type: "oddball"}, "oddball"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resource.EffectiveCategory(); got != tt.want {
				t.Errorf("EffectiveCategory() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeSuffix(t *testing.T) {
	tests := []struct {
		typ  string
		want string
	}{
		{"Microsoft.Compute/virtualMachines", "virtualmachines"},
		{"Microsoft.Compute/galleries/images/versions", "versions"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		r := Resource{Type: tt.typ}
		if got := r.TypeSuffix(); got != tt.want {
			t.Errorf("TypeSuffix(%q) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestDependencyNames(t *testing.T) {
	r := Resource{Dependencies: []DependencyRef{
		{TargetName: "disk1", Kind: DependencyExplicit},
		{TargetName: "nic1", Kind: DependencyDerived},
	}}
	if got := r.DependencyNames(); !reflect.DeepEqual(got, []string{"disk1", "nic1"}) {
		t.Errorf("DependencyNames() = %v", got)
	}

	var empty Resource
	if got := empty.DependencyNames(); got != nil {
		t.Errorf("DependencyNames() on empty = %v, want nil", got)
	}
}

func TestParseResourceID(t *testing.T) {
	id := "/subscriptions/sub-1/resourceGroups/rg1/providers/Microsoft.Compute/virtualMachines/vm1"
	rid, ok := ParseResourceID(id)
	if !ok {
		t.Fatal("ParseResourceID should succeed")
	}
	if rid.SubscriptionID != "sub-1" || rid.ResourceGroup != "rg1" {
		t.Errorf("scope = %q/%q", rid.SubscriptionID, rid.ResourceGroup)
	}
	if rid.Type != "Microsoft.Compute/virtualMachines" {
		t.Errorf("Type = %q", rid.Type)
	}
	if rid.Name != "vm1" {
		t.Errorf("Name = %q", rid.Name)
	}
}

func TestParseResourceIDChild(t *testing.T) {
	id := "/subscriptions/s/resourceGroups/rg/providers/Microsoft.Network/virtualNetworks/vnet1/subnets/subnet1"
	rid, ok := ParseResourceID(id)
	if !ok {
		t.Fatal("ParseResourceID should succeed for child resources")
	}
	if rid.Type != "Microsoft.Network/virtualNetworks/subnets" {
		t.Errorf("Type = %q", rid.Type)
	}
	if rid.Name != "subnet1" {
		t.Errorf("Name = %q", rid.Name)
	}
}

func TestParseResourceIDInvalid(t *testing.T) {
	tests := []string{
		"",
		"vm1",
		"/subscriptions/s/resourceGroups/rg",
		"/foo/s/resourceGroups/rg/providers/P/t/n",
	}
	for _, id := range tests {
		if _, ok := ParseResourceID(id); ok {
			t.Errorf("ParseResourceID(%q) should fail", id)
		}
	}
}

func TestNameFromResourceID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"/subscriptions/s/resourceGroups/rg/providers/Microsoft.Compute/disks/disk1", "disk1"},
		{"bare-name", "bare-name"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NameFromResourceID(tt.id); got != tt.want {
			t.Errorf("NameFromResourceID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestConfigValidateDefaults(t *testing.T) {
	var cfg VisualizationConfig
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	def := DefaultConfig()
	if cfg.Theme != def.Theme || cfg.Depth != def.Depth || cfg.Verbosity != def.Verbosity {
		t.Errorf("zero config should fill defaults, got %+v", cfg)
	}
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		cfg  VisualizationConfig
	}{
		{"verbosity too high", VisualizationConfig{Verbosity: 4}},
		{"depth too high", VisualizationConfig{Depth: 5}},
		{"bad theme", VisualizationConfig{Theme: "sepia"}},
		{"bad direction", VisualizationConfig{Direction: "diagonal"}},
		{"bad splines", VisualizationConfig{Splines: "wiggly"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Error("Validate should fail")
			}
		})
	}
}

func TestDirectionRankdir(t *testing.T) {
	if got := DirectionLeftToRight.Rankdir(); got != "LR" {
		t.Errorf("Rankdir() = %q, want LR", got)
	}
	if got := DirectionTopToBottom.Rankdir(); got != "TB" {
		t.Errorf("Rankdir() = %q, want TB", got)
	}
}
