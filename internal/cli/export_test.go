package cli

import (
	"io"
	"reflect"
	"testing"

	"github.com/azmapper/azmap/pkg/model"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single", "png", []string{"png"}},
		{"multiple", "svg,dot,html", []string{"svg", "dot", "html"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "snap.json", "snap"},
		{"strip format extension", "diagram.svg", "snap.json", "diagram"},
		{"keep unknown extension", "diagram.out", "snap.json", "diagram.out"},
		{"plain output", "diagram", "snap.json", "diagram"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveConfigFlagOverrides(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.exportCommand()
	if err := cmd.Flags().Set("theme", "dark"); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if err := cmd.Flags().Set("verbosity", "3"); err != nil {
		t.Fatalf("set verbosity: %v", err)
	}

	opts := &exportOpts{theme: "dark", verbosity: 3, noLegend: true}
	cfg := resolveConfig(cmd, model.DefaultConfig(), opts)

	if cfg.Theme != model.ThemeDark {
		t.Errorf("Theme = %q, want dark", cfg.Theme)
	}
	if cfg.Verbosity != model.VerbosityDetailed {
		t.Errorf("Verbosity = %d, want 3", cfg.Verbosity)
	}
	if cfg.ShowLegend {
		t.Error("ShowLegend should be disabled by --no-legend")
	}
	// Unchanged flags keep file/default values.
	if cfg.Direction != model.DirectionLeftToRight {
		t.Errorf("Direction = %q, want default", cfg.Direction)
	}
}
