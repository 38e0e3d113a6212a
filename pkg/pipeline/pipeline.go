// Package pipeline provides the core diagram pipeline: build the resource
// graph from a snapshot, emit the DOT document, and render output artifacts.
//
// The same Runner serves the CLI and the HTTP server, so caching and stage
// behavior stay consistent across entry points.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    SnapshotPath: "snapshot.json",
//	    Formats:      []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/azmapper/azmap/pkg/cache"
	"github.com/azmapper/azmap/pkg/errors"
	"github.com/azmapper/azmap/pkg/model"
	"github.com/azmapper/azmap/pkg/snapshot"
	"github.com/azmapper/azmap/pkg/viz"
)

// Output format names.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatHTML = "html"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatHTML: true,
}

// Options contains all configuration for one pipeline run. The struct
// supports JSON serialization for API requests.
type Options struct {
	// Snapshot input. Exactly one of SnapshotPath or Snapshot must be set;
	// a preloaded snapshot takes precedence.
	SnapshotPath string             `json:"snapshot_path,omitempty"`
	Snapshot     *snapshot.Snapshot `json:"snapshot,omitempty"`

	// Config controls filtering, grouping, and emission.
	Config model.VisualizationConfig `json:"config"`

	// Formats are the artifacts to render.
	Formats []string `json:"formats,omitempty"`

	// IconDir points at a directory of service icons. Empty disables icons.
	IconDir string `json:"icon_dir,omitempty"`

	// Refresh bypasses the cache for every stage.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// BuildID uniquely identifies this run.
	BuildID string

	// Snapshot is the loaded input document.
	Snapshot *snapshot.Snapshot

	// Build is the assembled graph with its clusters.
	Build *viz.Result

	// GraphHash is the content hash of the built graph.
	GraphHash string

	// DOT is the emitted document.
	DOT string

	// DocumentHash is the content hash of the DOT document.
	DocumentHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	BuildTime  time.Duration
	EmitTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	BuildHit  bool `json:"build_hit"`  // Whether the graph came from cache
	EmitHit   bool `json:"emit_hit"`   // Whether the DOT document came from cache
	RenderHit bool `json:"render_hit"` // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: dot, svg, png, html)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent: calling it multiple times has the same effect as calling once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Snapshot == nil && o.SnapshotPath == "" {
		return fmt.Errorf("snapshot or snapshot_path is required")
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// GraphKeyOpts returns cache key options for the build stage.
func (o *Options) GraphKeyOpts() cache.GraphKeyOpts {
	return cache.GraphKeyOpts{
		Depth:        o.Config.Depth,
		ComputeOnly:  o.Config.ComputeOnly,
		ExcludeTypes: o.Config.ExcludeTypes,
	}
}

// DocumentKeyOpts returns cache key options for the emit stage.
func (o *Options) DocumentKeyOpts() cache.DocumentKeyOpts {
	return cache.DocumentKeyOpts{
		Theme:          string(o.Config.Theme),
		Verbosity:      int(o.Config.Verbosity),
		Direction:      string(o.Config.Direction),
		Splines:        string(o.Config.Splines),
		ShowLegend:     o.Config.ShowLegend,
		ShowPowerState: o.Config.ShowPowerState,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format}
}
