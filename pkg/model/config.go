package model

import (
	"slices"

	"github.com/azmapper/azmap/pkg/errors"
)

// Theme selects the diagram color palette.
type Theme string

// Supported themes.
const (
	ThemeLight        Theme = "light"
	ThemeDark         Theme = "dark"
	ThemeHighContrast Theme = "high-contrast"
)

// Verbosity controls how much detail node labels carry.
type Verbosity int

// Label verbosity levels.
const (
	VerbosityMinimal  Verbosity = 1
	VerbosityStandard Verbosity = 2
	VerbosityDetailed Verbosity = 3
)

// Direction is the overall layout flow of the diagram.
type Direction string

// Layout directions.
const (
	DirectionLeftToRight Direction = "left-to-right"
	DirectionTopToBottom Direction = "top-to-bottom"
)

// Rankdir returns the Graphviz rankdir value for the direction.
func (d Direction) Rankdir() string {
	if d == DirectionTopToBottom {
		return "TB"
	}
	return "LR"
}

// Splines selects the edge routing style of the external renderer.
type Splines string

// Edge routing styles.
const (
	SplinesPolyline Splines = "polyline"
	SplinesCurved   Splines = "curved"
	SplinesOrtho    Splines = "ortho"
	SplinesLine     Splines = "line"
	SplinesSpline   Splines = "spline"
)

// Format is a render output format.
type Format string

// Output formats.
const (
	FormatDOT  Format = "dot"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatHTML Format = "html"
)

// VisualizationConfig is the single configuration object threaded through the
// whole pipeline. It is treated as read-only for the duration of one build.
type VisualizationConfig struct {
	ResourceGroups []string  `json:"resource_groups,omitempty" toml:"resource_groups"`
	Verbosity      Verbosity `json:"verbosity" toml:"verbosity"`
	Depth          int       `json:"depth" toml:"depth"` // 1 groups by category, 2-3 by full type
	Theme          Theme     `json:"theme" toml:"theme"`
	Direction      Direction `json:"direction" toml:"direction"`
	Splines        Splines   `json:"splines" toml:"splines"`
	ExcludeTypes   []string  `json:"exclude_types,omitempty" toml:"exclude_types"`
	ShowLegend     bool      `json:"show_legend" toml:"show_legend"`
	ShowPowerState bool      `json:"show_power_state" toml:"show_power_state"`
	ComputeOnly    bool      `json:"compute_only" toml:"compute_only"`
}

// DefaultConfig returns the configuration used when no flags or config file
// override it.
func DefaultConfig() VisualizationConfig {
	return VisualizationConfig{
		Verbosity:      VerbosityStandard,
		Depth:          2,
		Theme:          ThemeLight,
		Direction:      DirectionLeftToRight,
		Splines:        SplinesPolyline,
		ShowLegend:     true,
		ShowPowerState: true,
	}
}

// Validate checks enum fields and value ranges. A zero field is replaced by
// its default rather than rejected, so partially populated configs (e.g. from
// a TOML file) validate cleanly.
func (c *VisualizationConfig) Validate() error {
	def := DefaultConfig()
	if c.Verbosity == 0 {
		c.Verbosity = def.Verbosity
	}
	if c.Depth == 0 {
		c.Depth = def.Depth
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.Direction == "" {
		c.Direction = def.Direction
	}
	if c.Splines == "" {
		c.Splines = def.Splines
	}

	if c.Verbosity < VerbosityMinimal || c.Verbosity > VerbosityDetailed {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid verbosity %d: must be 1-3", c.Verbosity)
	}
	if c.Depth < 1 || c.Depth > 3 {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid grouping depth %d: must be 1-3", c.Depth)
	}
	if !slices.Contains([]Theme{ThemeLight, ThemeDark, ThemeHighContrast}, c.Theme) {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid theme %q", c.Theme)
	}
	if !slices.Contains([]Direction{DirectionLeftToRight, DirectionTopToBottom}, c.Direction) {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid direction %q", c.Direction)
	}
	if !slices.Contains([]Splines{SplinesPolyline, SplinesCurved, SplinesOrtho, SplinesLine, SplinesSpline}, c.Splines) {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid splines %q", c.Splines)
	}
	return nil
}
