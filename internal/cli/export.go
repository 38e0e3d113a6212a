package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/azmapper/azmap/pkg/model"
	"github.com/azmapper/azmap/pkg/pipeline"
	"github.com/azmapper/azmap/pkg/snapshot"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	configFile  string   // config file path (TOML)
	output      string   // output file path (or base path for multiple formats)
	formats     []string // output formats: dot, svg, png, html
	groups      []string // resource group selection (empty selects all)
	exclude     []string // resource type exclusion patterns
	theme       string   // color theme: light, dark, high-contrast
	verbosity   int      // label verbosity: 1-3
	depth       int      // grouping depth: 1-3
	direction   string   // layout direction: left-to-right, top-to-bottom
	splines     string   // edge routing: polyline, curved, ortho, line, spline
	iconDir     string   // directory of service icons
	noLegend    bool     // suppress the legend
	noPower     bool     // suppress VM power state labels
	computeOnly bool     // keep only compute-centric resource types
	interactive bool     // pick resource groups interactively
	refresh     bool     // bypass the cache
	noCache     bool     // disable the cache entirely
}

// exportCommand creates the export command for generating diagrams from a
// subscription snapshot.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts
	var formatsStr string

	cmd := &cobra.Command{
		Use:   "export [snapshot]",
		Short: "Export a topology diagram from a subscription snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runExport(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.configFile, "config", "", "config file (default ~/.config/azmap/config.toml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, html (comma-separated)")
	cmd.Flags().StringSliceVarP(&opts.groups, "resource-group", "g", nil, "resource group(s) to include (default all)")
	cmd.Flags().StringSliceVar(&opts.exclude, "exclude", nil, "resource type pattern(s) to exclude (supports * wildcards)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "color theme: light (default), dark, high-contrast")
	cmd.Flags().IntVar(&opts.verbosity, "verbosity", 0, "label verbosity: 1 (minimal) to 3 (detailed)")
	cmd.Flags().IntVar(&opts.depth, "depth", 0, "grouping depth: 1 (by category) to 3 (by full type)")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "layout direction: left-to-right (default), top-to-bottom")
	cmd.Flags().StringVar(&opts.splines, "splines", "", "edge routing: polyline (default), curved, ortho, line, spline")
	cmd.Flags().StringVar(&opts.iconDir, "icons", "", "directory of service icons")
	cmd.Flags().BoolVar(&opts.noLegend, "no-legend", false, "suppress the legend")
	cmd.Flags().BoolVar(&opts.noPower, "no-power-state", false, "suppress VM power state labels")
	cmd.Flags().BoolVar(&opts.computeOnly, "compute-only", false, "keep only compute-centric resource types")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick resource groups interactively")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching entirely")

	return cmd
}

// runExport loads the snapshot, resolves the configuration, and runs the
// pipeline, writing one file per requested format.
func (c *CLI) runExport(cmd *cobra.Command, input string, opts *exportOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	fileCfg, err := loadConfig(opts.configFile)
	if err != nil {
		return err
	}
	cfg := resolveConfig(cmd, fileCfg.Visualization, opts)

	iconDir := opts.iconDir
	if iconDir == "" {
		iconDir = fileCfg.IconDir
	}

	snap, err := snapshot.Load(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded snapshot: %d resources", len(snap.Resources))

	if opts.interactive {
		selected, err := pickGroups(ctx, snap.ResourceGroups())
		if err != nil {
			return err
		}
		if selected == nil {
			printInfo("Cancelled")
			return nil
		}
		cfg.ResourceGroups = selected
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building diagram for %s", snap.SubscriptionName))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Snapshot: snap,
		Config:   cfg,
		Formats:  opts.formats,
		IconDir:  iconDir,
		Refresh:  opts.refresh,
		Logger:   logger,
	})
	if err != nil {
		spinner.StopWithError("Diagram build failed")
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Built diagram for %s", snap.SubscriptionName))
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.BuildHit)

	return writeArtifacts(result, input, opts)
}

// resolveConfig applies flag overrides on top of the config file values.
// Only flags the user actually set override the file.
func resolveConfig(cmd *cobra.Command, cfg model.VisualizationConfig, opts *exportOpts) model.VisualizationConfig {
	flags := cmd.Flags()
	if flags.Changed("resource-group") {
		cfg.ResourceGroups = opts.groups
	}
	if flags.Changed("exclude") {
		cfg.ExcludeTypes = opts.exclude
	}
	if flags.Changed("theme") {
		cfg.Theme = model.Theme(opts.theme)
	}
	if flags.Changed("verbosity") {
		cfg.Verbosity = model.Verbosity(opts.verbosity)
	}
	if flags.Changed("depth") {
		cfg.Depth = opts.depth
	}
	if flags.Changed("direction") {
		cfg.Direction = model.Direction(opts.direction)
	}
	if flags.Changed("splines") {
		cfg.Splines = model.Splines(opts.splines)
	}
	if opts.noLegend {
		cfg.ShowLegend = false
	}
	if opts.noPower {
		cfg.ShowPowerState = false
	}
	if opts.computeOnly {
		cfg.ComputeOnly = true
	}
	return cfg
}

// writeArtifacts writes each rendered format to its own file.
func writeArtifacts(result *pipeline.Result, input string, opts *exportOpts) error {
	base := basePath(opts.output, input)
	single := len(opts.formats) == 1

	for _, format := range opts.formats {
		path := opts.output
		if path == "" || !single {
			path = base + "." + format
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output carries a
// known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// pickGroups runs the interactive resource group picker. It returns nil when
// the user cancels, and an empty slice when every group is selected.
func pickGroups(ctx context.Context, groups []string) ([]string, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("snapshot contains no resource groups")
	}
	return runGroupPicker(ctx, groups)
}
