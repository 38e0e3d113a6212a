package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/azmapper/azmap/pkg/cache"
	"github.com/azmapper/azmap/pkg/errors"
	"github.com/azmapper/azmap/pkg/icons"
	"github.com/azmapper/azmap/pkg/observability"
	"github.com/azmapper/azmap/pkg/render"
	"github.com/azmapper/azmap/pkg/snapshot"
	"github.com/azmapper/azmap/pkg/viz"
	"github.com/azmapper/azmap/pkg/viz/dot"
)

// Runner encapsulates pipeline execution with caching. Both the CLI and the
// server use it, so caching logic is not duplicated.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely share one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// A nil keyer falls back to the DefaultKeyer; a nil cache disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → emit → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		BuildID:   uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	snap, err := r.loadSnapshot(opts)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	result.Snapshot = snap

	// Stage 1: Build
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, snap.SubscriptionID, len(snap.Resources))
	build, buildHit, err := r.BuildWithCacheInfo(ctx, snap, opts)
	if err != nil {
		observability.Pipeline().OnBuildComplete(ctx, snap.SubscriptionID, 0, time.Since(buildStart), err)
		return nil, fmt.Errorf("build: %w", err)
	}
	observability.Pipeline().OnBuildComplete(ctx, snap.SubscriptionID, build.Graph.NodeCount(), time.Since(buildStart), nil)
	result.Build = build
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = build.Graph.NodeCount()
	result.Stats.EdgeCount = build.Graph.EdgeCount()
	result.CacheInfo.BuildHit = buildHit

	if data, err := MarshalBuild(build); err == nil {
		result.GraphHash = cache.Hash(data)
	}

	r.Logger.Info("built resource graph",
		"build_id", result.BuildID,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"clusters", len(build.Clusters),
		"duration", result.Stats.BuildTime)

	// Stage 2: Emit
	emitStart := time.Now()
	observability.Pipeline().OnEmitStart(ctx, build.Graph.NodeCount())
	document, emitHit, err := r.EmitWithCacheInfo(ctx, build, snap, result.GraphHash, opts)
	if err != nil {
		observability.Pipeline().OnEmitComplete(ctx, 0, time.Since(emitStart), err)
		return nil, fmt.Errorf("emit: %w", err)
	}
	observability.Pipeline().OnEmitComplete(ctx, len(document), time.Since(emitStart), nil)
	result.DOT = document
	result.DocumentHash = cache.Hash([]byte(document))
	result.Stats.EmitTime = time.Since(emitStart)
	result.CacheInfo.EmitHit = emitHit

	r.Logger.Info("emitted layout document",
		"bytes", len(document),
		"duration", result.Stats.EmitTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, document, result.DocumentHash, opts)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
		return nil, fmt.Errorf("render: %w", err)
	}
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), nil)
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// loadSnapshot resolves the input document and applies the resource group
// selection.
func (r *Runner) loadSnapshot(opts Options) (*snapshot.Snapshot, error) {
	snap := opts.Snapshot
	if snap == nil {
		loaded, err := snapshot.Load(opts.SnapshotPath)
		if err != nil {
			return nil, err
		}
		snap = loaded
	}
	return snap.FilterGroups(opts.Config.ResourceGroups), nil
}

// BuildWithCacheInfo assembles the resource graph with caching and reports
// whether the result came from cache.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, snap *snapshot.Snapshot, opts Options) (*viz.Result, bool, error) {
	snapData, err := snap.Hashable()
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.GraphKey(cache.Hash(snapData), opts.GraphKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if build, err := UnmarshalBuild(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "graph")
				return build, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "graph")
	}

	build, err := viz.Build(snap.Resources, snap.Topology, opts.Config)
	if err != nil {
		return nil, false, err
	}

	if data, err := MarshalBuild(build); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLGraph)
		observability.Cache().OnCacheSet(ctx, "graph", len(data))
	}
	return build, false, nil
}

// EmitWithCacheInfo generates the DOT document with caching.
func (r *Runner) EmitWithCacheInfo(ctx context.Context, build *viz.Result, snap *snapshot.Snapshot, graphHash string, opts Options) (string, bool, error) {
	cacheKey := r.Keyer.DocumentKey(graphHash, opts.DocumentKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "document")
			return string(data), true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "document")
	}

	gen := dot.NewGenerator(opts.Config, r.iconResolver(opts))
	document := gen.Generate(dot.Input{
		Graph:            build.Graph,
		Clusters:         build.Clusters,
		SubscriptionName: snap.SubscriptionName,
		SubscriptionID:   snap.SubscriptionID,
	})

	_ = r.Cache.Set(ctx, cacheKey, []byte(document), cache.TTLDocument)
	observability.Cache().OnCacheSet(ctx, "document", len(document))
	return document, false, nil
}

// RenderWithCacheInfo renders all requested formats with caching. The hit
// flag is true only when every format came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, document, documentHash string, opts Options) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte)
	allCached := !opts.Refresh

	if allCached {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(documentHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
			} else {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := r.renderFormats(ctx, document, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(documentHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return rendered, false, nil
}

func (r *Runner) renderFormats(ctx context.Context, document string, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(document)
		case FormatSVG:
			data, err = render.SVG(ctx, document)
		case FormatPNG:
			data, err = render.PNG(ctx, document)
		case FormatHTML:
			data, err = render.HTML(ctx, document, render.HTMLOptions{
				Background: string(opts.Config.Theme),
			})
		default:
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func (r *Runner) iconResolver(opts Options) icons.Resolver {
	if opts.IconDir == "" {
		return icons.None{}
	}
	return icons.NewDirResolver(opts.IconDir, nil)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
