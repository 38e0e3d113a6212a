// Package pkg provides the core libraries for azmap topology visualization.
//
// # Overview
//
// azmap transforms an Azure subscription snapshot into a topology diagram
// where resources are clustered by resource group and connected by their
// network and dependency relationships. The pkg directory is organized into
// four main areas:
//
//  1. Domain model ([model], [graph], [snapshot]) - resources, graph types,
//     and the snapshot document format
//  2. Graph assembly ([viz]) - filtering, grouping, node and edge synthesis,
//     cluster partitioning
//  3. Emission and rendering ([viz/dot], [render], [icons]) - DOT document
//     generation, Graphviz rendering, icon resolution
//  4. Infrastructure ([pipeline], [cache], [store], [errors],
//     [observability], [buildinfo]) - orchestration, caching, persistence
//
// # Architecture
//
// The typical data flow through azmap:
//
//	Subscription Snapshot (JSON)
//	         ↓
//	    [viz] package (filter → group → nodes → edges → clusters)
//	         ↓
//	    [viz/dot] package (DOT document with layout hints)
//	         ↓
//	    [render] package (SVG/PNG/HTML via Graphviz)
//
// # Quick Start
//
// Run the full pipeline with caching:
//
//	import (
//	    "context"
//	    "github.com/azmapper/azmap/pkg/cache"
//	    "github.com/azmapper/azmap/pkg/pipeline"
//	)
//
//	c, _ := cache.NewFileCache("/tmp/azmap-cache")
//	runner := pipeline.NewRunner(c, nil, nil)
//	defer runner.Close()
//
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    SnapshotPath: "subscription.json",
//	    Formats:      []string{"svg"},
//	})
//	os.WriteFile("subscription.svg", result.Artifacts["svg"], 0o644)
//
// Or drive the stages directly:
//
//	snap, _ := snapshot.Load("subscription.json")
//	build, _ := viz.Build(snap.Resources, snap.Topology, model.DefaultConfig())
//	gen := dot.NewGenerator(model.DefaultConfig(), icons.None{})
//	document := gen.Generate(dot.Input{Graph: build.Graph, Clusters: build.Clusters})
//
// # Main Packages
//
// [model] - Resource and configuration types: the Azure resource record,
// resource ID parsing, and the VisualizationConfig enums.
//
// [graph] - The directed graph with typed edges (association, dependency,
// dns_service), per-edge styling, and resource group clusters.
//
// [snapshot] - The snapshot document: loading, validation, resource group
// selection, and content hashing.
//
// [viz] - Graph assembly: resource filtering with wildcard exclusion,
// depth-based grouping, node synthesis, association and dependency edges,
// bidirectional edge collapsing, and cluster partitioning.
//
// [viz/dot] - DOT emission: themed palettes, HTML table node labels with
// icons, layout priority tiers, storage alignment, and the legend.
//
// [render] - Graphviz rendering to SVG and PNG plus a self-contained
// interactive HTML page.
//
// [pipeline] - The cached build → emit → render pipeline used by both the
// CLI and the HTTP server.
//
// [cache] - Cache interface with file, Redis, and null backends, content
// hashing, and stage-scoped key derivation.
//
// [store] - Build record persistence with in-memory and MongoDB backends.
//
// [errors] - Coded errors shared across packages.
//
// [observability] - Optional hooks for metrics and tracing backends.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/viz/...      # Specific package
//
// [model]: https://pkg.go.dev/github.com/azmapper/azmap/pkg/model
// [graph]: https://pkg.go.dev/github.com/azmapper/azmap/pkg/graph
// [snapshot]: https://pkg.go.dev/github.com/azmapper/azmap/pkg/snapshot
// [viz]: https://pkg.go.dev/github.com/azmapper/azmap/pkg/viz
// [viz/dot]: https://pkg.go.dev/github.com/azmapper/azmap/pkg/viz/dot
// [render]: https://pkg.go.dev/github.com/azmapper/azmap/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/azmapper/azmap/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/azmapper/azmap/pkg/cache
// [store]: https://pkg.go.dev/github.com/azmapper/azmap/pkg/store
// [errors]: https://pkg.go.dev/github.com/azmapper/azmap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/azmapper/azmap/pkg/observability
// [icons]: https://pkg.go.dev/github.com/azmapper/azmap/pkg/icons
// [buildinfo]: https://pkg.go.dev/github.com/azmapper/azmap/pkg/buildinfo
package pkg
