package viz

import (
	stderrors "errors"

	"github.com/azmapper/azmap/pkg/errors"
	"github.com/azmapper/azmap/pkg/graph"
	"github.com/azmapper/azmap/pkg/model"
)

// Result is the outcome of one graph build.
type Result struct {
	Graph    *graph.Graph
	Clusters []graph.Cluster

	// Resources holds the post-filter resource set the graph was built from,
	// in input order. The layout emitter consults it for cluster internals.
	Resources []model.Resource
}

// Build assembles the diagram graph for a resource set: filter, group,
// synthesize nodes and edges, collapse redundant bidirectional pairs, and
// partition resource group clusters. Edges whose endpoints did not survive
// filtering or grouping are dropped silently. The build is deterministic:
// identical input yields an identical result.
func Build(resources []model.Resource, topology model.NetworkTopology, cfg model.VisualizationConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	filtered := Filter(resources, cfg)
	groups := GroupResources(filtered, cfg)

	g := graph.New()
	for _, n := range SynthesizeNodes(groups, cfg) {
		if err := g.AddNode(n); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "adding node %s", n.ID)
		}
	}

	edges := AssociationEdges(topology, filtered)
	edges = append(edges, DependencyEdges(filtered)...)
	edges = CollapseBidirectional(edges, func(id string) (string, bool) {
		n := g.Node(id)
		if n == nil {
			return "", false
		}
		return n.Type, true
	})

	for _, e := range edges {
		err := g.AddEdge(e)
		if err == nil {
			continue
		}
		if stderrors.Is(err, graph.ErrUnknownSourceNode) || stderrors.Is(err, graph.ErrUnknownTargetNode) {
			continue
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "adding edge %s -> %s", e.From, e.To)
	}

	return &Result{
		Graph:     g,
		Clusters:  PartitionClusters(filtered, g),
		Resources: filtered,
	}, nil
}
