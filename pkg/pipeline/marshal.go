package pipeline

import (
	"encoding/json"

	"github.com/azmapper/azmap/pkg/graph"
	"github.com/azmapper/azmap/pkg/model"
	"github.com/azmapper/azmap/pkg/viz"
)

// buildPayload is the cache serialization of one build result. Nodes and
// edges are stored flat and the graph is reassembled on load.
type buildPayload struct {
	Nodes     []graph.Node     `json:"nodes"`
	Edges     []graph.Edge     `json:"edges"`
	Clusters  []graph.Cluster  `json:"clusters,omitempty"`
	Resources []model.Resource `json:"resources,omitempty"`
}

// MarshalBuild serializes a build result for caching and hashing.
func MarshalBuild(res *viz.Result) ([]byte, error) {
	payload := buildPayload{
		Edges:     res.Graph.Edges(),
		Clusters:  res.Clusters,
		Resources: res.Resources,
	}
	for _, n := range res.Graph.Nodes() {
		payload.Nodes = append(payload.Nodes, *n)
	}
	return json.Marshal(payload)
}

// UnmarshalBuild reassembles a build result from its serialized form.
func UnmarshalBuild(data []byte) (*viz.Result, error) {
	var payload buildPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}

	g := graph.New()
	for _, n := range payload.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range payload.Edges {
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}

	return &viz.Result{
		Graph:     g,
		Clusters:  payload.Clusters,
		Resources: payload.Resources,
	}, nil
}
