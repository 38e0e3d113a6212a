package viz

import (
	"strings"

	"github.com/azmapper/azmap/pkg/graph"
	"github.com/azmapper/azmap/pkg/model"
)

// PartitionClusters groups resources into one layout cluster per resource
// group, in first-occurrence order. Internet gateway pseudo-resources stay
// standalone, and only node ids actually present in the graph are listed, so
// grouped nodes that replaced their members never produce dangling cluster
// entries.
func PartitionClusters(resources []model.Resource, g *graph.Graph) []graph.Cluster {
	order := make([]string, 0)
	members := make(map[string][]string)
	for _, r := range resources {
		if strings.EqualFold(r.Type, model.InternetGatewayType) {
			continue
		}
		id := NodeID(r)
		if !g.HasNode(id) {
			continue
		}
		if _, seen := members[r.ResourceGroup]; !seen {
			order = append(order, r.ResourceGroup)
		}
		members[r.ResourceGroup] = append(members[r.ResourceGroup], id)
	}

	clusters := make([]graph.Cluster, 0, len(order))
	for _, rg := range order {
		clusters = append(clusters, graph.Cluster{
			Name:    "cluster_" + idSanitizer.Replace(strings.ToLower(rg)),
			Label:   "Resource Group: " + rg,
			NodeIDs: members[rg],
		})
	}
	return clusters
}
