package viz

import "github.com/azmapper/azmap/pkg/model"

// ResourceGroup is one partition of the filtered resource set, keyed by
// category (grouping depth 1) or by full type string (deeper).
type ResourceGroup struct {
	Key       string
	Resources []model.Resource
}

// GroupResources partitions resources by category or full type. The result
// preserves first-occurrence order of each key, because downstream node
// ordering decides the emitted document's declaration order.
func GroupResources(resources []model.Resource, cfg model.VisualizationConfig) []ResourceGroup {
	index := make(map[string]int)
	var groups []ResourceGroup

	for _, r := range resources {
		key := r.Type
		if cfg.Depth == 1 {
			key = r.EffectiveCategory()
		}
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, ResourceGroup{Key: key})
		}
		groups[i].Resources = append(groups[i].Resources, r)
	}
	return groups
}
