package viz

import (
	"fmt"
	"strings"

	"github.com/azmapper/azmap/pkg/graph"
	"github.com/azmapper/azmap/pkg/model"
)

var idSanitizer = strings.NewReplacer(" ", "_", "-", "_", ".", "_")

// NodeID derives the stable node identifier for a resource:
// lower-case category_name_typeSuffix with whitespace, hyphens, and dots
// replaced by underscores. The type suffix keeps two same-named resources of
// different types collision-free. Pure and total.
func NodeID(r model.Resource) string {
	id := fmt.Sprintf("%s_%s_%s",
		strings.ToLower(r.EffectiveCategory()),
		strings.ToLower(r.Name),
		r.TypeSuffix())
	return idSanitizer.Replace(id)
}

// GroupNodeID derives the identifier of a grouped node collapsing all
// resources of one group key.
func GroupNodeID(key string) string {
	return "group_" + strings.ReplaceAll(idSanitizer.Replace(strings.ToLower(key)), "/", "_")
}

// SynthesizeNodes maps resource groups to canonical graph nodes. At grouping
// depth 1 a group with more than one member collapses into a single grouped
// node; otherwise every resource becomes an individual node.
func SynthesizeNodes(groups []ResourceGroup, cfg model.VisualizationConfig) []graph.Node {
	var nodes []graph.Node
	for _, g := range groups {
		if cfg.Depth == 1 && len(g.Resources) > 1 {
			nodes = append(nodes, groupNode(g, cfg))
			continue
		}
		for _, r := range g.Resources {
			nodes = append(nodes, resourceNode(r, cfg))
		}
	}
	return nodes
}

func groupNode(g ResourceGroup, cfg model.VisualizationConfig) graph.Node {
	first := g.Resources[0]
	return graph.Node{
		ID:       GroupNodeID(g.Key),
		Name:     g.Key,
		Label:    nodeLabel(g.Key, len(g.Resources), first.EffectiveCategory(), g.Key, cfg.Verbosity),
		Category: first.EffectiveCategory(),
		Type:     g.Key,
		Grouped:  true,
		Attrs: map[string]any{
			"resource_count": len(g.Resources),
		},
	}
}

func resourceNode(r model.Resource, cfg model.VisualizationConfig) graph.Node {
	attrs := map[string]any{
		"resource_group": r.ResourceGroup,
		"location":       r.Location,
	}
	if r.HasType("Microsoft.Compute/virtualMachines") {
		if state, ok := r.Properties["power_state"]; ok && graph.IsScalar(state) {
			attrs["power_state"] = state
		}
	}

	// Only scalar properties survive; lists of objects are stringified, every
	// other shape is dropped without error.
	for key, value := range r.Properties {
		switch v := value.(type) {
		case nil:
		default:
			if graph.IsScalar(v) {
				attrs["prop_"+key] = v
			} else if objs, ok := objectList(v); ok {
				attrs["prop_"+key] = fmt.Sprintf("%v", objs)
			}
		}
	}

	return graph.Node{
		ID:       NodeID(r),
		Name:     r.Name,
		Label:    nodeLabel(r.Name, 1, r.EffectiveCategory(), r.Type, cfg.Verbosity),
		Category: r.EffectiveCategory(),
		Type:     r.Type,
		Attrs:    attrs,
	}
}

// objectList reports whether v is a list whose elements are all maps.
func objectList(v any) ([]any, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	for _, item := range items {
		if _, isMap := item.(map[string]any); !isMap {
			return nil, false
		}
	}
	return items, true
}

// typeDescription carries the bespoke label text for resource types that get
// a human description instead of the raw category.
type typeDescription struct {
	standard     string // parenthetical shown at standard verbosity
	detailed     string // extra qualifier line at detailed verbosity
	trailingName bool   // composite names show only the last path segment
	namePrefix   string // prepended to the displayed name (e.g. "v" for versions)
}

var typeDescriptions = map[string]typeDescription{
	"microsoft.compute/sshpublickeys": {
		standard: "SSH Public Key", detailed: "Authentication Credential",
	},
	"microsoft.compute/galleries": {
		standard: "Compute Gallery", detailed: "Image Repository",
	},
	"microsoft.compute/galleries/images": {
		standard: "Gallery Image", detailed: "Image Definition", trailingName: true,
	},
	"microsoft.compute/galleries/images/versions": {
		standard: "Image Version", detailed: "Versioned Image", trailingName: true, namePrefix: "v",
	},
	"microsoft.managedidentity/userassignedidentities": {
		standard: "Managed Identity", detailed: "Authentication Service",
	},
	"microsoft.network/privatednszones": {
		standard: "Private DNS Zone", detailed: "Internal DNS Resolution",
	},
	"microsoft.network/privatednszones/virtualnetworklinks": {
		standard: "VNet Link", detailed: "DNS-VNet Connection", trailingName: true,
	},
}

// nodeLabel builds the display label for one node. count > 1 marks a grouped
// node; its detailed label carries the member count.
func nodeLabel(name string, count int, category, resourceType string, verbosity model.Verbosity) string {
	if desc, ok := typeDescriptions[strings.ToLower(resourceType)]; ok {
		display := name
		if desc.trailingName {
			if i := strings.LastIndex(display, "/"); i >= 0 {
				display = display[i+1:]
			}
		}
		if verbosity == model.VerbosityMinimal {
			return display
		}
		display = desc.namePrefix + display
		if verbosity == model.VerbosityStandard {
			return fmt.Sprintf("%s\n(%s)", display, desc.standard)
		}
		return fmt.Sprintf("%s\n(%s)\n%s", display, desc.standard, desc.detailed)
	}

	switch verbosity {
	case model.VerbosityMinimal:
		return name
	case model.VerbosityStandard:
		return fmt.Sprintf("%s\n(%s)", name, category)
	default:
		if count > 1 {
			return fmt.Sprintf("%s\n(%s)\n%d resources", name, category, count)
		}
		return fmt.Sprintf("%s\n(%s)", name, category)
	}
}
