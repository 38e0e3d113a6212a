package viz

import (
	"strings"

	"github.com/azmapper/azmap/pkg/model"
)

// computeTypes seeds the compute-only closure. Hand-maintained enumeration
// tied to the provider's type taxonomy; ported, not derived.
var computeTypes = map[string]bool{
	"microsoft.compute/virtualmachines":          true,
	"microsoft.compute/virtualmachinescalesets":  true,
	"microsoft.compute/disks":                    true,
	"microsoft.compute/snapshots":                true,
	"microsoft.compute/sshpublickeys":            true,
	"microsoft.compute/galleries":                true,
	"microsoft.compute/galleries/images":         true,
	"microsoft.compute/galleries/images/versions": true,
	"microsoft.containerservice/managedclusters":  true,
	"microsoft.redhatopenshift/openshiftclusters": true,
}

// computeRelatedTypes are the networking/storage/identity types pulled into a
// compute-only diagram when they relate to a compute seed.
var computeRelatedTypes = map[string]bool{
	"microsoft.network/networkinterfaces":           true,
	"microsoft.network/publicipaddresses":           true,
	"microsoft.network/virtualnetworks":             true,
	"microsoft.network/virtualnetworks/subnets":     true,
	"microsoft.network/networksecuritygroups":       true,
	"microsoft.network/loadbalancers":               true,
	"microsoft.storage/storageaccounts":             true,
	"microsoft.managedidentity/userassignedidentities": true,
	"internet/gateway": true,
}

// Filter applies compute-only subsetting (when enabled) and then the
// exclusion patterns. Exclusion always runs last. Input order is preserved.
func Filter(resources []model.Resource, cfg model.VisualizationConfig) []model.Resource {
	filtered := resources
	if cfg.ComputeOnly {
		filtered = filterComputeOnly(filtered)
	}
	if len(cfg.ExcludeTypes) == 0 {
		return filtered
	}

	out := make([]model.Resource, 0, len(filtered))
	for _, r := range filtered {
		excluded := false
		for _, pattern := range cfg.ExcludeTypes {
			if MatchesPattern(r.Type, pattern) {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, r)
		}
	}
	return out
}

// MatchesPattern reports whether a resource type matches an exclusion
// pattern. A pattern without a wildcard requires exact case-insensitive
// equality; one wildcard splits the pattern into a required prefix and
// suffix; patterns with more wildcards fall back to substring containment of
// the first non-wildcard segment.
func MatchesPattern(resourceType, pattern string) bool {
	t := strings.ToLower(resourceType)
	p := strings.ToLower(pattern)

	parts := strings.Split(p, "*")
	switch len(parts) {
	case 1:
		return t == p
	case 2:
		return strings.HasPrefix(t, parts[0]) && strings.HasSuffix(t, parts[1])
	default:
		for _, part := range parts {
			if part != "" {
				return strings.Contains(t, part)
			}
		}
		return true
	}
}

// filterComputeOnly reduces the set to compute resources plus everything
// directly related to them. The expansion is a closure over the input set:
// every membership test runs against the original list, so applying the
// filter to its own output cannot grow the result further.
func filterComputeOnly(resources []model.Resource) []model.Resource {
	include := make(map[string]bool) // resource name -> included
	seedGroups := make(map[string]bool)
	seedNames := make(map[string]bool)

	for _, r := range resources {
		if computeTypes[strings.ToLower(r.Type)] {
			include[r.Name] = true
			seedNames[r.Name] = true
			seedGroups[r.ResourceGroup] = true
		}
	}
	if len(seedNames) == 0 {
		return nil
	}

	// Dependency targets of seeds, resolved before the group scan so the
	// subnet chaining step below sees every included NIC.
	seedDeps := make(map[string]bool)
	for _, r := range resources {
		if !seedNames[r.Name] {
			continue
		}
		for _, dep := range r.Dependencies {
			seedDeps[dep.TargetName] = true
		}
	}

	for _, r := range resources {
		lt := strings.ToLower(r.Type)
		if !computeRelatedTypes[lt] || include[r.Name] {
			continue
		}
		switch {
		// Related resources sharing an owning group with a seed; the virtual
		// Internet gateway lives in its own synthetic group and is always
		// pulled in.
		case seedGroups[r.ResourceGroup] || lt == "internet/gateway":
			include[r.Name] = true
		// Related resources a seed depends on.
		case seedDeps[r.Name]:
			include[r.Name] = true
		// Related resources that depend on a seed.
		default:
			for _, dep := range r.Dependencies {
				if seedNames[dep.TargetName] {
					include[r.Name] = true
					break
				}
			}
		}
	}

	// Subnets and virtual networks containing an included NIC, via the NIC's
	// dependency chain.
	containerTypes := map[string]bool{
		"microsoft.network/virtualnetworks/subnets": true,
		"microsoft.network/virtualnetworks":         true,
	}
	byName := make(map[string]model.Resource, len(resources))
	for _, r := range resources {
		if _, dup := byName[r.Name]; !dup {
			byName[r.Name] = r
		}
	}
	for _, r := range resources {
		if !include[r.Name] || !strings.EqualFold(r.Type, "Microsoft.Network/networkInterfaces") {
			continue
		}
		for _, dep := range r.Dependencies {
			target, ok := byName[dep.TargetName]
			if ok && containerTypes[strings.ToLower(target.Type)] {
				include[target.Name] = true
			}
		}
	}

	out := make([]model.Resource, 0, len(include))
	for _, r := range resources {
		if include[r.Name] {
			out = append(out, r)
		}
	}
	return out
}
