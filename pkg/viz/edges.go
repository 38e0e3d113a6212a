package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/azmapper/azmap/pkg/graph"
	"github.com/azmapper/azmap/pkg/model"
)

// AssociationEdges maps topology associations onto graph edges. Endpoints are
// resolved by full resource ID first, then by the bare resource name the ID
// ends with. Associations whose endpoints are not in the resource set are
// dropped silently.
func AssociationEdges(topology model.NetworkTopology, resources []model.Resource) []graph.Edge {
	byID := make(map[string]model.Resource, len(resources))
	byName := make(map[string]model.Resource, len(resources))
	for _, r := range resources {
		id := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/%s/%s",
			r.SubscriptionID, r.ResourceGroup, r.Type, r.Name)
		byID[id] = r
		if _, seen := byName[r.Name]; !seen {
			byName[r.Name] = r
		}
	}

	resolve := func(id string) (model.Resource, bool) {
		if r, ok := byID[id]; ok {
			return r, true
		}
		r, ok := byName[model.NameFromResourceID(id)]
		return r, ok
	}

	var edges []graph.Edge
	for _, assoc := range topology.Associations {
		source, okS := resolve(assoc.SourceID)
		target, okT := resolve(assoc.TargetID)
		if !okS || !okT {
			continue
		}
		edges = append(edges, graph.Edge{
			From:  NodeID(source),
			To:    NodeID(target),
			Label: assoc.AssociationType,
			Kind:  graph.EdgeAssociation,
			Style: associationStyle,
		})
	}
	return edges
}

// DependencyEdges maps declared resource dependencies onto styled graph
// edges. DNS zone service edges are synthesized first, then one edge per
// dependency whose target name resolves within the resource set.
func DependencyEdges(resources []model.Resource) []graph.Edge {
	byName := make(map[string]model.Resource, len(resources))
	for _, r := range resources {
		if _, seen := byName[r.Name]; !seen {
			byName[r.Name] = r
		}
	}

	edges := dnsServiceEdges(resources)

	for _, r := range resources {
		for _, dep := range r.Dependencies {
			target, ok := byName[dep.TargetName]
			if !ok {
				continue
			}
			label, style := dependencyStyle(r, target, dep.Kind, dep.Description)
			edges = append(edges, graph.Edge{
				From:  NodeID(r),
				To:    NodeID(target),
				Label: label,
				Kind:  graph.EdgeDependency,
				Style: style,
			})
		}
	}
	return edges
}

// dnsServedTypes are the resource types a DNS zone may serve.
var dnsServedTypes = map[string]bool{
	"microsoft.network/virtualnetworks":           true,
	"microsoft.compute/virtualmachines":           true,
	"microsoft.network/loadbalancers":             true,
	"microsoft.redhatopenshift/openshiftclusters": true,
	"microsoft.containerservice/managedclusters":  true,
}

// dnsServiceEdges connects DNS zones to the infrastructure they serve.
// OpenShift clusters are matched through their recorded DNS domains, which
// counts as explicit configuration; everything else is matched by naming
// pattern and styled as derived.
func dnsServiceEdges(resources []model.Resource) []graph.Edge {
	var edges []graph.Edge
	for _, zone := range resources {
		if !strings.EqualFold(zone.Type, "Microsoft.Network/dnszones") {
			continue
		}
		baseName := strings.ToLower(strings.SplitN(zone.Name, ".", 2)[0])
		parentDomain := ""
		if i := strings.Index(zone.Name, "."); i >= 0 {
			parentDomain = strings.ToLower(zone.Name[i+1:])
		}

		for _, r := range resources {
			if r.Name == zone.Name && r.Type == zone.Type {
				continue
			}
			if !dnsServedTypes[strings.ToLower(r.Type)] {
				continue
			}

			matched, derived := false, false
			if strings.EqualFold(r.Type, "Microsoft.RedHatOpenShift/OpenShiftClusters") {
				matched = clusterDomainMatch(r, parentDomain)
			} else {
				matched = dnsNameMatch(zone.Name, baseName, r.Name)
				derived = matched
			}
			if !matched {
				continue
			}

			label := "provides DNS for"
			style := graph.EdgeStyle{Line: graph.LineDashed, Color: "darkgreen", PenWidth: 2, Weight: 2, MinLen: 2}
			if derived {
				label = "provides DNS for (derived)"
				style = graph.EdgeStyle{Line: graph.LineDotted, Color: "orange", PenWidth: 2, Weight: 2, MinLen: 2}
			}
			edges = append(edges, graph.Edge{
				From:  NodeID(zone),
				To:    NodeID(r),
				Label: label,
				Kind:  graph.EdgeDNSService,
				Style: style,
			})
		}
	}
	return edges
}

// clusterDomainMatch reports whether the zone's parent domain appears in one
// of the cluster's recorded DNS domains.
func clusterDomainMatch(cluster model.Resource, parentDomain string) bool {
	if parentDomain == "" {
		return false
	}
	domains, ok := cluster.Properties["openshift_dns_domains"].([]any)
	if !ok {
		return false
	}
	for _, d := range domains {
		if s, ok := d.(string); ok && strings.Contains(strings.ToLower(s), parentDomain) {
			return true
		}
	}
	return false
}

// dnsNameMatch applies the naming heuristics that link a DNS zone to a
// resource: shared base name, or any alphanumeric zone name fragment of at
// least four characters appearing in the resource name.
func dnsNameMatch(zoneName, baseName, resourceName string) bool {
	lower := strings.ToLower(resourceName)
	if baseName != "" && strings.Contains(lower, baseName) {
		return true
	}
	for _, part := range strings.Split(strings.ToLower(zoneName), ".") {
		if len(part) >= 4 && isAlnum(part) && strings.Contains(lower, part) {
			return true
		}
	}
	return false
}

func isAlnum(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return s != ""
}

// CollapseBidirectional removes the redundant half of bidirectional edge
// pairs when a preferred direction exists for the endpoint types: network
// interface to virtual machine, and network interface to public IP. Pairs
// without a preference, and node pairs carrying more than two edges, are
// left untouched. Relative order of surviving edges is preserved.
func CollapseBidirectional(edges []graph.Edge, nodeType func(id string) (string, bool)) []graph.Edge {
	type pairKey struct{ a, b string }
	groups := make(map[pairKey][]int)
	for i, e := range edges {
		k := pairKey{e.From, e.To}
		if k.b < k.a {
			k.a, k.b = k.b, k.a
		}
		groups[k] = append(groups[k], i)
	}

	drop := make(map[int]bool)
	for _, idxs := range groups {
		if len(idxs) != 2 {
			continue
		}
		first, second := edges[idxs[0]], edges[idxs[1]]
		if first.From != second.To || first.To != second.From {
			continue
		}
		if preferredDirection(first, nodeType) {
			drop[idxs[1]] = true
		} else if preferredDirection(second, nodeType) {
			drop[idxs[0]] = true
		}
	}
	if len(drop) == 0 {
		return edges
	}

	kept := make([]graph.Edge, 0, len(edges)-len(drop))
	dropped := make([]int, 0, len(drop))
	for i := range drop {
		dropped = append(dropped, i)
	}
	sort.Ints(dropped)
	next := 0
	for i, e := range edges {
		if next < len(dropped) && dropped[next] == i {
			next++
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// preferredDirection reports whether the edge already points the way a
// bidirectional pair between its endpoint types should collapse to.
func preferredDirection(e graph.Edge, nodeType func(id string) (string, bool)) bool {
	from, okF := nodeType(e.From)
	to, okT := nodeType(e.To)
	if !okF || !okT {
		return false
	}
	if !strings.EqualFold(from, "microsoft.network/networkinterfaces") {
		return false
	}
	return strings.EqualFold(to, "microsoft.compute/virtualmachines") ||
		strings.EqualFold(to, "microsoft.network/publicipaddresses")
}
