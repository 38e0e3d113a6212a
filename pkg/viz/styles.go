package viz

import (
	"strings"

	"github.com/azmapper/azmap/pkg/graph"
	"github.com/azmapper/azmap/pkg/model"
)

// typePair keys the dependency style table by lower-cased source and target
// resource types.
type typePair struct {
	source string
	target string
}

// edgeSpec describes the visual treatment of one dependency relationship.
type edgeSpec struct {
	label string
	style graph.EdgeStyle
}

// dependencyStyles maps known (source type, target type) pairs to their edge
// treatment. Pairs not listed here fall back to the generic dependency or
// derived styles.
var dependencyStyles = map[typePair]edgeSpec{
	{"microsoft.compute/virtualmachines", "microsoft.compute/disks"}: {
		label: "attached",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "darkgreen", PenWidth: 2, Weight: 10, MinLen: 1},
	},
	{"microsoft.network/privateendpoints", "microsoft.network/networkinterfaces"}: {
		label: "uses",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "purple", PenWidth: 2, Weight: 8, MinLen: 1},
	},
	{"microsoft.network/privatelinkservices", "microsoft.network/networkinterfaces"}: {
		label: "uses",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "orange", PenWidth: 2, Weight: 8, MinLen: 1},
	},
	{"microsoft.network/privatelinkservices", "microsoft.network/loadbalancers"}: {
		label: "fronts",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "blue", PenWidth: 2, Weight: 9, MinLen: 1},
	},
	{"microsoft.network/privateendpoints", "microsoft.network/virtualnetworks/subnets"}: {
		label: "deployed in",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "cyan", PenWidth: 2, Weight: 5, MinLen: 1},
	},
	{"microsoft.network/networkinterfaces", "microsoft.network/virtualnetworks/subnets"}: {
		label: "in",
		style: graph.EdgeStyle{Line: graph.LineDashed, Color: "lime", PenWidth: 2, Weight: 3, MinLen: 1},
	},
	{"internet/gateway", "microsoft.network/publicipaddresses"}: {
		label: "connected",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "yellow", PenWidth: 3, Weight: 10, MinLen: 1},
	},
	{"microsoft.network/networksecuritygroups", "microsoft.network/virtualnetworks/subnets"}: {
		label: "secures",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "red", PenWidth: 2, Weight: 7, MinLen: 1},
	},
	{"microsoft.compute/virtualmachines", "microsoft.storage/storageaccounts"}: {
		label: "stores data",
		style: graph.EdgeStyle{Line: graph.LineDashed, Color: "brown", PenWidth: 2, Weight: 4, MinLen: 1},
	},
	{"microsoft.network/virtualnetworks", "microsoft.network/virtualnetworks/subnets"}: {
		label: "contains",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "darkblue", PenWidth: 2, Weight: 8, MinLen: 1},
	},
	{"microsoft.network/virtualnetworks", "microsoft.network/privateendpoints"}: {
		label: "contains",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "darkblue", PenWidth: 2, Weight: 8, MinLen: 1},
	},
	{"microsoft.redhatopenshift/openshiftclusters", "microsoft.network/virtualnetworks/subnets"}: {
		label: "deployed in",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "darkred", PenWidth: 3, Weight: 9, MinLen: 1},
	},
	{"microsoft.redhatopenshift/openshiftclusters", "microsoft.network/virtualnetworks"}: {
		label: "uses network",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "darkred", PenWidth: 3, Weight: 9, MinLen: 1},
	},
	{"microsoft.redhatopenshift/openshiftclusters", "microsoft.storage/storageaccounts"}: {
		label: "uses storage",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "darkred", PenWidth: 2, Weight: 6, MinLen: 1},
	},
	{"microsoft.compute/virtualmachines", "microsoft.compute/sshpublickeys"}: {
		label: "authenticates",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "gold", PenWidth: 2, Weight: 7, MinLen: 1},
	},
	{"microsoft.compute/galleries/images", "microsoft.compute/galleries"}: {
		label: "contained in",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "purple", PenWidth: 2, Weight: 8, MinLen: 1},
	},
	{"microsoft.compute/galleries/images/versions", "microsoft.compute/galleries/images"}: {
		label: "version of",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "purple", PenWidth: 2, Weight: 8, MinLen: 1},
	},
	{"microsoft.network/privatednszones/virtualnetworklinks", "microsoft.network/privatednszones"}: {
		label: "links to",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "darkgreen", PenWidth: 2, Weight: 8, MinLen: 1},
	},
	{"microsoft.network/privatednszones/virtualnetworklinks", "microsoft.network/virtualnetworks"}: {
		label: "connects to",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "darkgreen", PenWidth: 2, Weight: 7, MinLen: 1},
	},
	{"microsoft.network/privatednszones", "microsoft.network/virtualnetworks"}: {
		label: "provides DNS for",
		style: graph.EdgeStyle{Line: graph.LineDashed, Color: "darkgreen", PenWidth: 2, Weight: 5, MinLen: 2},
	},
	{"microsoft.network/virtualnetworks/subnets", "microsoft.network/routetables"}: {
		label: "uses routing",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "orange", PenWidth: 2, Weight: 6, MinLen: 1},
	},
	{"microsoft.network/dnszones", "microsoft.network/loadbalancers"}: {
		label: "resolves to",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "navy", PenWidth: 2, Weight: 5, MinLen: 2},
	},
	{"microsoft.network/dnszones", "microsoft.network/publicipaddresses"}: {
		label: "resolves to",
		style: graph.EdgeStyle{Line: graph.LineSolid, Color: "navy", PenWidth: 2, Weight: 5, MinLen: 2},
	},
	{"microsoft.network/dnszones", "microsoft.compute/virtualmachines"}: {
		label: "serves API for",
		style: graph.EdgeStyle{Line: graph.LineDashed, Color: "navy", PenWidth: 2, Weight: 4, MinLen: 2},
	},
}

// identityConsumerTypes are the source types whose dependency on a user
// assigned identity gets the "uses identity" treatment.
var identityConsumerTypes = map[string]bool{
	"microsoft.compute/virtualmachines":           true,
	"microsoft.compute/virtualmachinescalesets":   true,
	"microsoft.containerservice/managedclusters":  true,
	"microsoft.redhatopenshift/openshiftclusters": true,
	"microsoft.web/sites":                         true,
}

// associationStyle is the fixed treatment for topology association edges.
var associationStyle = graph.EdgeStyle{Line: graph.LineSolid, Color: "blue"}

// dependencyStyle resolves the label and style for a dependency from source
// to target. Derived dependencies that have no pair-specific entry fall back
// to a dotted orange edge whose label carries the derivation description.
func dependencyStyle(source, target model.Resource, kind model.DependencyKind, description string) (string, graph.EdgeStyle) {
	st := strings.ToLower(source.Type)
	tt := strings.ToLower(target.Type)

	if spec, ok := dependencyStyles[typePair{st, tt}]; ok {
		// The VM to storage account pair keeps a separate derived variant.
		if kind == model.DependencyDerived && st == "microsoft.compute/virtualmachines" && tt == "microsoft.storage/storageaccounts" {
			label := "derived storage"
			if description != "" {
				label = "derived storage (" + description + ")"
			}
			return label, graph.EdgeStyle{Line: graph.LineDotted, Color: "orange", PenWidth: 2, Weight: 3, MinLen: 1}
		}
		return spec.label, spec.style
	}

	if identityConsumerTypes[st] && tt == "microsoft.managedidentity/userassignedidentities" {
		return "uses identity", graph.EdgeStyle{Line: graph.LineSolid, Color: "teal", PenWidth: 2, Weight: 6, MinLen: 1}
	}

	if kind == model.DependencyDerived {
		label := "derived"
		if description != "" {
			label = "derived (" + description + ")"
		}
		return label, graph.EdgeStyle{Line: graph.LineDotted, Color: "orange", PenWidth: 1}
	}
	return "depends on", graph.EdgeStyle{Line: graph.LineDashed, Color: "red"}
}
