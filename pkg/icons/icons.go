// Package icons resolves resource types to service icon files for diagram
// node labels. Resolution is best effort: a type without a mapping, or a
// mapped file missing on disk, yields no icon and the emitter falls back to
// a plain text label.
package icons

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver maps a resource type to an icon file path.
type Resolver interface {
	// IconPath returns the absolute path of the icon for the given resource
	// type, and whether one is available.
	IconPath(resourceType string) (string, bool)
}

// DirResolver resolves icons from a directory of PNG files using the
// built-in type mappings.
type DirResolver struct {
	dir      string
	mappings map[string]string
}

// NewDirResolver creates a resolver over the given icon directory. Custom
// mappings, keyed by lower-case resource type, override the built-ins.
func NewDirResolver(dir string, custom map[string]string) *DirResolver {
	mappings := make(map[string]string, len(defaultMappings)+len(custom))
	for k, v := range defaultMappings {
		mappings[k] = v
	}
	for k, v := range custom {
		mappings[strings.ToLower(k)] = v
	}
	return &DirResolver{dir: dir, mappings: mappings}
}

func (r *DirResolver) IconPath(resourceType string) (string, bool) {
	name, ok := r.mappings[strings.ToLower(resourceType)]
	if !ok {
		return "", false
	}
	path := filepath.Join(r.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// None is a resolver that never yields an icon. Diagrams rendered without an
// icon directory use text-only node labels.
type None struct{}

func (None) IconPath(string) (string, bool) { return "", false }

var defaultMappings = map[string]string{
	"microsoft.compute/virtualmachines":          "virtualmachines.png",
	"microsoft.compute/virtualmachinescalesets":  "virtualmachinescalesets.png",
	"microsoft.compute/availabilitysets":         "AvailabilitySets.png",
	"microsoft.compute/disks":                    "Disks.png",
	"microsoft.compute/snapshots":                "DiskSnapshots.png",
	"microsoft.compute/images":                   "VMImages.png",
	"microsoft.web/sites":                        "functions.png",
	"microsoft.servicefabric/clusters":           "servicefabric.png",
	"microsoft.network/virtualnetworks":          "virtualnetworks.png",
	"microsoft.network/virtualnetworkgateways":   "virtualnetworkgateways.png",
	"microsoft.network/loadbalancers":            "LoadBalancers.png",
	"microsoft.network/applicationgateways":      "ApplicationGateway.png",
	"microsoft.network/networksecuritygroups":    "networksecuritygroups.png",
	"microsoft.network/publicipaddresses":        "publicip.png",
	"microsoft.network/routetables":              "routetables.png",
	"microsoft.network/trafficmanagerprofiles":   "trafficmanagerprofiles.png",
	"microsoft.network/frontdoors":               "FrontDoors.png",
	"microsoft.network/connections":              "Connections.png",
	"microsoft.network/networkinterfaces":        "nic.png",
	"microsoft.network/networkwatchers":          "NetworkWatcher.png",
	"microsoft.network/dnszones":                 "appservices.png",
	"microsoft.network/privateendpoints":         "Connections.png",
	"microsoft.network/privatelinkservices":      "Connections.png",
	"microsoft.storage/storageaccounts":          "storageaccounts.png",
	"microsoft.sql/servers":                      "sqlservers.png",
	"microsoft.documentdb/databaseaccounts":      "cosmosdb.png",
	"microsoft.cache/redis":                      "redis.png",
	"microsoft.containerregistry/registries":     "ContainerRegistries.png",
	"microsoft.containerinstance/containergroups": "containerinstances.png",
	"microsoft.containerservice/managedclusters":  "KubernetesServices.png",
	"microsoft.redhatopenshift/openshiftclusters": "KubernetesServices.png",
	"microsoft.databricks/workspaces":             "databricks.png",
	"microsoft.datafactory/factories":             "DataFactories.png",
	"microsoft.eventhub/namespaces":               "EventHubs.png",
	"microsoft.eventhub/clusters":                 "EventHubClusters.png",
	"microsoft.operationalinsights/workspaces":    "LogAnalyticsWorkspaces.png",
	"microsoft.datalakeanalytics/accounts":        "DataLakeAnalytics.png",
	"microsoft.keyvault/vaults":                   "keyvaults.png",
	"microsoft.automation/automationaccounts":     "automation.png",
	"microsoft.resources/resourcegroups":          "ResourceGroups.png",
	"microsoft.resources/subscriptions":           "Subscriptions.png",
	"microsoft.web/serverfarms":                   "appservices.png",
	"microsoft.cdn/profiles":                      "cdnprofiles.png",
	"microsoft.insights/components":               "applicationinsights.png",
	"microsoft.web/connections":                   "APIConnections.png",
	"microsoft.media/mediaservices":               "mediaservices.png",
	"microsoft.appconfiguration/configurationstores":   "appconfiguration.png",
	"microsoft.managedidentity/userassignedidentities": "managedidentities.png",
}

// Mappings returns a copy of the resolver's type to filename table.
func (r *DirResolver) Mappings() map[string]string {
	out := make(map[string]string, len(r.mappings))
	for k, v := range r.mappings {
		out[k] = v
	}
	return out
}
