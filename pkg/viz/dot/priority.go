package dot

import "strings"

// layoutPriorities orders resource types into columns within a resource
// group cluster, leftmost first. Types without an entry land at the end.
var layoutPriorities = map[string]int{
	"microsoft.network/publicipaddresses":     1,
	"microsoft.network/networksecuritygroups": 2,
	"microsoft.network/networkinterfaces":     3,
	"microsoft.network/virtualnetworks/subnets": 4,
	"microsoft.network/virtualnetworks":         5,

	"microsoft.compute/virtualmachines":           6,
	"microsoft.compute/virtualmachinescalesets":   6,
	"microsoft.containerservice/managedclusters":  6,
	"microsoft.redhatopenshift/openshiftclusters": 6,

	"microsoft.compute/disks":           7,
	"microsoft.storage/storageaccounts": 7,

	"microsoft.compute/sshpublickeys":                  8,
	"microsoft.managedidentity/userassignedidentities": 8,
	"microsoft.compute/galleries":                      8,
	"microsoft.compute/galleries/images":               8,
	"microsoft.compute/galleries/images/versions":      8,
}

// defaultPriority places unlisted types after every known column.
const defaultPriority = 99

// LayoutPriority returns the column priority for a resource type.
func LayoutPriority(resourceType string) int {
	if p, ok := layoutPriorities[strings.ToLower(resourceType)]; ok {
		return p
	}
	return defaultPriority
}

// storageTypes are excluded from per-column rank constraints so they can be
// pulled next to the machines they serve instead.
var storageTypes = map[string]bool{
	"microsoft.compute/disks":           true,
	"microsoft.storage/storageaccounts": true,
}

func isStorageType(resourceType string) bool {
	return storageTypes[strings.ToLower(resourceType)]
}
