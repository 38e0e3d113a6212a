package model

import "strings"

// ResourceID is the structured form of a path-like provider resource ID:
//
//	/subscriptions/{sub}/resourceGroups/{rg}/providers/{provider}/{type...}/{name}
type ResourceID struct {
	SubscriptionID string
	ResourceGroup  string
	Provider       string
	Type           string // provider/kind form, child segments joined
	Name           string
}

// ParseResourceID splits a path-like resource ID into its components.
// It returns ok=false for IDs with fewer than the minimum segment count
// instead of assuming fixed indexes are safe.
func ParseResourceID(id string) (ResourceID, bool) {
	parts := strings.Split(strings.Trim(id, "/"), "/")
	// subscriptions/{sub}/resourceGroups/{rg}/providers/{provider}/{kind}/{name}
	if len(parts) < 8 {
		return ResourceID{}, false
	}
	if !strings.EqualFold(parts[0], "subscriptions") ||
		!strings.EqualFold(parts[2], "resourceGroups") ||
		!strings.EqualFold(parts[4], "providers") {
		return ResourceID{}, false
	}

	rid := ResourceID{
		SubscriptionID: parts[1],
		ResourceGroup:  parts[3],
		Provider:       parts[5],
		Name:           parts[len(parts)-1],
	}

	// Type segments sit between the provider and the trailing name. Child
	// resources alternate kind/name pairs; keep the kind segments only.
	segs := parts[6 : len(parts)-1]
	kinds := make([]string, 0, len(segs))
	for i := 0; i < len(segs); i += 2 {
		kinds = append(kinds, segs[i])
	}
	rid.Type = rid.Provider + "/" + strings.Join(kinds, "/")
	return rid, true
}

// NameFromResourceID extracts the trailing resource name from a path-like ID.
// For inputs that do not parse as a full resource ID, the input is returned
// unchanged so that bare names pass through.
func NameFromResourceID(id string) string {
	if id == "" {
		return ""
	}
	if rid, ok := ParseResourceID(id); ok {
		return rid.Name
	}
	if i := strings.LastIndex(id, "/"); i >= 0 && strings.Contains(id, "/subscriptions/") {
		return id[i+1:]
	}
	return id
}
