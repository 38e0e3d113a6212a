// Package model defines the input data model for diagram builds: cloud
// resources, their dependency references, the network topology handed over by
// the discovery collaborator, and the visualization configuration threaded
// through the pipeline.
//
// Everything in this package is plain data. Resources are treated as
// immutable once received; one VisualizationConfig is read-only for the
// duration of one build.
package model

import "strings"

// DependencyKind distinguishes how a dependency was discovered.
type DependencyKind string

const (
	// DependencyExplicit is a dependency directly observed via the provider API.
	DependencyExplicit DependencyKind = "explicit"
	// DependencyDerived is a dependency inferred by heuristic (naming
	// patterns, DNS configuration, and similar).
	DependencyDerived DependencyKind = "derived"
)

// DependencyRef names a target resource a resource depends on.
// The target may be absent from the current snapshot; such dangling
// references are dropped silently during edge synthesis.
type DependencyRef struct {
	TargetName  string         `json:"target_name" bson:"target_name"`
	Kind        DependencyKind `json:"kind" bson:"kind"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
}

// Resource is one inventoried cloud object.
type Resource struct {
	Name           string            `json:"name" bson:"name"`
	Type           string            `json:"type" bson:"type"` // provider/kind form, e.g. Microsoft.Compute/virtualMachines
	Category       string            `json:"category,omitempty" bson:"category,omitempty"`
	Location       string            `json:"location,omitempty" bson:"location,omitempty"`
	ResourceGroup  string            `json:"resource_group" bson:"resource_group"`
	SubscriptionID string            `json:"subscription_id,omitempty" bson:"subscription_id,omitempty"`
	Properties     map[string]any    `json:"properties,omitempty" bson:"properties,omitempty"`
	Tags           map[string]string `json:"tags,omitempty" bson:"tags,omitempty"`
	Dependencies   []DependencyRef   `json:"dependencies,omitempty" bson:"dependencies,omitempty"`
}

// InternetGatewayType is the synthetic type used for the virtual Internet
// node. It has no owning group and stands outside all clusters.
const InternetGatewayType = "Internet/Gateway"

// EffectiveCategory returns the resource's category, deriving it from the
// type's provider segment when unset ("Microsoft.Compute/virtualMachines"
// yields "Compute").
func (r Resource) EffectiveCategory() string {
	if r.Category != "" {
		return r.Category
	}
	provider, _, ok := strings.Cut(r.Type, "/")
	if !ok {
		return r.Type
	}
	return strings.TrimPrefix(provider, "Microsoft.")
}

// TypeSuffix returns the last path segment of the type string, lower-cased.
// It is part of the node identifier so that two resources of different types
// sharing a name stay collision-free.
func (r Resource) TypeSuffix() string {
	t := r.Type
	if i := strings.LastIndex(t, "/"); i >= 0 {
		t = t[i+1:]
	}
	return strings.ToLower(t)
}

// HasType reports whether the resource's type equals t, case-insensitively.
func (r Resource) HasType(t string) bool {
	return strings.EqualFold(r.Type, t)
}

// DependencyNames returns the target names of all dependency references in
// declaration order.
func (r Resource) DependencyNames() []string {
	if len(r.Dependencies) == 0 {
		return nil
	}
	names := make([]string, len(r.Dependencies))
	for i, d := range r.Dependencies {
		names[i] = d.TargetName
	}
	return names
}

// Association is a directed relationship discovered via the topology
// introspection facility, distinct from resource dependencies.
type Association struct {
	SourceID        string `json:"source_id" bson:"source_id"`
	TargetID        string `json:"target_id" bson:"target_id"`
	AssociationType string `json:"association_type,omitempty" bson:"association_type,omitempty"`
	Name            string `json:"name,omitempty" bson:"name,omitempty"`
}

// NetworkTopology carries the typed sub-records the discovery collaborator
// resolved alongside the resource inventory. The core only consumes the
// association list; the remaining lists travel with the snapshot so callers
// can persist one self-contained document.
type NetworkTopology struct {
	VirtualNetworks       []map[string]any `json:"virtual_networks,omitempty" bson:"virtual_networks,omitempty"`
	Subnets               []map[string]any `json:"subnets,omitempty" bson:"subnets,omitempty"`
	NetworkInterfaces     []map[string]any `json:"network_interfaces,omitempty" bson:"network_interfaces,omitempty"`
	PublicIPs             []map[string]any `json:"public_ips,omitempty" bson:"public_ips,omitempty"`
	LoadBalancers         []map[string]any `json:"load_balancers,omitempty" bson:"load_balancers,omitempty"`
	NetworkSecurityGroups []map[string]any `json:"network_security_groups,omitempty" bson:"network_security_groups,omitempty"`
	Associations          []Association    `json:"associations,omitempty" bson:"associations,omitempty"`
}
