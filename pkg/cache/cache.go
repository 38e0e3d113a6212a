// Package cache provides pluggable byte caches and the key scheme the
// diagram pipeline uses to skip recomputation of unchanged stages.
package cache

import (
	"context"
	"time"
)

// Cache is the interface all cache backends implement. Values are opaque
// byte slices; callers serialize before storing.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Stage TTLs. Graphs are invalidated by their snapshot hash, so they can
// live long; rendered artifacts are larger and cheaper to rebuild.
const (
	TTLGraph    = 24 * time.Hour
	TTLDocument = 24 * time.Hour
	TTLArtifact = 6 * time.Hour
)

// GraphKeyOpts are the build parameters that change graph structure.
type GraphKeyOpts struct {
	Depth        int      `json:"depth"`
	ComputeOnly  bool     `json:"compute_only"`
	ExcludeTypes []string `json:"exclude_types,omitempty"`
}

// DocumentKeyOpts are the emission parameters that change the DOT document.
type DocumentKeyOpts struct {
	Theme          string `json:"theme"`
	Verbosity      int    `json:"verbosity"`
	Direction      string `json:"direction"`
	Splines        string `json:"splines"`
	ShowLegend     bool   `json:"show_legend"`
	ShowPowerState bool   `json:"show_power_state"`
}

// ArtifactKeyOpts distinguish rendered outputs of the same document.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer generates cache keys for each pipeline stage.
type Keyer interface {
	// GraphKey keys a built resource graph by its snapshot hash and build
	// parameters.
	GraphKey(snapshotHash string, opts GraphKeyOpts) string

	// DocumentKey keys an emitted DOT document by its graph hash and
	// emission parameters.
	DocumentKey(graphHash string, opts DocumentKeyOpts) string

	// ArtifactKey keys a rendered artifact by its document hash and format.
	ArtifactKey(documentHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces prefix:sha256 keys from the stage inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

func (k *DefaultKeyer) GraphKey(snapshotHash string, opts GraphKeyOpts) string {
	return hashKey("graph", snapshotHash, opts)
}

func (k *DefaultKeyer) DocumentKey(graphHash string, opts DocumentKeyOpts) string {
	return hashKey("document", graphHash, opts)
}

func (k *DefaultKeyer) ArtifactKey(documentHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", documentHash, opts)
}
