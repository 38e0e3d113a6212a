// Package snapshot defines the on-disk input document: a point-in-time
// capture of a subscription's resources and network topology, serialized as
// JSON.
package snapshot

import (
	"encoding/json"
	"io"
	"os"
	"sort"
	"time"

	"github.com/azmapper/azmap/pkg/errors"
	"github.com/azmapper/azmap/pkg/model"
)

// Snapshot is one captured subscription state.
type Snapshot struct {
	SubscriptionID   string    `json:"subscription_id,omitempty" bson:"subscription_id,omitempty"`
	SubscriptionName string    `json:"subscription_name,omitempty" bson:"subscription_name,omitempty"`
	CapturedAt       time.Time `json:"captured_at,omitempty" bson:"captured_at,omitempty"`

	Resources []model.Resource      `json:"resources" bson:"resources"`
	Topology  model.NetworkTopology `json:"topology,omitempty" bson:"topology,omitempty"`
}

// Read parses a snapshot document from r.
func Read(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSnapshot, err, "decoding snapshot")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a snapshot from a file.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "snapshot file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "opening snapshot %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Write serializes the snapshot as indented JSON.
func (s *Snapshot) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding snapshot")
	}
	return nil
}

// Save writes the snapshot to a file.
func (s *Snapshot) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "creating %s", path)
	}
	defer f.Close()
	return s.Write(f)
}

// Validate checks structural requirements. An empty resource list is valid:
// the pipeline emits a minimal document for it.
func (s *Snapshot) Validate() error {
	for i, r := range s.Resources {
		if r.Name == "" {
			return errors.New(errors.ErrCodeInvalidSnapshot, "resource %d has no name", i)
		}
		if r.Type == "" {
			return errors.New(errors.ErrCodeInvalidSnapshot, "resource %q has no type", r.Name)
		}
	}
	return nil
}

// ResourceGroups returns the distinct resource group names in the snapshot,
// sorted.
func (s *Snapshot) ResourceGroups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, r := range s.Resources {
		if r.ResourceGroup == "" || seen[r.ResourceGroup] {
			continue
		}
		seen[r.ResourceGroup] = true
		groups = append(groups, r.ResourceGroup)
	}
	sort.Strings(groups)
	return groups
}

// FilterGroups returns a copy of the snapshot containing only resources in
// the named groups. An empty selection returns the snapshot unchanged.
func (s *Snapshot) FilterGroups(groups []string) *Snapshot {
	if len(groups) == 0 {
		return s
	}
	want := make(map[string]bool, len(groups))
	for _, g := range groups {
		want[g] = true
	}
	out := *s
	out.Resources = nil
	for _, r := range s.Resources {
		if want[r.ResourceGroup] {
			out.Resources = append(out.Resources, r)
		}
	}
	return &out
}

// Hashable returns the canonical serialization used for cache keys.
func (s *Snapshot) Hashable() ([]byte, error) {
	return json.Marshal(s)
}
