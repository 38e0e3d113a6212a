package snapshot

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/azmapper/azmap/pkg/errors"
	"github.com/azmapper/azmap/pkg/model"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		SubscriptionID:   "sub-1",
		SubscriptionName: "Production",
		Resources: []model.Resource{
			{Name: "vm1", Type: "Microsoft.Compute/virtualMachines", ResourceGroup: "rg-b"},
			{Name: "disk1", Type: "Microsoft.Compute/disks", ResourceGroup: "rg-a"},
			{Name: "nic1", Type: "Microsoft.Network/networkInterfaces", ResourceGroup: "rg-b"},
			{Name: "Internet", Type: model.InternetGatewayType},
		},
	}
}

func TestReadValid(t *testing.T) {
	doc := `{
		"subscription_id": "sub-1",
		"resources": [
			{"name": "vm1", "type": "Microsoft.Compute/virtualMachines", "resource_group": "rg1"}
		]
	}`
	s, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if s.SubscriptionID != "sub-1" || len(s.Resources) != 1 {
		t.Errorf("snapshot = %+v", s)
	}
	if s.Resources[0].Name != "vm1" {
		t.Errorf("resource = %+v", s.Resources[0])
	}
}

func TestReadInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed json", `{`},
		{"nameless resource", `{"resources": [{"type": "Microsoft.Compute/disks"}]}`},
		{"typeless resource", `{"resources": [{"name": "disk1"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("Read() accepted an invalid document")
			}
			if !errors.Is(err, errors.ErrCodeInvalidSnapshot) {
				t.Errorf("error code = %v, want INVALID_SNAPSHOT", errors.GetCode(err))
			}
		})
	}
}

func TestReadEmptyResourceList(t *testing.T) {
	s, err := Read(strings.NewReader(`{"resources": []}`))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(s.Resources) != 0 {
		t.Errorf("resources = %v", s.Resources)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("error code = %v, want NOT_FOUND", errors.GetCode(err))
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	s := testSnapshot()
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.SubscriptionID != s.SubscriptionID || loaded.SubscriptionName != s.SubscriptionName {
		t.Errorf("subscription metadata changed: %+v", loaded)
	}
	if !reflect.DeepEqual(loaded.Resources, s.Resources) {
		t.Errorf("round trip changed the resources:\n%+v\n%+v", s.Resources, loaded.Resources)
	}
}

func TestWriteIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := testSnapshot().Write(&buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"subscription_id\"") {
		t.Errorf("output not indented:\n%s", buf.String())
	}
}

func TestResourceGroups(t *testing.T) {
	got := testSnapshot().ResourceGroups()
	want := []string{"rg-a", "rg-b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResourceGroups() = %v, want %v", got, want)
	}
}

func TestFilterGroups(t *testing.T) {
	s := testSnapshot()

	filtered := s.FilterGroups([]string{"rg-b"})
	if len(filtered.Resources) != 2 {
		t.Fatalf("got %d resources, want 2", len(filtered.Resources))
	}
	for _, r := range filtered.Resources {
		if r.ResourceGroup != "rg-b" {
			t.Errorf("resource %s in group %q survived", r.Name, r.ResourceGroup)
		}
	}
	if filtered.SubscriptionID != s.SubscriptionID {
		t.Error("subscription metadata dropped")
	}

	// Empty selection keeps everything.
	if got := s.FilterGroups(nil); got != s {
		t.Error("empty selection should return the snapshot unchanged")
	}

	// The source snapshot is untouched.
	if len(s.Resources) != 4 {
		t.Errorf("filtering mutated the source: %d resources", len(s.Resources))
	}
}

func TestHashableIsStable(t *testing.T) {
	a, err := testSnapshot().Hashable()
	if err != nil {
		t.Fatalf("Hashable() error: %v", err)
	}
	b, err := testSnapshot().Hashable()
	if err != nil {
		t.Fatalf("Hashable() error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical snapshots hash differently")
	}
}
