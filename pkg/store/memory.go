package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryArchive is an in-process Archive for development and tests.
type MemoryArchive struct {
	mu      sync.RWMutex
	records map[string]*BuildRecord
}

// NewMemoryArchive creates an empty in-memory archive.
func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{records: make(map[string]*BuildRecord)}
}

func (m *MemoryArchive) Save(_ context.Context, record *BuildRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *record
	m.records[record.ID] = &clone
	return nil
}

func (m *MemoryArchive) Get(_ context.Context, id string) (*BuildRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *record
	return &clone, nil
}

func (m *MemoryArchive) List(_ context.Context, subscriptionID string, limit int) ([]*BuildRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*BuildRecord
	for _, record := range m.records {
		if subscriptionID != "" && record.SubscriptionID != subscriptionID {
			continue
		}
		clone := *record
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryArchive) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

func (m *MemoryArchive) Close(_ context.Context) error {
	return nil
}

var _ Archive = (*MemoryArchive)(nil)
