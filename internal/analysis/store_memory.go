package analysis

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory ResultStore for tests and table-less dev runs.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Put appends the record. Matching the durable store's upsert semantics,
// an identical (filename, timestamp) pair replaces the earlier record.
func (m *MemoryStore) Put(ctx context.Context, record Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.records {
		if existing.Filename == record.Filename && existing.Timestamp == record.Timestamp {
			m.records[i] = record
			return nil
		}
	}
	m.records = append(m.records, record)
	return nil
}

// QueryByBranch returns up to limit records for the branch, most recent first.
func (m *MemoryStore) QueryByBranch(ctx context.Context, branch string, limit int32) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Record
	for _, record := range m.records {
		if record.Branch == branch {
			out = append(out, record)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	if limit > 0 && int(limit) < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// Len reports the number of stored records.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

var _ ResultStore = (*MemoryStore)(nil)
