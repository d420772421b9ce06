package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Store is the persistence interface for entries. Implementations must be
// safe for concurrent use.
type Store interface {
	// AddEntry stores an entry. The entry's ID and CreatedAt are already set.
	AddEntry(ctx context.Context, entry *Entry) error

	// ListEntries returns up to limit entries starting at offset, newest
	// first, along with the total entry count.
	ListEntries(ctx context.Context, offset, limit int) ([]*Entry, int, error)

	// GetEntry returns the entry with the given ID, or ErrNotFound.
	GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error)
}

// MemoryStore is an in-process Store. Entries live for the lifetime of the
// process; the demo deliberately has no database.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Entry
	byID    map[uuid.UUID]*Entry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[uuid.UUID]*Entry),
	}
}

// AddEntry implements Store.
func (m *MemoryStore) AddEntry(ctx context.Context, entry *Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *entry
	m.entries = append(m.entries, &clone)
	m.byID[clone.ID] = &clone
	return nil
}

// ListEntries implements Store. Entries are returned newest first.
func (m *MemoryStore) ListEntries(ctx context.Context, offset, limit int) ([]*Entry, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := len(m.entries)
	if offset < 0 || limit <= 0 || offset >= total {
		return nil, total, nil
	}

	out := make([]*Entry, 0, limit)
	// entries is append-ordered; walk it backwards for newest first.
	for i := total - 1 - offset; i >= 0 && len(out) < limit; i-- {
		clone := *m.entries[i]
		out = append(out, &clone)
	}
	return out, total, nil
}

// GetEntry implements Store.
func (m *MemoryStore) GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *entry
	return &clone, nil
}
