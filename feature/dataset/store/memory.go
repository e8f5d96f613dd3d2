package store

import (
	"context"
	"sync"

	"snapshot-manager/feature/dataset/models"
)

// MemoryStore is an in-memory dataset store. It backs unit tests and
// throwaway dry-runs; nothing survives process exit.
type MemoryStore struct {
	mu           sync.Mutex
	bootstrapped bool
	table        *models.Table
}

// NewMemoryStore creates an empty, un-bootstrapped memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Bootstrap initializes the store with an empty table.
func (s *MemoryStore) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.bootstrapped {
		s.bootstrapped = true
		s.table = models.NewTable()
	}
	return nil
}

// Load returns a copy of the stored table.
func (s *MemoryStore) Load(ctx context.Context) (*models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.bootstrapped {
		return nil, ErrNotBootstrapped
	}
	return s.table.Clone(), nil
}

// Save replaces the stored table with a copy of the given one.
func (s *MemoryStore) Save(ctx context.Context, table *models.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.bootstrapped {
		return ErrNotBootstrapped
	}
	s.table = table.Clone()
	return nil
}
