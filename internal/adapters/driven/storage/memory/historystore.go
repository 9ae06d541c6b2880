// Package memory provides in-memory store implementations, used when
// persistence is disabled and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore keeps query records in memory, in append order.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.QueryRecord
}

// NewHistoryStore creates an empty in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Append stores one query record.
func (s *HistoryStore) Append(_ context.Context, record domain.QueryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// List returns the most recent records, newest first, at most limit.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.QueryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit < 1 {
		limit = 20
	}
	n := len(s.records)
	if limit > n {
		limit = n
	}

	out := make([]domain.QueryRecord, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

// Close is a no-op.
func (s *HistoryStore) Close() error {
	return nil
}
