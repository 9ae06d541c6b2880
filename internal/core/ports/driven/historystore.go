package driven

import (
	"context"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

// HistoryStore persists the query history.
type HistoryStore interface {
	// Append stores one query record.
	Append(ctx context.Context, record domain.QueryRecord) error

	// List returns the most recent records, newest first, at most limit.
	List(ctx context.Context, limit int) ([]domain.QueryRecord, error)

	// Close releases resources.
	Close() error
}
