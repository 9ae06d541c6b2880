package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
	"github.com/cosmolabs/cosmo-cli/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Append stores one query record.
func (h *historyStore) Append(ctx context.Context, record domain.QueryRecord) error {
	ok := 0
	if record.OK {
		ok = 1
	}

	_, err := h.store.db.ExecContext(ctx, `
		INSERT INTO query_history (id, archive, op, target, ok, detail, duration_ms, queried_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.Archive, record.Op, record.Target, ok, record.Detail,
		record.Duration.Milliseconds(), record.When.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting history record: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first, at most limit.
func (h *historyStore) List(ctx context.Context, limit int) ([]domain.QueryRecord, error) {
	if limit < 1 {
		limit = 20
	}

	rows, err := h.store.db.QueryContext(ctx, `
		SELECT id, archive, op, target, ok, detail, duration_ms, queried_at
		FROM query_history
		ORDER BY queried_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []domain.QueryRecord
	for rows.Next() {
		var (
			rec        domain.QueryRecord
			ok         int
			durationMS int64
			queriedAt  string
		)
		if err := rows.Scan(&rec.ID, &rec.Archive, &rec.Op, &rec.Target, &ok,
			&rec.Detail, &durationMS, &queriedAt); err != nil {
			return nil, fmt.Errorf("scanning history record: %w", err)
		}
		rec.OK = ok == 1
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		when, err := time.Parse(time.RFC3339Nano, queriedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing history timestamp: %w", err)
		}
		rec.When = when
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the underlying store.
func (h *historyStore) Close() error {
	return h.store.Close()
}
