package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmolabs/cosmo-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func record(id string, when time.Time) domain.QueryRecord {
	return domain.QueryRecord{
		ID:       id,
		Archive:  "simbad",
		Op:       "QueryObject",
		Target:   "M31",
		OK:       true,
		Duration: 120 * time.Millisecond,
		When:     when,
	}
}

func TestNewStore_Migrates(t *testing.T) {
	store := newTestStore(t)

	var count int
	row := store.db.QueryRow("SELECT COUNT(*) FROM query_history")
	require.NoError(t, row.Scan(&count))
	assert.Zero(t, count)

	var version int
	row = store.db.QueryRow("SELECT MAX(version) FROM schema_migrations")
	require.NoError(t, row.Scan(&version))
	assert.Equal(t, 1, version)
}

func TestHistoryStore_AppendAndList(t *testing.T) {
	store := newTestStore(t)
	hs := store.HistoryStore()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rec := record(fmt.Sprintf("id-%d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, hs.Append(ctx, rec))
	}

	records, err := hs.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first
	assert.Equal(t, "id-2", records[0].ID)
	assert.Equal(t, "id-0", records[2].ID)
	assert.Equal(t, "simbad", records[0].Archive)
	assert.Equal(t, 120*time.Millisecond, records[0].Duration)
	assert.True(t, records[0].When.Equal(base.Add(2*time.Minute)))
}

func TestHistoryStore_ListLimit(t *testing.T) {
	store := newTestStore(t)
	hs := store.HistoryStore()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, hs.Append(ctx, record(fmt.Sprintf("id-%d", i), base.Add(time.Duration(i)*time.Second))))
	}

	records, err := hs.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestHistoryStore_FailureRecord(t *testing.T) {
	store := newTestStore(t)
	hs := store.HistoryStore()
	ctx := context.Background()

	rec := record("fail-1", time.Now().UTC())
	rec.OK = false
	rec.Detail = "archive unreachable"
	require.NoError(t, hs.Append(ctx, rec))

	records, err := hs.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].OK)
	assert.Equal(t, "archive unreachable", records[0].Detail)
}

func TestHistoryStore_EmptyList(t *testing.T) {
	store := newTestStore(t)

	records, err := store.HistoryStore().List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNewStore_Reopen(t *testing.T) {
	dir := t.TempDir()

	store1, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store1.HistoryStore().Append(context.Background(), record("persist", time.Now().UTC())))
	require.NoError(t, store1.Close())

	store2, err := NewStore(dir)
	require.NoError(t, err)
	defer store2.Close()

	records, err := store2.HistoryStore().List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "persist", records[0].ID)
}
