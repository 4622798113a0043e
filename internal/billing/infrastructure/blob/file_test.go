package blob

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableside/tableside/internal/billing/application"
	"github.com/tableside/tableside/internal/billing/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.json")
	store := NewFileStore(testLogger(), path)

	bills := []domain.ActiveBill{
		{
			ID:        "bill-1",
			TableID:   "t7",
			LineItems: []domain.LineItem{{ID: "p1", Name: "Tea", Price: 5000, Quantity: 2}},
			CreatedAt: time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC),
		},
	}
	require.NoError(t, store.Save(context.Background(), bills))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, bills, got)
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := NewFileStore(testLogger(), filepath.Join(t.TempDir(), "absent.json"))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStoreLoadCorruptBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(testLogger(), path).Load(context.Background())
	assert.Error(t, err)
}

// A bill added before a restart comes back identical, timestamps and ids
// included, through a registry built on the same file.
func TestRegistrySurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.json")
	log := testLogger()

	first := application.NewRegistry(context.Background(), log, NewFileStore(log, path))
	bill := first.Add(context.Background(), domain.ActiveBill{
		TableID:   "t7",
		LineItems: []domain.LineItem{{ID: "p1", Name: "Tea", Price: 5000, Quantity: 1}},
	})

	second := application.NewRegistry(context.Background(), log, NewFileStore(log, path))
	got, err := second.GetByTable("t7")
	require.NoError(t, err)
	assert.Equal(t, bill.ID, got.ID)
	assert.Equal(t, bill.LineItems, got.LineItems)
	assert.True(t, bill.CreatedAt.Equal(got.CreatedAt))
}

func TestRegistryStartsEmptyOnCorruptBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	log := testLogger()
	r := application.NewRegistry(context.Background(), log, NewFileStore(log, path))
	assert.Empty(t, r.List())
}
