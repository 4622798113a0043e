package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableside/tableside/internal/billing/domain"
)

type fakeStore struct {
	saved   [][]domain.ActiveBill
	loadErr error
	initial []domain.ActiveBill
	saveErr error
}

func (s *fakeStore) Load(ctx context.Context) ([]domain.ActiveBill, error) {
	return s.initial, s.loadErr
}

func (s *fakeStore) Save(ctx context.Context, bills []domain.ActiveBill) error {
	snapshot := make([]domain.ActiveBill, len(bills))
	copy(snapshot, bills)
	s.saved = append(s.saved, snapshot)
	return s.saveErr
}

func newTestRegistry(t *testing.T, store BillStore) *Registry {
	t.Helper()
	return NewRegistry(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)), store)
}

func TestAddGeneratesIDAndCreatedAt(t *testing.T) {
	store := &fakeStore{}
	r := newTestRegistry(t, store)

	bill := r.Add(context.Background(), domain.ActiveBill{TableID: "t7"})

	assert.NotEmpty(t, bill.ID)
	assert.False(t, bill.CreatedAt.IsZero())
	require.Len(t, store.saved, 1, "every mutation writes through")

	got, err := r.GetByTable("t7")
	require.NoError(t, err)
	assert.Equal(t, bill, got)
}

func TestAddKeepsCallerIDAndTimestamp(t *testing.T) {
	r := newTestRegistry(t, &fakeStore{})

	seed := domain.ActiveBill{
		ID:        "bill-1",
		TableID:   "t1",
		CreatedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}

	stored := r.Add(context.Background(), seed)
	assert.Equal(t, seed, stored)
}

func TestUpdateReplacesWholesale(t *testing.T) {
	store := &fakeStore{}
	r := newTestRegistry(t, store)

	bill := r.Add(context.Background(), domain.ActiveBill{TableID: "t2"})
	bill.LineItems = []domain.LineItem{{ID: "p1", Name: "Tea", Price: 5000, Quantity: 2}}
	bill.Note = "no sugar"

	updated, err := r.Update(context.Background(), bill)
	require.NoError(t, err)
	assert.Equal(t, bill, updated)

	got, err := r.GetByTable("t2")
	require.NoError(t, err)
	assert.Equal(t, bill, got)
	assert.Len(t, r.List(), 1, "update never duplicates an entry")
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	store := &fakeStore{}
	r := newTestRegistry(t, store)
	r.Add(context.Background(), domain.ActiveBill{TableID: "t3"})
	writes := len(store.saved)

	_, err := r.Update(context.Background(), domain.ActiveBill{ID: "nope", TableID: "t9"})

	assert.ErrorIs(t, err, ErrBillNotFound)
	assert.Len(t, r.List(), 1)
	assert.Len(t, store.saved, writes, "a rejected update does not persist")
}

func TestRemoveByTable(t *testing.T) {
	r := newTestRegistry(t, &fakeStore{})
	r.Add(context.Background(), domain.ActiveBill{TableID: "t7"})

	r.RemoveByTable(context.Background(), "t7")

	_, err := r.GetByTable("t7")
	assert.ErrorIs(t, err, ErrBillNotFound)
	assert.Empty(t, r.List())
}

func TestCorruptStoreFallsBackToEmpty(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("decode: unexpected end of JSON input")}
	r := newTestRegistry(t, store)

	assert.Empty(t, r.List())

	// Still usable after the fallback.
	r.Add(context.Background(), domain.ActiveBill{TableID: "t1"})
	assert.Len(t, r.List(), 1)
}

func TestPersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	r := newTestRegistry(t, store)

	bill := r.Add(context.Background(), domain.ActiveBill{TableID: "t4"})

	got, err := r.GetByTable("t4")
	require.NoError(t, err)
	assert.Equal(t, bill, got)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	r := newTestRegistry(t, &fakeStore{})
	r.Add(context.Background(), domain.ActiveBill{TableID: "t1"})
	r.Add(context.Background(), domain.ActiveBill{TableID: "t2"})
	r.Add(context.Background(), domain.ActiveBill{TableID: "t3"})

	tables := []string{}
	for _, b := range r.List() {
		tables = append(tables, b.TableID)
	}
	assert.Equal(t, []string{"t1", "t2", "t3"}, tables)
}
