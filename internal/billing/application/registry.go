package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tableside/tableside/internal/billing/domain"
)

var ErrBillNotFound = errors.New("active bill not found")

// Registry owns the in-memory set of active bills and is the only writer
// of the durable blob. Every mutation writes the whole set back through
// the store before returning.
type Registry struct {
	log   *slog.Logger
	store BillStore

	mu    sync.Mutex
	bills []domain.ActiveBill
}

// NewRegistry loads the stored bills once. An unreadable blob is logged
// and discarded; startup never fails on corrupt state.
func NewRegistry(ctx context.Context, log *slog.Logger, store BillStore) *Registry {
	bills, err := store.Load(ctx)
	if err != nil {
		log.Warn("stored bills unreadable, starting empty", "err", err)
		bills = nil
	}
	return &Registry{log: log, store: store, bills: bills}
}

// Add stores a new bill, generating its id and createdAt when absent,
// and returns the stored value. Duplicate table ids are not rejected
// here; callers that want one bill per table check GetByTable first.
func (r *Registry) Add(ctx context.Context, bill domain.ActiveBill) domain.ActiveBill {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bill.ID == "" {
		bill.ID = uuid.NewString()
	}
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now().UTC()
	}
	r.bills = append(r.bills, bill)
	r.persist(ctx)
	return bill
}

// Update replaces the stored bill with the same id wholesale. When no
// such bill exists the registry is left untouched and ErrBillNotFound is
// returned; Add is the only way to create entries.
func (r *Registry) Update(ctx context.Context, bill domain.ActiveBill) (domain.ActiveBill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bills {
		if r.bills[i].ID == bill.ID {
			r.bills[i] = bill
			r.persist(ctx)
			return bill, nil
		}
	}
	return domain.ActiveBill{}, ErrBillNotFound
}

// RemoveByTable deletes every bill for the table. Expected zero or one.
func (r *Registry) RemoveByTable(ctx context.Context, tableID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.bills[:0]
	for _, b := range r.bills {
		if b.TableID != tableID {
			kept = append(kept, b)
		}
	}
	r.bills = kept
	r.persist(ctx)
}

// GetByTable returns the first bill for the table, or ErrBillNotFound.
func (r *Registry) GetByTable(tableID string) (domain.ActiveBill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bills {
		if b.TableID == tableID {
			return b, nil
		}
	}
	return domain.ActiveBill{}, ErrBillNotFound
}

// List returns all active bills in insertion order.
func (r *Registry) List() []domain.ActiveBill {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.ActiveBill, len(r.bills))
	copy(out, r.bills)
	return out
}

// persist is best effort: on storage failure the in-memory state stays
// authoritative for the rest of the session. Callers hold r.mu.
func (r *Registry) persist(ctx context.Context) {
	if err := r.store.Save(ctx, r.bills); err != nil {
		r.log.Warn("persist failed, keeping in-memory state", "err", err)
	}
}
