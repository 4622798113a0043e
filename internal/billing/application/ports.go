package application

import (
	"context"

	"github.com/tableside/tableside/internal/billing/domain"
)

// BillStore persists the full set of active bills as one blob. Load
// returns (nil, nil) when nothing has been stored yet; a non-nil error
// means the stored blob exists but could not be read back.
type BillStore interface {
	Load(ctx context.Context) ([]domain.ActiveBill, error)
	Save(ctx context.Context, bills []domain.ActiveBill) error
}
