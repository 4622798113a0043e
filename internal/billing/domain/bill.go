package domain

import "time"

// LineItem is one product entry on a bill. Price is in minor units and
// snapshotted from the catalog when the line is added, so later catalog
// changes never drift an open order.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// ActiveBill is an in-progress, unsettled order for one table.
type ActiveBill struct {
	ID         string     `json:"id"`
	TableID    string     `json:"tableId"`
	LineItems  []LineItem `json:"lineItems"`
	Note       string     `json:"note,omitempty"`
	GuestCount int        `json:"guestCount,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (b ActiveBill) Total() int64 {
	return CartTotal(b.LineItems)
}
