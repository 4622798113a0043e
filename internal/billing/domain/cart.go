package domain

import (
	catalog "github.com/tableside/tableside/internal/catalog/domain"
)

// Cart operations are pure: they never mutate the input slice and always
// return a fresh one, so callers decide when to persist the result.

// AddToCart increments the line for p by one, or appends a new line with
// quantity 1 using the product's current name and price. An out-of-stock
// product leaves the cart unchanged.
func AddToCart(cart []LineItem, p catalog.Product) []LineItem {
	out := cloneCart(cart)
	if p.Stock <= 0 {
		return out
	}
	for i := range out {
		if out[i].ID == p.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, LineItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: 1,
	})
}

// UpdateQuantity sets the line's quantity exactly. A quantity of zero or
// less removes the line; a zero-quantity row is never kept.
func UpdateQuantity(cart []LineItem, itemID string, quantity int) []LineItem {
	if quantity <= 0 {
		return RemoveFromCart(cart, itemID)
	}
	out := cloneCart(cart)
	for i := range out {
		if out[i].ID == itemID {
			out[i].Quantity = quantity
		}
	}
	return out
}

// RemoveFromCart drops the line with the given id, if present.
func RemoveFromCart(cart []LineItem, itemID string) []LineItem {
	out := make([]LineItem, 0, len(cart))
	for _, li := range cart {
		if li.ID != itemID {
			out = append(out, li)
		}
	}
	return out
}

// CartTotal sums price times quantity over all lines.
func CartTotal(cart []LineItem) int64 {
	var total int64
	for _, li := range cart {
		total += int64(li.Quantity) * li.Price
	}
	return total
}

func cloneCart(cart []LineItem) []LineItem {
	out := make([]LineItem, len(cart))
	copy(out, cart)
	return out
}
