package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CartLineItem is one distinct (product, size, color) selection.
// Quantity is always >= 1; a line that would drop to zero is removed instead.
type CartLineItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"` // Snapshot taken when the line was added.
	Quantity int     `json:"quantity"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
}

// LineID derives the line identifier from its uniqueness key.
func LineID(productID, size, color string) string {
	return strings.Join([]string{productID, size, color}, "-")
}

// LineTotal is unit price times quantity.
func (l *CartLineItem) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderSummary holds the totals derived from the cart lines. It is never stored on its own.
type OrderSummary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// CartState is the full cart as seen by the presentation layer.
type CartState struct {
	Lines   []CartLineItem `json:"items"`
	Open    bool           `json:"isOpen"`
	Summary OrderSummary   `json:"orderSummary"`
}

// TotalItemCount sums quantities over all lines.
func (s *CartState) TotalItemCount() int {
	total := 0
	for i := range s.Lines {
		total += s.Lines[i].Quantity
	}

	return total
}

// FindLine returns the index of the line with the given id, or -1.
func (s *CartState) FindLine(lineID string) int {
	for i := range s.Lines {
		if s.Lines[i].ID == lineID {
			return i
		}
	}

	return -1
}
