package cart

import (
	"slices"

	"storefront/internal/domain/entity"
)

// Engine applies operations and derives the order summary.
type Engine struct {
	pricing Pricing
}

// NewEngine builds an engine with the given pricing rules.
func NewEngine(pricing Pricing) *Engine {
	return &Engine{pricing: pricing}
}

// Empty returns the initial state: no lines, closed panel, zero summary.
func (e *Engine) Empty() entity.CartState {
	return entity.CartState{
		Lines:   []entity.CartLineItem{},
		Summary: e.pricing.Summarize(nil),
	}
}

// Apply returns the state after op. The input state is never modified.
func (e *Engine) Apply(state entity.CartState, op Operation) entity.CartState {
	next := entity.CartState{
		Lines: slices.Clone(state.Lines),
		Open:  state.Open,
	}
	if next.Lines == nil {
		next.Lines = []entity.CartLineItem{}
	}

	switch o := op.(type) {
	case AddLine:
		next.Lines = addLine(next.Lines, o)
	case RemoveLine:
		next.Lines = removeLine(next.Lines, o.LineID)
	case SetQuantity:
		next.Lines = setQuantity(next.Lines, o)
	case Clear:
		next.Lines = []entity.CartLineItem{}
	case ToggleVisibility:
		next.Open = !next.Open
	case Load:
		next.Lines = sanitize(o.Lines)
	}

	next.Summary = e.pricing.Summarize(next.Lines)

	return next
}

func addLine(lines []entity.CartLineItem, o AddLine) []entity.CartLineItem {
	if o.Quantity < 1 {
		return lines
	}

	id := entity.LineID(o.Product.ID, o.Size, o.Color)
	for i := range lines {
		if lines[i].ID == id {
			lines[i].Quantity += o.Quantity

			return lines
		}
	}

	return append(lines, entity.CartLineItem{
		ID:       id,
		Product:  o.Product,
		Quantity: o.Quantity,
		Size:     o.Size,
		Color:    o.Color,
	})
}

func removeLine(lines []entity.CartLineItem, lineID string) []entity.CartLineItem {
	return slices.DeleteFunc(lines, func(l entity.CartLineItem) bool {
		return l.ID == lineID
	})
}

func setQuantity(lines []entity.CartLineItem, o SetQuantity) []entity.CartLineItem {
	if o.Quantity <= 0 {
		return removeLine(lines, o.LineID)
	}

	for i := range lines {
		if lines[i].ID == o.LineID {
			lines[i].Quantity = o.Quantity
		}
	}

	return lines
}

// sanitize drops restored lines that break the line invariants and merges duplicate keys.
func sanitize(restored []entity.CartLineItem) []entity.CartLineItem {
	lines := make([]entity.CartLineItem, 0, len(restored))
	for _, l := range restored {
		if l.Product.ID == "" || l.Quantity < 1 {
			continue
		}
		lines = addLine(lines, AddLine{Product: l.Product, Size: l.Size, Color: l.Color, Quantity: l.Quantity})
	}

	return lines
}
