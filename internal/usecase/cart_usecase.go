package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddLineInput selects a product variant to add to the cart.
type AddLineInput struct {
	ProductID string
	Size      string
	Color     string
	Quantity  int
}

// CartView is the cart state returned after every cart operation.
type CartView struct {
	State      entity.CartState
	TotalItems int
}

// NewCartView derives the view from a state.
func NewCartView(state entity.CartState) *CartView {
	return &CartView{State: state, TotalItems: state.TotalItemCount()}
}

// CartUsecase applies cart operations to a session's cart.
type CartUsecase interface {
	Get(ctx context.Context, sessionID string) (*CartView, error)
	AddLine(ctx context.Context, sessionID string, input AddLineInput) (*CartView, error)
	SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*CartView, error)
	RemoveLine(ctx context.Context, sessionID, lineID string) (*CartView, error)
	Clear(ctx context.Context, sessionID string) (*CartView, error)
	ToggleVisibility(ctx context.Context, sessionID string) (*CartView, error)
}
