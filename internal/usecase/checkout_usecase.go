package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutInput mirrors the checkout form. Card fields are validated and then dropped.
type CheckoutInput struct {
	Email      string
	Contact    entity.ShippingContact
	CardNumber string
	ExpiryDate string
	CVV        string
	NameOnCard string
	SaveInfo   bool
	Newsletter bool
}

// CheckoutUsecase turns a session's cart into an order confirmation.
type CheckoutUsecase interface {
	PlaceOrder(ctx context.Context, sessionID string, input CheckoutInput) (*entity.Order, error)
}
