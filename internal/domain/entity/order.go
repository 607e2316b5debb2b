package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShippingContact is the non-payment part of the checkout form.
type ShippingContact struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// Order is the confirmation produced by a simulated checkout.
// ID identifies the order; Number is a short display form derived from it.
type Order struct {
	ID       uuid.UUID       `json:"id"`
	Number   string          `json:"number"`
	Email    string          `json:"email"`
	Lines    []CartLineItem  `json:"items"`
	Summary  OrderSummary    `json:"order_summary"`
	Contact  ShippingContact `json:"contact"`
	PlacedAt time.Time       `json:"placed_at"`
}
