package service

import (
	"context"
	"time"
)

// OrderPlacedEvent is published once per successful checkout. It never carries payment data.
type OrderPlacedEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Email       string    `json:"email"`
	ItemCount   int       `json:"item_count"`
	Total       string    `json:"total"`
	Country     string    `json:"country"`
	PlacedAt    time.Time `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order event for async fulfilment
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
