package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// FulfilmentUsecase consumes order events on the worker side.
type FulfilmentUsecase interface {
	// RecordOrder stores the order once; redelivered events are acknowledged without a second write.
	RecordOrder(ctx context.Context, event *service.OrderPlacedEvent) error
}
