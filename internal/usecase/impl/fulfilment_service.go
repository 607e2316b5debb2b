package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const orderKeyPrefix = "order:"

// fulfilmentService implements the FulfilmentUsecase interface.
type fulfilmentService struct {
	store  repository.KeyValueStore
	prefix string
	logger *slog.Logger
}

// FulfilmentServiceParams defines the dependencies for the fulfilment service
type FulfilmentServiceParams struct {
	fx.In

	Config *config.Config
	Store  repository.KeyValueStore
	Logger *slog.Logger
}

// NewFulfilmentService is the constructor for fulfilmentService.
func NewFulfilmentService(params FulfilmentServiceParams) usecase.FulfilmentUsecase {
	return &fulfilmentService{
		store:  params.Store,
		prefix: params.Config.Storage.KeyPrefix,
		logger: params.Logger,
	}
}

func (srv *fulfilmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordOrder stores the event once per order ID. Display numbers may repeat,
// so they are never used as the key.
func (srv *fulfilmentService) RecordOrder(ctx context.Context, event *service.OrderPlacedEvent) error {
	if event == nil {
		return domainerrors.ErrValidationFailed.WithDetails("order event is required")
	}

	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("order id must be a uuid")
	}

	key := srv.prefix + orderKeyPrefix + orderID.String()

	_, err = srv.store.Get(ctx, key)
	if err == nil {
		srv.log(ctx).Info("Order already recorded, skipping",
			slog.String("order_id", event.OrderID),
			slog.String("order_number", event.OrderNumber),
		)

		return nil
	}
	if !errors.Is(err, repository.ErrKeyNotFound) {
		return errors.Wrap(err, "failed to look up order")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode order")
	}

	if err := srv.store.Set(ctx, key, payload); err != nil {
		return errors.Wrap(err, "failed to record order")
	}

	srv.log(ctx).Info("Order recorded",
		slog.String("order_id", event.OrderID),
		slog.String("order_number", event.OrderNumber),
		slog.Int("item_count", event.ItemCount),
		slog.String("total", event.Total),
	)

	return nil
}
