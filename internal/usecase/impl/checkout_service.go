package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const orderNumberPrefix = "AX-"

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	registry  *SessionRegistry
	publisher service.EventPublisher
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// CheckoutServiceParams defines the dependencies for the checkout service
type CheckoutServiceParams struct {
	fx.In

	Registry  *SessionRegistry
	Publisher service.EventPublisher
	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		registry:  params.Registry,
		publisher: params.Publisher,
		txManager: params.TxManager,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder turns the session's cart into an order, publishes it and clears the cart.
// The cart is kept when the event cannot be published. Card fields never leave this function.
func (srv *checkoutService) PlaceOrder(ctx context.Context, sessionID string, input usecase.CheckoutInput) (*entity.Order, error) {
	var order *entity.Order

	_, err := srv.registry.Update(ctx, sessionID, func(state entity.CartState) (cart.Operation, error) {
		if len(state.Lines) == 0 {
			return nil, domainerrors.ErrCartEmpty
		}

		order = srv.newOrder(state, input)

		event := &service.OrderPlacedEvent{
			RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
			OrderID:     order.ID.String(),
			OrderNumber: order.Number,
			Email:       order.Email,
			ItemCount:   state.TotalItemCount(),
			Total:       order.Summary.Total.StringFixed(2),
			Country:     order.Contact.Country,
			PlacedAt:    order.PlacedAt,
		}
		if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
			srv.log(ctx).Error("Failed to publish order event",
				slog.String("order_number", order.Number),
				slog.Any("error", err),
			)

			return nil, domainerrors.ErrEventPublishFailed.WrapMessage(err.Error())
		}

		if input.Newsletter {
			srv.subscribe(ctx, order)
		}

		return cart.Clear{}, nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_number", order.Number),
		slog.Int("lines", len(order.Lines)),
		slog.String("total", order.Summary.Total.StringFixed(2)),
	)

	return order, nil
}

func (srv *checkoutService) newOrder(state entity.CartState, input usecase.CheckoutInput) *entity.Order {
	contact := input.Contact
	if strings.TrimSpace(contact.Country) == "" {
		contact.Country = entity.DefaultNewsletterCountry
	}

	id := uuid.New()

	return &entity.Order{
		ID:       id,
		Number:   orderNumberPrefix + strings.ToUpper(id.String()[:8]),
		Email:    normalizeEmail(input.Email),
		Lines:    slices.Clone(state.Lines),
		Summary:  state.Summary,
		Contact:  contact,
		PlacedAt: srv.now().UTC(),
	}
}

// subscribe joins the order email to the mailing list. Failures never fail the order.
func (srv *checkoutService) subscribe(ctx context.Context, order *entity.Order) {
	sub, err := newSubscription(usecase.SubscribeInput{
		Email:   order.Email,
		ZipCode: order.Contact.ZipCode,
		Country: order.Contact.Country,
		Consent: true,
	})
	if err != nil {
		// Shipping countries are wider than the newsletter list.
		sub, err = newSubscription(usecase.SubscribeInput{Email: order.Email, Country: "Other", Consent: true})
	}
	if err != nil {
		srv.log(ctx).Warn("Skipping checkout newsletter signup", slog.Any("error", err))

		return
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return subscribe(ctx, repoFactory.NewsletterRepo(), sub)
	})
	if err != nil && !errors.Is(err, domainerrors.ErrAlreadySubscribed) {
		srv.log(ctx).Warn("Checkout newsletter signup failed",
			slog.String("order_number", order.Number),
			slog.Any("error", err),
		)
	}
}
