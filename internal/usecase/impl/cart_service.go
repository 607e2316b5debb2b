package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/catalog"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	registry *SessionRegistry
	catalog  repository.CatalogRepository
	logger   *slog.Logger
}

// CartServiceParams defines the dependencies for the cart service
type CartServiceParams struct {
	fx.In

	Registry *SessionRegistry
	Catalog  repository.CatalogRepository
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		registry: params.Registry,
		catalog:  params.Catalog,
		logger:   params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) Get(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	state, _, err := srv.registry.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return usecase.NewCartView(state), nil
}

// AddLine validates the selection against the catalog before it reaches the engine.
func (srv *cartService) AddLine(ctx context.Context, sessionID string, input usecase.AddLineInput) (*usecase.CartView, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, ok := catalog.FindProduct(srv.catalog.Products(), input.ProductID)
	if !ok {
		return nil, domainerrors.ErrProductNotFound.WrapMessage(input.ProductID)
	}

	if !product.HasSize(input.Size) || !product.HasColor(input.Color) {
		return nil, domainerrors.ErrInvalidVariant.WithDetails(input.Size + "/" + input.Color)
	}

	state, err := srv.registry.Apply(ctx, sessionID, cart.AddLine{
		Product:  product,
		Size:     input.Size,
		Color:    input.Color,
		Quantity: input.Quantity,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Added to cart",
		slog.String("product_id", product.ID),
		slog.Int("quantity", input.Quantity),
		slog.Int("lines", len(state.Lines)),
	)

	return usecase.NewCartView(state), nil
}

// SetQuantity removes the line when quantity is not positive.
func (srv *cartService) SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*usecase.CartView, error) {
	return srv.apply(ctx, sessionID, cart.SetQuantity{LineID: lineID, Quantity: quantity})
}

func (srv *cartService) RemoveLine(ctx context.Context, sessionID, lineID string) (*usecase.CartView, error) {
	return srv.apply(ctx, sessionID, cart.RemoveLine{LineID: lineID})
}

func (srv *cartService) Clear(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	return srv.apply(ctx, sessionID, cart.Clear{})
}

func (srv *cartService) ToggleVisibility(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	return srv.apply(ctx, sessionID, cart.ToggleVisibility{})
}

func (srv *cartService) apply(ctx context.Context, sessionID string, op cart.Operation) (*usecase.CartView, error) {
	state, err := srv.registry.Apply(ctx, sessionID, op)
	if err != nil {
		return nil, err
	}

	return usecase.NewCartView(state), nil
}
