package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/catalog"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase/impl"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// Money is rendered as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewNewsletterRepository,
			postgres.NewTransactionManager,
			storage.NewKeyValueStore,
			catalog.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
			newCartEngine,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService("", 256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newCartEngine builds the cart engine from the pricing section
func newCartEngine(cfg *config.Config) (*cart.Engine, error) {
	pricing, err := cart.ParsePricing(
		cfg.Pricing.FreeShippingThreshold,
		cfg.Pricing.ShippingFee,
		cfg.Pricing.TaxRate,
	)
	if err != nil {
		return nil, err
	}

	return cart.NewEngine(pricing), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.ProvideSessionRegistry,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewPreferenceService,
			impl.NewSessionService,
			impl.NewCheckoutService,
			impl.NewNewsletterService,
			impl.NewAccountService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewSessionHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewNewsletterHandler,
			handler.NewPreferenceHandler,
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
