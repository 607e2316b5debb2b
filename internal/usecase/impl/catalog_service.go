package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalog repository.CatalogRepository
	qrcode  service.QRCodeService
	logger  *slog.Logger

	facets entity.Facets
}

// CatalogServiceParams defines the dependencies for the catalog service
type CatalogServiceParams struct {
	fx.In

	Catalog repository.CatalogRepository
	QRCode  service.QRCodeService
	Logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	products := params.Catalog.Products()

	return &catalogService{
		catalog: params.Catalog,
		qrcode:  params.QRCode,
		logger:  params.Logger,
		facets:  catalog.Facets(products),
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts runs the filter and sort pipeline over the full catalog.
func (srv *catalogService) ListProducts(ctx context.Context, filter entity.FilterState) []entity.Product {
	result := catalog.Filter(srv.catalog.Products(), filter)
	srv.log(ctx).Debug("Filtered catalog",
		slog.String("category", filter.Category),
		slog.String("sort", string(filter.Sort)),
		slog.Int("results", len(result)),
	)

	return result
}

func (srv *catalogService) Facets(_ context.Context) entity.Facets {
	return srv.facets
}

func (srv *catalogService) Featured(_ context.Context) []entity.Product {
	return catalog.Featured(srv.catalog.Products(), catalog.HomeFeaturedCount)
}

func (srv *catalogService) NewArrivals(_ context.Context) []entity.Product {
	return catalog.NewArrivals(srv.catalog.Products(), catalog.HomeNewCount)
}

// GetProduct returns a product with the values the quick view derives from it.
func (srv *catalogService) GetProduct(_ context.Context, productID string) (*usecase.ProductDetail, error) {
	product, ok := catalog.FindProduct(srv.catalog.Products(), productID)
	if !ok {
		return nil, domainerrors.ErrProductNotFound.WrapMessage(productID)
	}

	return &usecase.ProductDetail{
		Product:         product,
		DiscountPercent: product.DiscountPercent(),
		MaxQuantity:     product.MaxOrderQuantity(),
	}, nil
}

// ProductQR renders the share code for a catalog product.
func (srv *catalogService) ProductQR(ctx context.Context, productID string) ([]byte, error) {
	if _, ok := catalog.FindProduct(srv.catalog.Products(), productID); !ok {
		return nil, domainerrors.ErrProductNotFound.WrapMessage(productID)
	}

	png, err := srv.qrcode.GenerateProductQR(productID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate product QR code",
			slog.String("product_id", productID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

func (srv *catalogService) ListPosts(_ context.Context, query, category string) []entity.BlogPost {
	return catalog.FilterPosts(srv.catalog.Posts(), query, category)
}

func (srv *catalogService) BlogCategories(_ context.Context) []string {
	return slices.Clone(catalog.BlogCategories)
}
