package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves products and blog posts
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts runs the filter pipeline: category, q, minPrice, maxPrice, colors, sizes, sort.
// colors and sizes accept repeated parameters or comma separated values.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	products := h.catalogUC.ListProducts(c.Request().Context(), filter)

	return response.Success(c, http.StatusOK, products)
}

// Facets lists the filter options present in the catalog
func (h *CatalogHandler) Facets(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.Facets(c.Request().Context()))
}

// Featured returns the home page featured products
func (h *CatalogHandler) Featured(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.Featured(c.Request().Context()))
}

// NewArrivals returns the home page new products
func (h *CatalogHandler) NewArrivals(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.NewArrivals(c.Request().Context()))
}

// GetProduct returns the quick view of one product
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	detail, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, productDetailResponse{
		Product:         detail.Product,
		DiscountPercent: detail.DiscountPercent,
		MaxQuantity:     detail.MaxQuantity,
	})
}

// ProductQR renders the product share code as PNG
func (h *CatalogHandler) ProductQR(c echo.Context) error {
	png, err := h.catalogUC.ProductQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListPosts filters blog posts by q and category
func (h *CatalogHandler) ListPosts(c echo.Context) error {
	posts := h.catalogUC.ListPosts(c.Request().Context(), c.QueryParam("q"), c.QueryParam("category"))

	return response.Success(c, http.StatusOK, posts)
}

// BlogCategories lists the blog filter categories
func (h *CatalogHandler) BlogCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.BlogCategories(c.Request().Context()))
}

func parseFilter(c echo.Context) (entity.FilterState, error) {
	filter := entity.FilterState{
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("q"),
		Colors:   listParam(c, "colors"),
		Sizes:    listParam(c, "sizes"),
		Sort:     entity.ParseSortKey(c.QueryParam("sort")),
	}

	var err error
	if filter.MinPrice, err = priceParam(c, "minPrice"); err != nil {
		return entity.FilterState{}, err
	}
	if filter.MaxPrice, err = priceParam(c, "maxPrice"); err != nil {
		return entity.FilterState{}, err
	}

	return filter, nil
}

func listParam(c echo.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryParams()[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}

	return out
}

func priceParam(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a number")
	}

	return &v, nil
}
