package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogTestEcho(t *testing.T) (*mockUC.MockCatalogUsecase, func(method, target string) (int, envelope, []byte)) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: testLogger})

	e := newTestEcho()
	e.GET("/api/v1/products", h.ListProducts)
	e.GET("/api/v1/products/:id", h.GetProduct)
	e.GET("/api/v1/products/:id/qr", h.ProductQR)
	e.GET("/api/v1/blog", h.ListPosts)

	return catalogUC, func(method, target string) (int, envelope, []byte) {
		rec, env := doRequest(t, e, method, target, "")

		return rec.Code, env, rec.Body.Bytes()
	}
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	t.Run("parses the filter query", func(t *testing.T) {
		catalogUC, do := newCatalogTestEcho(t)

		minPrice := decimal.RequireFromString("20")
		maxPrice := decimal.RequireFromString("99.50")
		catalogUC.EXPECT().ListProducts(mock.Anything, entity.FilterState{
			Category: "Women",
			Query:    "linen",
			MinPrice: &minPrice,
			MaxPrice: &maxPrice,
			Colors:   []string{"Black", "White", "Beige"},
			Sizes:    []string{"M"},
			Sort:     entity.SortPriceLow,
		}).Return([]entity.Product{{ID: "1", Name: "Linen Shirt"}})

		code, env, _ := do(http.MethodGet, "/api/v1/products?category=Women&q=linen&minPrice=20&maxPrice=99.50&colors=Black,White&colors=Beige&sizes=M&sort=price-low")

		require.Equal(t, http.StatusOK, code)
		products := decodeData[[]entity.Product](t, env)
		require.Len(t, products, 1)
		assert.Equal(t, "Linen Shirt", products[0].Name)
	})

	t.Run("invalid price", func(t *testing.T) {
		_, do := newCatalogTestEcho(t)

		code, env, _ := do(http.MethodGet, "/api/v1/products?minPrice=cheap")

		assert.Equal(t, http.StatusBadRequest, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "minPrice must be a number", env.Error.Details)
	})
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		catalogUC, do := newCatalogTestEcho(t)
		catalogUC.EXPECT().GetProduct(mock.Anything, "7").Return(&usecase.ProductDetail{
			Product:         entity.Product{ID: "7", Name: "Wool Coat"},
			DiscountPercent: 25,
			MaxQuantity:     3,
		}, nil)

		code, env, _ := do(http.MethodGet, "/api/v1/products/7")

		require.Equal(t, http.StatusOK, code)
		detail := decodeData[productDetailResponse](t, env)
		assert.Equal(t, "Wool Coat", detail.Product.Name)
		assert.Equal(t, 25, detail.DiscountPercent)
		assert.Equal(t, 3, detail.MaxQuantity)
		assert.Equal(t, testSessionID, env.Meta.SessionID)
	})

	t.Run("not found", func(t *testing.T) {
		catalogUC, do := newCatalogTestEcho(t)
		catalogUC.EXPECT().GetProduct(mock.Anything, "missing").Return(nil, domainerrors.ErrProductNotFound.WrapMessage("missing"))

		code, env, _ := do(http.MethodGet, "/api/v1/products/missing")

		assert.Equal(t, http.StatusNotFound, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)
	})
}

func TestCatalogHandler_ProductQR(t *testing.T) {
	catalogUC, do := newCatalogTestEcho(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	catalogUC.EXPECT().ProductQR(mock.Anything, "7").Return(png, nil)

	code, _, body := do(http.MethodGet, "/api/v1/products/7/qr")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, png, body)
}

func TestCatalogHandler_ListPosts(t *testing.T) {
	catalogUC, do := newCatalogTestEcho(t)
	catalogUC.EXPECT().ListPosts(mock.Anything, "style", "Fashion").Return([]entity.BlogPost{{ID: "1", Title: "Style Guide"}})

	code, env, _ := do(http.MethodGet, "/api/v1/blog?q=style&category=Fashion")

	require.Equal(t, http.StatusOK, code)
	posts := decodeData[[]entity.BlogPost](t, env)
	require.Len(t, posts, 1)
	assert.Equal(t, "Style Guide", posts[0].Title)
}
