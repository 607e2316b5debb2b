package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartTestEcho(t *testing.T) (*mockUC.MockCartUsecase, *echo.Echo) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: testLogger})

	e := newTestEcho()
	e.GET("/api/v1/cart", h.Get)
	e.DELETE("/api/v1/cart", h.Clear)
	e.POST("/api/v1/cart/lines", h.AddLine)
	e.PUT("/api/v1/cart/lines/:lineId", h.SetQuantity)
	e.DELETE("/api/v1/cart/lines/:lineId", h.RemoveLine)
	e.POST("/api/v1/cart/toggle", h.ToggleVisibility)

	return cartUC, e
}

func cartViewWith(quantity int) *usecase.CartView {
	price := decimal.RequireFromString("29.99")
	subtotal := price.Mul(decimal.NewFromInt(int64(quantity)))
	tax := subtotal.Mul(decimal.RequireFromString("0.08"))
	shipping := decimal.NewFromInt(10)

	return usecase.NewCartView(entity.CartState{
		Lines: []entity.CartLineItem{{
			ID:       "1-M-Black",
			Product:  entity.Product{ID: "1", Name: "Tee", Price: price},
			Quantity: quantity,
			Size:     "M",
			Color:    "Black",
		}},
		Summary: entity.OrderSummary{
			Subtotal: subtotal,
			Shipping: shipping,
			Tax:      tax,
			Total:    subtotal.Add(shipping).Add(tax),
		},
	})
}

func TestCartHandler_AddLine(t *testing.T) {
	t.Run("defaults quantity to one", func(t *testing.T) {
		cartUC, e := newCartTestEcho(t)
		cartUC.EXPECT().AddLine(mock.Anything, testSessionID, usecase.AddLineInput{
			ProductID: "1", Size: "M", Color: "Black", Quantity: 1,
		}).Return(cartViewWith(1), nil)

		rec, env := doRequest(t, e, http.MethodPost, "/api/v1/cart/lines", `{"productId":"1","size":"M","color":"Black"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		cart := decodeData[cartResponse](t, env)
		assert.Equal(t, 1, cart.TotalItems)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, "1-M-Black", cart.Items[0].ID)
		// 29.99 * 0.08 = 2.3992
		assert.Equal(t, "2.4", cart.OrderSummary.Tax.String())
		assert.Equal(t, "42.39", cart.OrderSummary.Total.String())
	})

	t.Run("explicit quantity", func(t *testing.T) {
		cartUC, e := newCartTestEcho(t)
		cartUC.EXPECT().AddLine(mock.Anything, testSessionID, usecase.AddLineInput{
			ProductID: "1", Size: "M", Color: "Black", Quantity: 3,
		}).Return(cartViewWith(3), nil)

		rec, env := doRequest(t, e, http.MethodPost, "/api/v1/cart/lines", `{"productId":"1","size":"M","color":"Black","quantity":3}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3, decodeData[cartResponse](t, env).TotalItems)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, e := newCartTestEcho(t)

		rec, env := doRequest(t, e, http.MethodPost, "/api/v1/cart/lines", `{"productId":"1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, e := newCartTestEcho(t)

		rec, env := doRequest(t, e, http.MethodPost, "/api/v1/cart/lines", `{"productId":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("usecase rejection", func(t *testing.T) {
		cartUC, e := newCartTestEcho(t)
		cartUC.EXPECT().AddLine(mock.Anything, testSessionID, mock.Anything).
			Return(nil, domainerrors.ErrInvalidQuantity)

		rec, env := doRequest(t, e, http.MethodPost, "/api/v1/cart/lines", `{"productId":"1","size":"M","color":"Black","quantity":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_QUANTITY", env.Error.Code)
	})
}

func TestCartHandler_SetQuantity(t *testing.T) {
	t.Run("updates the line", func(t *testing.T) {
		cartUC, e := newCartTestEcho(t)
		cartUC.EXPECT().SetQuantity(mock.Anything, testSessionID, "1-M-Black", 0).
			Return(usecase.NewCartView(entity.CartState{}), nil)

		rec, env := doRequest(t, e, http.MethodPut, "/api/v1/cart/lines/1-M-Black", `{"quantity":0}`)

		require.Equal(t, http.StatusOK, rec.Code)
		cart := decodeData[cartResponse](t, env)
		assert.NotNil(t, cart.Items)
		assert.Empty(t, cart.Items)
		assert.True(t, cart.OrderSummary.Total.IsZero())
	})

	t.Run("quantity is required", func(t *testing.T) {
		_, e := newCartTestEcho(t)

		rec, _ := doRequest(t, e, http.MethodPut, "/api/v1/cart/lines/1-M-Black", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCartHandler_Mutations(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		setup  func(cartUC *mockUC.MockCartUsecase)
	}{
		{
			name:   "get",
			method: http.MethodGet,
			target: "/api/v1/cart",
			setup: func(cartUC *mockUC.MockCartUsecase) {
				cartUC.EXPECT().Get(mock.Anything, testSessionID).Return(cartViewWith(2), nil)
			},
		},
		{
			name:   "remove line",
			method: http.MethodDelete,
			target: "/api/v1/cart/lines/1-M-Black",
			setup: func(cartUC *mockUC.MockCartUsecase) {
				cartUC.EXPECT().RemoveLine(mock.Anything, testSessionID, "1-M-Black").Return(cartViewWith(2), nil)
			},
		},
		{
			name:   "clear",
			method: http.MethodDelete,
			target: "/api/v1/cart",
			setup: func(cartUC *mockUC.MockCartUsecase) {
				cartUC.EXPECT().Clear(mock.Anything, testSessionID).Return(cartViewWith(2), nil)
			},
		},
		{
			name:   "toggle",
			method: http.MethodPost,
			target: "/api/v1/cart/toggle",
			setup: func(cartUC *mockUC.MockCartUsecase) {
				cartUC.EXPECT().ToggleVisibility(mock.Anything, testSessionID).Return(cartViewWith(2), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cartUC, e := newCartTestEcho(t)
			tt.setup(cartUC)

			rec, env := doRequest(t, e, tt.method, tt.target, "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, 2, decodeData[cartResponse](t, env).TotalItems)
		})
	}
}
