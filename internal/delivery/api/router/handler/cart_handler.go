package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddLineRequest selects a product variant. Quantity defaults to 1.
type AddLineRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  *int   `json:"quantity"`
}

// SetQuantityRequest replaces a line quantity; zero or less removes the line.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// Get returns the session's cart
func (h *CartHandler) Get(c echo.Context) error {
	return h.respond(c)(h.cartUC.Get(c.Request().Context(), deliverycontext.GetSessionID(c)))
}

// AddLine adds a product variant to the cart
func (h *CartHandler) AddLine(c echo.Context) error {
	var req AddLineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart line input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	return h.respond(c)(h.cartUC.AddLine(c.Request().Context(), deliverycontext.GetSessionID(c), usecase.AddLineInput{
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  quantity,
	}))
}

// SetQuantity updates one line
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var req SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	return h.respond(c)(h.cartUC.SetQuantity(c.Request().Context(), deliverycontext.GetSessionID(c), c.Param("lineId"), *req.Quantity))
}

// RemoveLine deletes one line; unknown lines are ignored
func (h *CartHandler) RemoveLine(c echo.Context) error {
	return h.respond(c)(h.cartUC.RemoveLine(c.Request().Context(), deliverycontext.GetSessionID(c), c.Param("lineId")))
}

// Clear empties the cart
func (h *CartHandler) Clear(c echo.Context) error {
	return h.respond(c)(h.cartUC.Clear(c.Request().Context(), deliverycontext.GetSessionID(c)))
}

// ToggleVisibility opens or closes the cart panel
func (h *CartHandler) ToggleVisibility(c echo.Context) error {
	return h.respond(c)(h.cartUC.ToggleVisibility(c.Request().Context(), deliverycontext.GetSessionID(c)))
}

func (h *CartHandler) respond(c echo.Context) func(*usecase.CartView, error) error {
	return func(view *usecase.CartView, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, newCartResponse(view))
	}
}
