package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler places orders
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CheckoutRequest is the checkout form. Country defaults to United States.
type CheckoutRequest struct {
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Address    string `json:"address" validate:"required"`
	Apartment  string `json:"apartment"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	ZipCode    string `json:"zipCode" validate:"required"`
	Country    string `json:"country"`
	Phone      string `json:"phone" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required,credit_card"`
	ExpiryDate string `json:"expiryDate" validate:"required,expiry"`
	CVV        string `json:"cvv" validate:"required,numeric,min=3,max=4"`
	NameOnCard string `json:"nameOnCard" validate:"required"`
	SaveInfo   bool   `json:"saveInfo"`
	Newsletter bool   `json:"newsletter"`
}

// PlaceOrder submits the session's cart
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.checkoutUC.PlaceOrder(c.Request().Context(), deliverycontext.GetSessionID(c), usecase.CheckoutInput{
		Email: req.Email,
		Contact: entity.ShippingContact{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Address:   req.Address,
			Apartment: req.Apartment,
			City:      req.City,
			State:     req.State,
			ZipCode:   req.ZipCode,
			Country:   req.Country,
			Phone:     req.Phone,
		},
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		CVV:        req.CVV,
		NameOnCard: req.NameOnCard,
		SaveInfo:   req.SaveInfo,
		Newsletter: req.Newsletter,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(order))
}
