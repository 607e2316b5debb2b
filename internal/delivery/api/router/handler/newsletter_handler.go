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

// NewsletterHandlerParams holds dependencies for NewsletterHandler, injected by Fx.
type NewsletterHandlerParams struct {
	fx.In

	NewsletterUC usecase.NewsletterUsecase
	SessionUC    usecase.SessionUsecase
	Logger       *slog.Logger
}

// NewsletterHandler handles mailing list signups
type NewsletterHandler struct {
	newsletterUC usecase.NewsletterUsecase
	sessionUC    usecase.SessionUsecase
	logger       *slog.Logger
}

// NewNewsletterHandler is the constructor for NewsletterHandler
func NewNewsletterHandler(params NewsletterHandlerParams) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterUC: params.NewsletterUC,
		sessionUC:    params.SessionUC,
		logger:       params.Logger,
	}
}

// SubscribeRequest is the newsletter signup form
type SubscribeRequest struct {
	Email   string `json:"email" validate:"required,email"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
	Consent bool   `json:"consent"`
}

// Subscribe adds the email to the list and hides the session's prompt
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid newsletter input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	sub, err := h.newsletterUC.Subscribe(ctx, usecase.SubscribeInput{
		Email:   req.Email,
		ZipCode: req.ZipCode,
		Country: req.Country,
		Consent: req.Consent,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.sessionUC.DismissPrompt(ctx, deliverycontext.GetSessionID(c)); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to dismiss newsletter prompt", slog.Any("error", err))
	}

	return response.Success(c, http.StatusCreated, sub)
}
