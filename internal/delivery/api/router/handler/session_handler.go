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

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes the lifetime of a storefront session
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Open returns the cart, newsletter prompt flag and preferences of the session
func (h *SessionHandler) Open(c echo.Context) error {
	view, err := h.sessionUC.Open(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionResponse{
		SessionID:        view.SessionID,
		Cart:             newCartResponse(view.Cart),
		NewsletterPrompt: view.NewsletterPrompt,
		Preferences:      view.Preferences,
	})
}

// Close cancels the pending newsletter prompt; the saved cart is kept
func (h *SessionHandler) Close(c echo.Context) error {
	if err := h.sessionUC.Close(c.Request().Context(), deliverycontext.GetSessionID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// DismissPrompt hides the newsletter prompt for the rest of the session
func (h *SessionHandler) DismissPrompt(c echo.Context) error {
	if err := h.sessionUC.DismissPrompt(c.Request().Context(), deliverycontext.GetSessionID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
