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

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	PreferenceUC usecase.PreferenceUsecase
	Logger       *slog.Logger
}

// PreferenceHandler serves theme and language settings
type PreferenceHandler struct {
	preferenceUC usecase.PreferenceUsecase
	logger       *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUC: params.PreferenceUC,
		logger:       params.Logger,
	}
}

// SetLanguageRequest selects a display language
type SetLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}

// Get returns the session's preferences and the language options
func (h *PreferenceHandler) Get(c echo.Context) error {
	return h.respond(c)(h.preferenceUC.Get(c.Request().Context(), deliverycontext.GetSessionID(c)))
}

// ToggleTheme switches between light and dark
func (h *PreferenceHandler) ToggleTheme(c echo.Context) error {
	return h.respond(c)(h.preferenceUC.ToggleTheme(c.Request().Context(), deliverycontext.GetSessionID(c)))
}

// SetLanguage stores the display language
func (h *PreferenceHandler) SetLanguage(c echo.Context) error {
	var req SetLanguageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid language input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	return h.respond(c)(h.preferenceUC.SetLanguage(c.Request().Context(), deliverycontext.GetSessionID(c), entity.Language(req.Language)))
}

func (h *PreferenceHandler) respond(c echo.Context) func(entity.Preferences, error) error {
	return func(prefs entity.Preferences, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, newPreferencesResponse(prefs))
	}
}
