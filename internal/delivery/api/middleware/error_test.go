package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "app error keeps details",
			err:         errors.WithStack(domainerrors.ErrInvalidVariant.WithDetails("XL/Green")),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_VARIANT",
			wantDetails: "XL/Green",
		},
		{
			name:       "wrapped app error",
			err:        domainerrors.ErrProductNotFound.WrapMessage("42"),
			wantStatus: http.StatusNotFound,
			wantCode:   "PRODUCT_NOT_FOUND",
		},
		{
			name:       "server side app error hides details",
			err:        domainerrors.ErrEventPublishFailed.WithDetails("topic missing"),
			wantStatus: http.StatusBadGateway,
			wantCode:   domainerrors.ErrEventPublishFailed.ErrorCode(),
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestErrorMiddleware_ValidationError(t *testing.T) {
	type request struct {
		Email string `json:"email" validate:"required,email"`
	}

	err := validator.New().Validate(&request{Email: "nope"})
	require.Error(t, err)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[{"field":"email","rule":"email"}]`, extractDetails(t, rec.Body.Bytes()))
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func extractDetails(t *testing.T, body []byte) string {
	var raw struct {
		Error struct {
			Details json.RawMessage `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &raw))

	return string(raw.Error.Details)
}
