package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestValidSessionID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{id: "abc-123_XYZ", valid: true},
		{id: uuid.NewString(), valid: true},
		{id: strings.Repeat("a", 64), valid: true},
		{id: strings.Repeat("a", 65)},
		{id: ""},
		{id: "../etc/passwd"},
		{id: "has space"},
		{id: "cart:1"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidSessionID(tt.id))
		})
	}
}

func TestSessionMiddleware_Process(t *testing.T) {
	run := func(t *testing.T, header string) (*httptest.ResponseRecorder, string, string) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(constants.HeaderXSessionID, header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var fromEcho, fromCtx string
		handler := NewSessionMiddleware(testLogger).Process(func(c echo.Context) error {
			fromEcho = deliverycontext.GetSessionID(c)
			fromCtx = deliverycontext.GetSessionIDFromContext(c.Request().Context())

			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))

		return rec, fromEcho, fromCtx
	}

	t.Run("keeps a valid header", func(t *testing.T) {
		rec, fromEcho, fromCtx := run(t, "session-1")

		assert.Equal(t, "session-1", fromEcho)
		assert.Equal(t, "session-1", fromCtx)
		assert.Equal(t, "session-1", rec.Header().Get(constants.HeaderXSessionID))
	})

	t.Run("issues a new id when missing", func(t *testing.T) {
		rec, fromEcho, _ := run(t, "")

		_, err := uuid.Parse(fromEcho)
		require.NoError(t, err)
		assert.Equal(t, fromEcho, rec.Header().Get(constants.HeaderXSessionID))
	})

	t.Run("replaces a malformed id", func(t *testing.T) {
		_, fromEcho, _ := run(t, "../../secret")

		assert.NotEqual(t, "../../secret", fromEcho)
		assert.True(t, ValidSessionID(fromEcho))
	})
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	run := func(t *testing.T, header string) (string, string) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(deliverycontext.HeaderXRequestID, header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var fromCtx string
		handler := NewRequestIDMiddleware(testLogger).Process(func(c echo.Context) error {
			fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
			assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

			return nil
		})
		require.NoError(t, handler(c))

		return fromCtx, rec.Header().Get(deliverycontext.HeaderXRequestID)
	}

	t.Run("propagates the client id", func(t *testing.T) {
		fromCtx, echoed := run(t, "req-1")

		assert.Equal(t, "req-1", fromCtx)
		assert.Equal(t, "req-1", echoed)
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		fromCtx, echoed := run(t, strings.Repeat("x", maxRequestIDLength+1))

		assert.Len(t, fromCtx, 36)
		assert.Equal(t, fromCtx, echoed)
	})
}

func TestLoggerMiddleware_HandlesErrors(t *testing.T) {
	e := echo.New()
	var handled error
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		handled = err
		_ = c.NoContent(http.StatusTeapot)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	boom := echo.NewHTTPError(http.StatusTeapot, "boom")
	handler := NewLoggerMiddleware(testLogger, &config.Config{}).Handle(func(echo.Context) error {
		return boom
	})

	require.NoError(t, handler(c))
	assert.Equal(t, boom, handled)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
