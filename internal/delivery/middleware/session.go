package middleware

import (
	"log/slog"
	"regexp"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// SessionMiddleware resolves the storefront session from the X-Session-Id header.
// A missing or malformed header starts a new session; the ID is always echoed back.
type SessionMiddleware struct {
	logger *slog.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		logger: logger,
	}
}

// Process must run after the request ID middleware so the session joins the request logger.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := c.Request().Header.Get(constants.HeaderXSessionID)
		if !ValidSessionID(sessionID) {
			sessionID = uuid.New().String()
		}

		deliverycontext.SetSessionID(c, sessionID)
		c.Response().Header().Set(constants.HeaderXSessionID, sessionID)

		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("session_id", sessionID))
		ctx = deliverycontext.WithSessionID(ctx, sessionID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// ValidSessionID reports whether id can be used as a storage key segment.
func ValidSessionID(id string) bool {
	return sessionIDPattern.MatchString(id)
}
