package context

import (
	"context"

	"github.com/labstack/echo/v4"
)

// KeySessionID is the key for storing the storefront session ID.
const KeySessionID ContextKey = "session_id"

// GetSessionID extracts the session ID set by the session middleware.
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get(string(KeySessionID)).(string); ok {
		return id
	}

	return ""
}

// SetSessionID sets the session ID in echo.Context.
func SetSessionID(c echo.Context, sessionID string) {
	c.Set(string(KeySessionID), sessionID)
}

// GetSessionIDFromContext extracts the session ID from standard context.Context.
func GetSessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeySessionID).(string); ok {
		return id
	}

	return ""
}

// WithSessionID returns a new context with the session ID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, KeySessionID, sessionID)
}
