package middleware

import (
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const contextKeyAccountID = "accountID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the account ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Refresh tokens cannot call the API
		if claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "INVALID_TOKEN", "Access token required")
		}

		c.Set(contextKeyAccountID, claims.AccountID)

		return next(c)
	}
}

// GetAccountID returns the account set by Authenticate.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	accountID, ok := c.Get(contextKeyAccountID).(uuid.UUID)

	return accountID, ok && accountID != uuid.Nil
}
