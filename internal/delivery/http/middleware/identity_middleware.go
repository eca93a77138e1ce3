package middleware

import (
	"log/slog"

	"mutualaid/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userIDHeader carries the authenticated caller's ID. Authentication itself
// happens upstream at the gateway; this service trusts the header it injects.
const userIDHeader = "X-User-Id"

// IdentityMiddleware extracts the caller identity set by the gateway.
type IdentityMiddleware struct {
	logger *slog.Logger
}

// NewIdentityMiddleware creates a new identity middleware
func NewIdentityMiddleware(logger *slog.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{
		logger: logger,
	}
}

// Authenticate reads the caller's user ID from the request header and stores
// it in the request context for handlers.
func (m *IdentityMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(userIDHeader)
		if raw == "" {
			return response.Unauthorized(c, "MISSING_IDENTITY", "Caller identity header missing")
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			return response.Unauthorized(c, "INVALID_IDENTITY", "Caller identity header is not a valid UUID")
		}

		c.Set("userID", userID)

		return next(c)
	}
}
