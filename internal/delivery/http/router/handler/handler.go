// Package handler contains the HTTP handlers for the marketplace API.
package handler

import (
	"net/http"

	"mutualaid/internal/delivery/http/response"
	domainerrors "mutualaid/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// getUserID extracts the caller's user ID placed by the identity middleware.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "MISSING_IDENTITY", "Caller identity missing")
	}

	return userID, nil
}

// parseIDParam parses a UUID path parameter.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_ID", "Path parameter "+name+" is not a valid UUID")
	}

	return id, nil
}

// handleAppError maps domain errors onto the response envelope; anything else
// propagates to the error middleware.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
