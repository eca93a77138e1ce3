package handler

import (
	"log/slog"
	"net/http"

	"mutualaid/internal/delivery/http/response"
	"mutualaid/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user profile handlers
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetMyProfile handles retrieving the caller's own profile
func (h *UserHandler) GetMyProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// GetProfile handles retrieving another user's public profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}
