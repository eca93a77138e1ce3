package handler

import (
	"log/slog"
	"net/http"

	"mutualaid/internal/delivery/http/response"
	"mutualaid/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler holds dependencies for notification feed handlers
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetNotifications handles listing the caller's notifications
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	notifications, err := h.uc.GetUserNotifications(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// GetActionNeededNotifications handles listing unresolved action-required notifications
func (h *NotificationHandler) GetActionNeededNotifications(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	notifications, err := h.uc.GetActionNeededNotifications(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// MarkNotificationRead handles marking a notification as read
func (h *NotificationHandler) MarkNotificationRead(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkNotificationRead(c.Request().Context(), userID, notificationID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// DeleteNotification handles deleting a notification
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteNotification(c.Request().Context(), userID, notificationID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}
