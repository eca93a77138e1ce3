package usecase

import (
	"context"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase exposes the polled notification feed.
type NotificationUsecase interface {
	// GetUserNotifications retrieves a user's notifications, newest first.
	GetUserNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// GetActionNeededNotifications retrieves a user's unresolved
	// action-required notifications.
	GetActionNeededNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// MarkNotificationRead (recipient only) transitions a notification to READ.
	MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// DeleteNotification (recipient only) removes a notification.
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error
}
