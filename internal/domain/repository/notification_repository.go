package repository

import (
	"context"
	"errors"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related
// database operations. Creation is append-only; targeted deletion by
// (request, type) retracts an action-required notification once its action
// has been resolved.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByUser retrieves all notifications for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// FindActionNeededByUser retrieves a user's unresolved action-required
	// notifications, newest first.
	FindActionNeededByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// MarkRead transitions a notification to READ.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// Delete removes a notification by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByRequestAndType removes all notifications linked to a request
	// with the given type. Deleting zero rows is not an error.
	DeleteByRequestAndType(ctx context.Context, requestID uuid.UUID, notificationType string) error
}
