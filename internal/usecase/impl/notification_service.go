package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mutualaid/internal/domain/entity"
	domainerrors "mutualaid/internal/domain/errors"
	"mutualaid/internal/domain/repository"
	"mutualaid/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates the notification feed service.
func NewNotificationService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:           logger,
		notificationRepo: notificationRepo,
	}
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications: %w", err)
	}

	return notifications, nil
}

func (s *notificationService) GetActionNeededNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.FindActionNeededByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find action-needed notifications: %w", err)
	}

	return notifications, nil
}

func (s *notificationService) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.authorizeRecipient(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.authorizeRecipient(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := s.notificationRepo.Delete(ctx, notificationID); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	return nil
}

// authorizeRecipient loads the notification and verifies the caller is its
// recipient.
func (s *notificationService) authorizeRecipient(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return fmt.Errorf("failed to find notification: %w", err)
	}

	if notification.UserID != userID {
		return domainerrors.ErrNotNotificationRecipient
	}

	return nil
}
