package impl

import (
	"context"
	"testing"

	"mutualaid/internal/domain/entity"
	domainerrors "mutualaid/internal/domain/errors"
	"mutualaid/internal/domain/repository"
	"mutualaid/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationService(t *testing.T) (usecase.NotificationUsecase, *testRepos) {
	repos := newTestRepos(t)
	service := NewNotificationService(newDiscardLogger(), repos.notifications)

	return service, repos
}

func TestNotificationService_GetUserNotifications(t *testing.T) {
	service, repos := newNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	repos.notifications.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.Notification{
			{ID: uuid.New(), UserID: userID, Type: entity.NotificationTypeReviewReceived},
		}, nil)

	notifications, err := service.GetUserNotifications(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestNotificationService_MarkNotificationRead_Success(t *testing.T) {
	service, repos := newNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	repos.notifications.EXPECT().
		FindByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, UserID: userID}, nil)

	repos.notifications.EXPECT().
		MarkRead(ctx, notificationID).
		Return(nil)

	err := service.MarkNotificationRead(ctx, userID, notificationID)
	require.NoError(t, err)
}

func TestNotificationService_MarkNotificationRead_WrongRecipient(t *testing.T) {
	service, repos := newNotificationService(t)
	ctx := context.Background()
	notificationID := uuid.New()

	repos.notifications.EXPECT().
		FindByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, UserID: uuid.New()}, nil)

	err := service.MarkNotificationRead(ctx, uuid.New(), notificationID)
	assert.ErrorIs(t, err, domainerrors.ErrNotNotificationRecipient)
}

func TestNotificationService_DeleteNotification_NotFound(t *testing.T) {
	service, repos := newNotificationService(t)
	ctx := context.Background()
	notificationID := uuid.New()

	repos.notifications.EXPECT().
		FindByID(ctx, notificationID).
		Return(nil, repository.ErrNotificationNotFound)

	err := service.DeleteNotification(ctx, uuid.New(), notificationID)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_DeleteNotification_Success(t *testing.T) {
	service, repos := newNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	repos.notifications.EXPECT().
		FindByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, UserID: userID}, nil)

	repos.notifications.EXPECT().
		Delete(ctx, notificationID).
		Return(nil)

	err := service.DeleteNotification(ctx, userID, notificationID)
	require.NoError(t, err)
}
