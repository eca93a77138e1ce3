package postgres

import (
	"context"

	"mutualaid/internal/domain/entity"
	domainerrors "mutualaid/internal/domain/errors"
	"mutualaid/internal/domain/repository"
	"mutualaid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid notification recipient reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID

	return nil
}

// FindByUser retrieves a user's notifications, newest first.
func (repo *notificationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	return toNotificationDomainList(notificationModels), nil
}

// FindActionNeededByUser retrieves a user's unresolved action-required
// notifications, newest first.
func (repo *notificationRepository) FindActionNeededByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND action_needed = ?", userID, true).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find action-needed notifications")
	}

	return toNotificationDomainList(notificationModels), nil
}

// FindByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// MarkRead transitions a notification to READ.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("status", string(entity.NotificationStatusRead))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// Delete removes a notification.
func (repo *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NotificationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// DeleteByRequestAndType removes every notification of a given type attached
// to a request. Deleting zero rows is not an error; retraction must be
// idempotent.
func (repo *notificationRepository) DeleteByRequestAndType(ctx context.Context, requestID uuid.UUID, notificationType string) error {
	if err := repo.db.WithContext(ctx).
		Where("request_id = ? AND type = ?", requestID, notificationType).
		Delete(&model.NotificationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete notifications by request and type")
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:           data.ID,
		UserID:       data.UserID,
		RequestID:    data.RequestID,
		FromUserID:   data.FromUserID,
		Message:      data.Message,
		Type:         data.Type,
		Status:       entity.NotificationStatus(data.Status),
		ActionNeeded: data.ActionNeeded,
		ActionURL:    data.ActionURL,
		CreatedAt:    data.CreatedAt,
	}
}

func toNotificationDomainList(data []*model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(data))
	for _, notificationM := range data {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:           data.ID,
		UserID:       data.UserID,
		RequestID:    data.RequestID,
		FromUserID:   data.FromUserID,
		Message:      data.Message,
		Type:         data.Type,
		Status:       string(data.Status),
		ActionNeeded: data.ActionNeeded,
		ActionURL:    data.ActionURL,
		CreatedAt:    data.CreatedAt,
	}
}
