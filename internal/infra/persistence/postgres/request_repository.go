package postgres

import (
	"context"
	"time"

	"mutualaid/internal/domain/entity"
	domainerrors "mutualaid/internal/domain/errors"
	"mutualaid/internal/domain/repository"
	"mutualaid/internal/geo"
	"mutualaid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// Create persists a new help request.
func (repo *requestRepository) Create(ctx context.Context, request *entity.Request) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Omit("Helpers").Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid request owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required request information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create request")
	}

	request.ID = requestM.ID

	return nil
}

// FindByID retrieves a non-archived request by its unique ID.
func (repo *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	var requestM model.RequestModel

	if err := repo.db.WithContext(ctx).
		Preload("Helpers").
		Where("id = ? AND archived = ?", id, false).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// FindAll retrieves every non-archived request, newest first.
func (repo *requestRepository) FindAll(ctx context.Context) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Preload("Helpers").
		Where("archived = ?", false).
		Order("creation_date DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find requests")
	}

	return toRequestDomainList(requestModels), nil
}

// FindByOwner retrieves a user's non-archived requests, newest first.
func (repo *requestRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Preload("Helpers").
		Where("owner_id = ? AND archived = ?", ownerID, false).
		Order("creation_date DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find requests by owner")
	}

	return toRequestDomainList(requestModels), nil
}

// FindByOwnerAndStatus retrieves a user's non-archived requests in a given status.
func (repo *requestRepository) FindByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status entity.RequestStatus) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Preload("Helpers").
		Where("owner_id = ? AND status = ? AND archived = ?", ownerID, string(status), false).
		Order("creation_date DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find requests by owner and status")
	}

	return toRequestDomainList(requestModels), nil
}

// FindByStatus retrieves every non-archived request in a given status.
func (repo *requestRepository) FindByStatus(ctx context.Context, status entity.RequestStatus) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Preload("Helpers").
		Where("status = ? AND archived = ?", string(status), false).
		Order("creation_date DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find requests by status")
	}

	return toRequestDomainList(requestModels), nil
}

// FindByHelperAndStatus retrieves non-archived requests where the helper has a
// ledger entry in the given status.
func (repo *requestRepository) FindByHelperAndStatus(ctx context.Context, helperID uuid.UUID, status entity.HelpStatus) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	ledger := repo.db.
		Model(&model.HelpHistoryModel{}).
		Select("request_id").
		Where("helper_id = ? AND status = ?", helperID, string(status))

	if err := repo.db.WithContext(ctx).
		Preload("Helpers").
		Where("archived = ?", false).
		Where("id IN (?)", ledger).
		Order("creation_date DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find requests by helper and status")
	}

	return toRequestDomainList(requestModels), nil
}

// FindHelpedByUser retrieves every non-archived request the user ever
// responded to, regardless of how the engagement ended.
func (repo *requestRepository) FindHelpedByUser(ctx context.Context, helperID uuid.UUID) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	ledger := repo.db.
		Model(&model.HelpHistoryModel{}).
		Select("request_id").
		Where("helper_id = ?", helperID)

	if err := repo.db.WithContext(ctx).
		Preload("Helpers").
		Where("archived = ?", false).
		Where("id IN (?)", ledger).
		Order("creation_date DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find helped requests")
	}

	return toRequestDomainList(requestModels), nil
}

// FindArchivedByOwner retrieves a user's archived requests.
func (repo *requestRepository) FindArchivedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Preload("Helpers").
		Where("owner_id = ? AND archived = ?", ownerID, true).
		Order("creation_date DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find archived requests")
	}

	return toRequestDomainList(requestModels), nil
}

// FindNearby retrieves non-archived requests inside the bounding box around
// the given point. The box over-approximates the radius; callers apply the
// exact distance check on the result.
func (repo *requestRepository) FindNearby(ctx context.Context, lat, lon, degreeRadius float64) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	bound := geo.BoundingBox(lat, lon, degreeRadius)

	if err := repo.db.WithContext(ctx).
		Preload("Helpers").
		Where("archived = ?", false).
		Where("latitude BETWEEN ? AND ?", bound.Min.Y(), bound.Max.Y()).
		Where("longitude BETWEEN ? AND ?", bound.Min.X(), bound.Max.X()).
		Order("creation_date DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find nearby requests")
	}

	return toRequestDomainList(requestModels), nil
}

// FindExpiredActive retrieves non-archived ACTIVE requests whose deadline
// passed.
func (repo *requestRepository) FindExpiredActive(ctx context.Context, now time.Time) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Preload("Helpers").
		Where("status = ? AND archived = ? AND deadline_date < ?", string(entity.RequestStatusActive), false, now).
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expired requests")
	}

	return toRequestDomainList(requestModels), nil
}

// Update persists the request's mutable fields and syncs the confirmed-helper
// join rows. Helper rows are insert-only; a confirmed helper is never removed.
func (repo *requestRepository) Update(ctx context.Context, request *entity.Request) error {
	requestM := fromRequestDomain(request)

	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ?", request.ID).
		Select("description", "category", "latitude", "longitude", "status",
			"deadline_date", "completion_date", "archived", "is_expired").
		Updates(requestM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	if len(request.Helpers) > 0 {
		rows := make([]*model.RequestHelperModel, 0, len(request.Helpers))
		for _, helperID := range request.Helpers {
			rows = append(rows, &model.RequestHelperModel{
				RequestID: request.ID,
				HelperID:  helperID,
			})
		}

		if err := repo.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(rows).Error; err != nil {
			return errors.Wrap(err, "failed to sync request helpers")
		}
	}

	return nil
}

// Delete removes a request and its helper join rows.
func (repo *requestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("request_id = ?", id).
		Delete(&model.RequestHelperModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete request helpers")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RequestModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRequestDomain converts a GORM RequestModel to a domain Request entity.
func toRequestDomain(data *model.RequestModel) *entity.Request {
	if data == nil {
		return nil
	}

	helpers := make([]uuid.UUID, 0, len(data.Helpers))
	for _, helperM := range data.Helpers {
		helpers = append(helpers, helperM.HelperID)
	}

	return &entity.Request{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		Description:    data.Description,
		Category:       data.Category,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Status:         entity.RequestStatus(data.Status),
		DeadlineDate:   data.DeadlineDate,
		CreationDate:   data.CreationDate,
		CompletionDate: data.CompletionDate,
		Archived:       data.Archived,
		IsExpired:      data.IsExpired,
		Helpers:        helpers,
	}
}

func toRequestDomainList(data []*model.RequestModel) []*entity.Request {
	requests := make([]*entity.Request, 0, len(data))
	for _, requestM := range data {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests
}

// fromRequestDomain converts a domain Request entity to a GORM RequestModel.
func fromRequestDomain(data *entity.Request) *model.RequestModel {
	if data == nil {
		return nil
	}

	return &model.RequestModel{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		Description:    data.Description,
		Category:       data.Category,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Status:         string(data.Status),
		DeadlineDate:   data.DeadlineDate,
		CreationDate:   data.CreationDate,
		CompletionDate: data.CompletionDate,
		Archived:       data.Archived,
		IsExpired:      data.IsExpired,
	}
}
