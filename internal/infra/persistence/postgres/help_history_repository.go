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

// helpHistoryRepository implements the repository.HelpHistoryRepository interface.
type helpHistoryRepository struct {
	db *gorm.DB
}

// NewHelpHistoryRepository is the constructor for helpHistoryRepository.
func NewHelpHistoryRepository(db *gorm.DB) repository.HelpHistoryRepository {
	return &helpHistoryRepository{
		db: db,
	}
}

// Create persists a new ledger entry. The partial unique index turns a
// concurrent duplicate engagement into a conflict error for the loser.
func (repo *helpHistoryRepository) Create(ctx context.Context, entry *entity.HelpHistory) error {
	entryM := fromHelpHistoryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyResponded
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRequestNotFound.WrapMessage("invalid request or helper reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create help history entry")
	}

	entry.ID = entryM.ID

	return nil
}

// FindByRequest retrieves every ledger entry for a request, oldest first.
func (repo *helpHistoryRepository) FindByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.HelpHistory, error) {
	var entryModels []*model.HelpHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("start_date ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find help history by request")
	}

	return toHelpHistoryDomainList(entryModels), nil
}

// FindByRequestAndStatus retrieves a request's ledger entries in a given status.
func (repo *helpHistoryRepository) FindByRequestAndStatus(ctx context.Context, requestID uuid.UUID, status entity.HelpStatus) ([]*entity.HelpHistory, error) {
	var entryModels []*model.HelpHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("request_id = ? AND status = ?", requestID, string(status)).
		Order("start_date ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find help history by request and status")
	}

	return toHelpHistoryDomainList(entryModels), nil
}

// FindNonTerminal retrieves the helper's unresolved entry for a request.
func (repo *helpHistoryRepository) FindNonTerminal(ctx context.Context, requestID, helperID uuid.UUID) (*entity.HelpHistory, error) {
	var entryM model.HelpHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("request_id = ? AND helper_id = ? AND status IN ?",
			requestID, helperID,
			[]string{string(entity.HelpStatusInProgress), string(entity.HelpStatusPendingConfirmation)}).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHelpHistoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find non-terminal help history entry")
	}

	return toHelpHistoryDomain(&entryM), nil
}

// FindByRequestHelperAndStatus retrieves the helper's entry for a request in
// a specific status.
func (repo *helpHistoryRepository) FindByRequestHelperAndStatus(ctx context.Context, requestID, helperID uuid.UUID, status entity.HelpStatus) (*entity.HelpHistory, error) {
	var entryM model.HelpHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("request_id = ? AND helper_id = ? AND status = ?", requestID, helperID, string(status)).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHelpHistoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find help history entry")
	}

	return toHelpHistoryDomain(&entryM), nil
}

// FindByHelperAndStatus retrieves all of a helper's entries in a given status.
func (repo *helpHistoryRepository) FindByHelperAndStatus(ctx context.Context, helperID uuid.UUID, status entity.HelpStatus) ([]*entity.HelpHistory, error) {
	var entryModels []*model.HelpHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("helper_id = ? AND status = ?", helperID, string(status)).
		Order("start_date ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find help history by helper and status")
	}

	return toHelpHistoryDomainList(entryModels), nil
}

// Update persists an entry's status and end date.
func (repo *helpHistoryRepository) Update(ctx context.Context, entry *entity.HelpHistory) error {
	entryM := fromHelpHistoryDomain(entry)

	result := repo.db.WithContext(ctx).
		Model(&model.HelpHistoryModel{}).
		Where("id = ?", entry.ID).
		Select("status", "end_date").
		Updates(entryM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update help history entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHelpHistoryNotFound
	}

	return nil
}

// DeleteByRequest removes every ledger entry of a request.
func (repo *helpHistoryRepository) DeleteByRequest(ctx context.Context, requestID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Delete(&model.HelpHistoryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete help history by request")
	}

	return nil
}

// --- Mapper Functions ---

// toHelpHistoryDomain converts a GORM HelpHistoryModel to a domain HelpHistory entity.
func toHelpHistoryDomain(data *model.HelpHistoryModel) *entity.HelpHistory {
	if data == nil {
		return nil
	}

	return &entity.HelpHistory{
		ID:        data.ID,
		RequestID: data.RequestID,
		HelperID:  data.HelperID,
		Status:    entity.HelpStatus(data.Status),
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
	}
}

func toHelpHistoryDomainList(data []*model.HelpHistoryModel) []*entity.HelpHistory {
	entries := make([]*entity.HelpHistory, 0, len(data))
	for _, entryM := range data {
		entries = append(entries, toHelpHistoryDomain(entryM))
	}

	return entries
}

// fromHelpHistoryDomain converts a domain HelpHistory entity to a GORM HelpHistoryModel.
func fromHelpHistoryDomain(data *entity.HelpHistory) *model.HelpHistoryModel {
	if data == nil {
		return nil
	}

	return &model.HelpHistoryModel{
		ID:        data.ID,
		RequestID: data.RequestID,
		HelperID:  data.HelperID,
		Status:    string(data.Status),
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
	}
}
