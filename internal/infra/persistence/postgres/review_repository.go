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

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review. The unique index on (request_id, author_id)
// turns a concurrent duplicate into a conflict for the loser.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRequestNotFound.WrapMessage("invalid request or helper reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID

	return nil
}

// FindByHelper retrieves all reviews a helper received, newest first.
func (repo *reviewRepository) FindByHelper(ctx context.Context, helperID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("helper_id = ?", helperID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by helper")
	}

	return toReviewDomainList(reviewModels), nil
}

// FindByRequest retrieves all reviews for a request, newest first.
func (repo *reviewRepository) FindByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by request")
	}

	return toReviewDomainList(reviewModels), nil
}

// FindByAuthor retrieves all reviews a user wrote, newest first.
func (repo *reviewRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by author")
	}

	return toReviewDomainList(reviewModels), nil
}

// ExistsByRequestAndAuthor reports whether the author already reviewed the
// request.
func (repo *reviewRepository) ExistsByRequestAndAuthor(ctx context.Context, requestID, authorID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("request_id = ? AND author_id = ?", requestID, authorID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check existing review")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		HelperID:  data.HelperID,
		AuthorID:  data.AuthorID,
		RequestID: data.RequestID,
		Rating:    data.Rating,
		Text:      data.Text,
		CreatedAt: data.CreatedAt,
	}
}

func toReviewDomainList(data []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(data))
	for _, reviewM := range data {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		HelperID:  data.HelperID,
		AuthorID:  data.AuthorID,
		RequestID: data.RequestID,
		Rating:    data.Rating,
		Text:      data.Text,
		CreatedAt: data.CreatedAt,
	}
}
