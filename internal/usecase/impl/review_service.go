package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mutualaid/internal/domain/entity"
	domainerrors "mutualaid/internal/domain/errors"
	"mutualaid/internal/domain/repository"
	"mutualaid/internal/usecase"

	"github.com/google/uuid"
)

type reviewService struct {
	logger     *slog.Logger
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
}

// NewReviewService creates the review and rating aggregation service.
func NewReviewService(
	logger *slog.Logger,
	txManager repository.TransactionManager,
	reviewRepo repository.ReviewRepository,
) usecase.ReviewUsecase {
	return &reviewService{
		logger:     logger,
		txManager:  txManager,
		reviewRepo: reviewRepo,
	}
}

// AddReview stores a review and recomputes the helper's cached rating from
// the full review set. Notification retraction is best effort: the review and
// the rating must land together, a leftover notification must not undo them.
func (s *reviewService) AddReview(ctx context.Context, authorID uuid.UUID, input *usecase.AddReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrInvalidRating
	}

	var review *entity.Review

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		helper, err := f.Users().FindByID(ctx, input.HelperID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return fmt.Errorf("failed to find helper: %w", err)
		}

		if _, err := f.Requests().FindByID(ctx, input.RequestID); err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return domainerrors.ErrRequestNotFound
			}

			return fmt.Errorf("failed to find request: %w", err)
		}

		exists, err := f.Reviews().ExistsByRequestAndAuthor(ctx, input.RequestID, authorID)
		if err != nil {
			return fmt.Errorf("failed to check existing review: %w", err)
		}
		if exists {
			return domainerrors.ErrDuplicateReview
		}

		review = &entity.Review{
			ID:        uuid.New(),
			HelperID:  input.HelperID,
			AuthorID:  authorID,
			RequestID: input.RequestID,
			Rating:    input.Rating,
			Text:      input.Text,
			CreatedAt: time.Now(),
		}
		if err := f.Reviews().Create(ctx, review); err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		reviews, err := f.Reviews().FindByHelper(ctx, input.HelperID)
		if err != nil {
			return fmt.Errorf("failed to load helper reviews: %w", err)
		}

		helper.Rating = entity.AggregateRating(reviews)
		if err := f.Users().Save(ctx, helper); err != nil {
			return fmt.Errorf("failed to save helper rating: %w", err)
		}

		if err := f.Notifications().DeleteByRequestAndType(ctx, input.RequestID, entity.NotificationTypeHelpCompletion); err != nil {
			s.logger.Warn("failed to retract help completion notification",
				slog.String("request_id", input.RequestID.String()),
				slog.Any("error", err))
		}

		notification := &entity.Notification{
			ID:         uuid.New(),
			UserID:     input.HelperID,
			RequestID:  &input.RequestID,
			FromUserID: &authorID,
			Message:    fmt.Sprintf("You received a %d-star review for your help.", input.Rating),
			Type:       entity.NotificationTypeReviewReceived,
			Status:     entity.NotificationStatusUnread,
			CreatedAt:  time.Now(),
		}
		if err := f.Notifications().Create(ctx, notification); err != nil {
			return fmt.Errorf("failed to create review notification: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// GetReviewsForHelper retrieves all reviews a helper received.
func (s *reviewService) GetReviewsForHelper(ctx context.Context, helperID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindByHelper(ctx, helperID)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews by helper: %w", err)
	}

	return reviews, nil
}

// GetReviewsForRequest retrieves all reviews for a request.
func (s *reviewService) GetReviewsForRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews by request: %w", err)
	}

	return reviews, nil
}

// GetReviewsByAuthor retrieves all reviews a user wrote.
func (s *reviewService) GetReviewsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews by author: %w", err)
	}

	return reviews, nil
}
