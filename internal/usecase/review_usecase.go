package usecase

import (
	"context"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
)

// AddReviewInput is the validated input for reviewing a helper.
type AddReviewInput struct {
	HelperID  uuid.UUID `json:"helper_id"`
	RequestID uuid.UUID `json:"request_id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
}

// ReviewUsecase manages reviews and the derived helper rating.
type ReviewUsecase interface {
	// AddReview stores a review, recomputes the helper's cached rating,
	// retracts the resolved HELP_COMPLETION notification and notifies the
	// helper about the review.
	AddReview(ctx context.Context, authorID uuid.UUID, input *AddReviewInput) (*entity.Review, error)

	// GetReviewsForHelper retrieves all reviews a helper received.
	GetReviewsForHelper(ctx context.Context, helperID uuid.UUID) ([]*entity.Review, error)

	// GetReviewsForRequest retrieves all reviews for a request.
	GetReviewsForRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.Review, error)

	// GetReviewsByAuthor retrieves all reviews a user wrote.
	GetReviewsByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Review, error)
}
