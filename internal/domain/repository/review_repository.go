package repository

import (
	"context"
	"errors"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review-related database
// operations. Reviews are immutable once created.
type ReviewRepository interface {
	// Create persists a new review. Returns a conflict error when the author
	// already reviewed the request.
	Create(ctx context.Context, review *entity.Review) error

	// FindByHelper retrieves all reviews received by a helper.
	FindByHelper(ctx context.Context, helperID uuid.UUID) ([]*entity.Review, error)

	// FindByRequest retrieves all reviews for a request.
	FindByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.Review, error)

	// FindByAuthor retrieves all reviews written by a user.
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Review, error)

	// ExistsByRequestAndAuthor reports whether the author already reviewed
	// the request.
	ExistsByRequestAndAuthor(ctx context.Context, requestID, authorID uuid.UUID) (bool, error)
}
