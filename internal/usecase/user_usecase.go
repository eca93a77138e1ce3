package usecase

import (
	"context"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
)

// UserProfile is a user plus the activity counters shown on their profile.
type UserProfile struct {
	User            *entity.User `json:"user"`
	CreatedRequests int          `json:"created_requests"`
	HelpedRequests  int          `json:"helped_requests"`
}

// UserUsecase exposes the read side of the user directory.
type UserUsecase interface {
	// GetProfile retrieves a user together with created/helped counts.
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
}
