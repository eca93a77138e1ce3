package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainerrors "mutualaid/internal/domain/errors"
	"mutualaid/internal/domain/repository"
	"mutualaid/internal/usecase"

	"github.com/google/uuid"
)

type userService struct {
	logger      *slog.Logger
	userRepo    repository.UserRepository
	requestRepo repository.RequestRepository
}

// NewUserService creates the user profile service.
func NewUserService(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	requestRepo repository.RequestRepository,
) usecase.UserUsecase {
	return &userService{
		logger:      logger,
		userRepo:    userRepo,
		requestRepo: requestRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	created, err := s.requestRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count created requests: %w", err)
	}

	helped, err := s.requestRepo.FindHelpedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count helped requests: %w", err)
	}

	return &usecase.UserProfile{
		User:            user,
		CreatedRequests: len(created),
		HelpedRequests:  len(helped),
	}, nil
}
