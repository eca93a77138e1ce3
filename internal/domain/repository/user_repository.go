package repository

import (
	"context"
	"errors"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for the user directory consumed by
// the lifecycle core. Account creation and authentication live elsewhere;
// Save exists so the rating aggregator can persist the cached rating.
type UserRepository interface {
	// FindByID retrieves a user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Save persists changes to an existing user.
	Save(ctx context.Context, user *entity.User) error
}
