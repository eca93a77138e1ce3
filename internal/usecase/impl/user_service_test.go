package impl

import (
	"context"
	"testing"

	"mutualaid/internal/domain/entity"
	domainerrors "mutualaid/internal/domain/errors"
	"mutualaid/internal/domain/repository"
	"mutualaid/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (usecase.UserUsecase, *testRepos) {
	repos := newTestRepos(t)
	service := NewUserService(newDiscardLogger(), repos.users, repos.requests)

	return service, repos
}

func TestUserService_GetProfile_Success(t *testing.T) {
	service, repos := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	repos.users.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Ada", Rating: 4}, nil)

	repos.requests.EXPECT().
		FindByOwner(ctx, userID).
		Return([]*entity.Request{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	repos.requests.EXPECT().
		FindHelpedByUser(ctx, userID).
		Return([]*entity.Request{{ID: uuid.New()}}, nil)

	profile, err := service.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.User.Name)
	assert.Equal(t, 2, profile.CreatedRequests)
	assert.Equal(t, 1, profile.HelpedRequests)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	service, repos := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	repos.users.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := service.GetProfile(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
