package impl

import (
	"context"
	"testing"

	"mutualaid/internal/domain/entity"
	domainerrors "mutualaid/internal/domain/errors"
	"mutualaid/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReviewService(t *testing.T) (usecase.ReviewUsecase, *testRepos) {
	repos := newTestRepos(t)
	service := NewReviewService(
		newDiscardLogger(),
		&stubTxManager{factory: repos},
		repos.reviews,
	)

	return service, repos
}

func TestReviewService_AddReview_Success(t *testing.T) {
	service, repos := newReviewService(t)
	ctx := context.Background()
	authorID := uuid.New()
	helperID := uuid.New()
	requestID := uuid.New()
	helper := &entity.User{ID: helperID, Name: "Ben", Rating: 0}

	repos.users.EXPECT().
		FindByID(ctx, helperID).
		Return(helper, nil)

	repos.requests.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.Request{ID: requestID, OwnerID: authorID}, nil)

	repos.reviews.EXPECT().
		ExistsByRequestAndAuthor(ctx, requestID, authorID).
		Return(false, nil)

	repos.reviews.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	// The helper already has two reviews; with the new 5 the mean is 4.
	repos.reviews.EXPECT().
		FindByHelper(ctx, helperID).
		Return([]*entity.Review{
			{HelperID: helperID, Rating: 5},
			{HelperID: helperID, Rating: 4},
			{HelperID: helperID, Rating: 3},
		}, nil)

	repos.users.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			saved := args.Get(1).(*entity.User)
			assert.Equal(t, 4, saved.Rating)
		}).
		Return(nil)

	repos.notifications.EXPECT().
		DeleteByRequestAndType(ctx, requestID, entity.NotificationTypeHelpCompletion).
		Return(nil)

	repos.notifications.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(args mock.Arguments) {
			notification := args.Get(1).(*entity.Notification)
			assert.Equal(t, helperID, notification.UserID)
			assert.Equal(t, entity.NotificationTypeReviewReceived, notification.Type)
			assert.False(t, notification.ActionNeeded)
		}).
		Return(nil)

	review, err := service.AddReview(ctx, authorID, &usecase.AddReviewInput{
		HelperID:  helperID,
		RequestID: requestID,
		Rating:    5,
		Text:      "great help",
	})
	require.NoError(t, err)
	assert.Equal(t, authorID, review.AuthorID)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_AddReview_RatingOutOfRange(t *testing.T) {
	service, _ := newReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := service.AddReview(context.Background(), uuid.New(), &usecase.AddReviewInput{
			HelperID:  uuid.New(),
			RequestID: uuid.New(),
			Rating:    rating,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	}
}

func TestReviewService_AddReview_Duplicate(t *testing.T) {
	service, repos := newReviewService(t)
	ctx := context.Background()
	authorID := uuid.New()
	helperID := uuid.New()
	requestID := uuid.New()

	repos.users.EXPECT().
		FindByID(ctx, helperID).
		Return(&entity.User{ID: helperID}, nil)

	repos.requests.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.Request{ID: requestID}, nil)

	repos.reviews.EXPECT().
		ExistsByRequestAndAuthor(ctx, requestID, authorID).
		Return(true, nil)

	_, err := service.AddReview(ctx, authorID, &usecase.AddReviewInput{
		HelperID:  helperID,
		RequestID: requestID,
		Rating:    4,
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
}

func TestReviewService_AddReview_RetractionFailureDoesNotFail(t *testing.T) {
	service, repos := newReviewService(t)
	ctx := context.Background()
	authorID := uuid.New()
	helperID := uuid.New()
	requestID := uuid.New()

	repos.users.EXPECT().
		FindByID(ctx, helperID).
		Return(&entity.User{ID: helperID}, nil)

	repos.requests.EXPECT().
		FindByID(ctx, requestID).
		Return(&entity.Request{ID: requestID}, nil)

	repos.reviews.EXPECT().
		ExistsByRequestAndAuthor(ctx, requestID, authorID).
		Return(false, nil)

	repos.reviews.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	repos.reviews.EXPECT().
		FindByHelper(ctx, helperID).
		Return([]*entity.Review{{HelperID: helperID, Rating: 3}}, nil)

	repos.users.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	repos.notifications.EXPECT().
		DeleteByRequestAndType(ctx, requestID, entity.NotificationTypeHelpCompletion).
		Return(errors.New("transient failure"))

	repos.notifications.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	review, err := service.AddReview(ctx, authorID, &usecase.AddReviewInput{
		HelperID:  helperID,
		RequestID: requestID,
		Rating:    3,
	})
	require.NoError(t, err)
	assert.NotNil(t, review)
}

func TestReviewService_GetReviewsForHelper(t *testing.T) {
	service, repos := newReviewService(t)
	ctx := context.Background()
	helperID := uuid.New()

	repos.reviews.EXPECT().
		FindByHelper(ctx, helperID).
		Return([]*entity.Review{{HelperID: helperID, Rating: 5}}, nil)

	reviews, err := service.GetReviewsForHelper(ctx, helperID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}
