package impl

import (
	"context"
	"testing"
	"time"

	"mutualaid/internal/domain/entity"
	domainerrors "mutualaid/internal/domain/errors"
	"mutualaid/internal/domain/repository"
	"mutualaid/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRequestService(t *testing.T) (usecase.RequestUsecase, *testRepos) {
	repos := newTestRepos(t)
	service := NewRequestService(
		newDiscardLogger(),
		&stubTxManager{factory: repos},
		repos.requests,
		repos.ledger,
		repos.users,
	)

	return service, repos
}

func activeRequest(ownerID uuid.UUID) *entity.Request {
	return &entity.Request{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Description:  "pick up groceries",
		Category:     "errands",
		Latitude:     52.52,
		Longitude:    13.405,
		Status:       entity.RequestStatusActive,
		DeadlineDate: time.Now().Add(24 * time.Hour),
		CreationDate: time.Now().Add(-time.Hour),
	}
}

func TestRequestService_CreateRequest_Success(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	repos.users.EXPECT().
		FindByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Name: "Ada"}, nil)

	repos.requests.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Request")).
		Return(nil)

	request, err := service.CreateRequest(ctx, ownerID, &usecase.CreateRequestInput{
		Description:  "pick up groceries",
		Category:     "errands",
		Latitude:     52.52,
		Longitude:    13.405,
		DeadlineDate: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, request.ID)
	assert.Equal(t, ownerID, request.OwnerID)
	assert.Equal(t, entity.RequestStatusActive, request.Status)
	assert.False(t, request.Archived)
	assert.Empty(t, request.Helpers)
}

func TestRequestService_CreateRequest_PastDeadline(t *testing.T) {
	service, _ := newRequestService(t)

	_, err := service.CreateRequest(context.Background(), uuid.New(), &usecase.CreateRequestInput{
		Description:  "too late",
		Category:     "errands",
		Latitude:     52.52,
		Longitude:    13.405,
		DeadlineDate: time.Now().Add(-time.Minute),
	})
	assert.ErrorIs(t, err, domainerrors.ErrPastDeadline)
}

func TestRequestService_CreateRequest_EmptyDescription(t *testing.T) {
	service, _ := newRequestService(t)

	_, err := service.CreateRequest(context.Background(), uuid.New(), &usecase.CreateRequestInput{
		Description:  "   ",
		Category:     "errands",
		Latitude:     52.52,
		Longitude:    13.405,
		DeadlineDate: time.Now().Add(time.Hour),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestRequestService_CreateRequest_OwnerMissing(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	repos.users.EXPECT().
		FindByID(ctx, ownerID).
		Return(nil, repository.ErrUserNotFound)

	_, err := service.CreateRequest(ctx, ownerID, &usecase.CreateRequestInput{
		Description:  "pick up groceries",
		Category:     "errands",
		Latitude:     52.52,
		Longitude:    13.405,
		DeadlineDate: time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestRequestService_RespondToRequest_Success(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	helperID := uuid.New()
	request := activeRequest(uuid.New())

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	repos.users.EXPECT().
		FindByID(ctx, helperID).
		Return(&entity.User{ID: helperID, Name: "Ben"}, nil)

	repos.ledger.EXPECT().
		FindNonTerminal(ctx, request.ID, helperID).
		Return(nil, repository.ErrHelpHistoryNotFound)

	repos.ledger.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.HelpHistory")).
		Return(nil)

	repos.ledger.EXPECT().
		FindByRequest(ctx, request.ID).
		Return([]*entity.HelpHistory{
			{RequestID: request.ID, HelperID: helperID, Status: entity.HelpStatusInProgress},
		}, nil)

	repos.requests.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Request")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.Request)
			assert.Equal(t, entity.RequestStatusInProgress, updated.Status)
		}).
		Return(nil)

	entry, err := service.RespondToRequest(ctx, helperID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, request.ID, entry.RequestID)
	assert.Equal(t, helperID, entry.HelperID)
	assert.Equal(t, entity.HelpStatusInProgress, entry.Status)
	assert.Nil(t, entry.EndDate)
}

func TestRequestService_RespondToRequest_OwnRequest(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	request := activeRequest(ownerID)

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	repos.users.EXPECT().
		FindByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID}, nil)

	_, err := service.RespondToRequest(ctx, ownerID, request.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOwnRequestResponse)
}

func TestRequestService_RespondToRequest_Duplicate(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	helperID := uuid.New()
	request := activeRequest(uuid.New())

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	repos.users.EXPECT().
		FindByID(ctx, helperID).
		Return(&entity.User{ID: helperID}, nil)

	repos.ledger.EXPECT().
		FindNonTerminal(ctx, request.ID, helperID).
		Return(&entity.HelpHistory{RequestID: request.ID, HelperID: helperID, Status: entity.HelpStatusInProgress}, nil)

	_, err := service.RespondToRequest(ctx, helperID, request.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyResponded)
}

func TestRequestService_RespondToRequest_RequestMissing(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	repos.requests.EXPECT().
		FindByID(ctx, requestID).
		Return(nil, repository.ErrRequestNotFound)

	_, err := service.RespondToRequest(ctx, uuid.New(), requestID)
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
}

func TestRequestService_CompleteHelp_Success(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	helperID := uuid.New()
	request := activeRequest(uuid.New())
	request.Status = entity.RequestStatusInProgress
	entry := &entity.HelpHistory{
		ID:        uuid.New(),
		RequestID: request.ID,
		HelperID:  helperID,
		Status:    entity.HelpStatusInProgress,
		StartDate: time.Now().Add(-time.Hour),
	}

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	repos.ledger.EXPECT().
		FindByRequestHelperAndStatus(ctx, request.ID, helperID, entity.HelpStatusInProgress).
		Return(entry, nil)

	repos.ledger.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.HelpHistory")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.HelpHistory)
			assert.Equal(t, entity.HelpStatusPendingConfirmation, updated.Status)
			assert.NotNil(t, updated.EndDate)
		}).
		Return(nil)

	repos.users.EXPECT().
		FindByID(ctx, helperID).
		Return(&entity.User{ID: helperID, Name: "Ben"}, nil)

	repos.notifications.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(args mock.Arguments) {
			notification := args.Get(1).(*entity.Notification)
			assert.Equal(t, request.OwnerID, notification.UserID)
			assert.Equal(t, entity.NotificationTypeHelpCompletion, notification.Type)
			assert.True(t, notification.ActionNeeded)
			assert.Contains(t, notification.ActionURL, request.ID.String())
			assert.Contains(t, notification.ActionURL, "confirm-help")
		}).
		Return(nil)

	repos.ledger.EXPECT().
		FindByRequest(ctx, request.ID).
		Return([]*entity.HelpHistory{entry}, nil)

	repos.requests.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Request")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.Request)
			assert.Equal(t, entity.RequestStatusInProgress, updated.Status)
		}).
		Return(nil)

	err := service.CompleteHelp(ctx, request.ID, helperID)
	require.NoError(t, err)
}

func TestRequestService_CompleteHelp_NoEngagement(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	helperID := uuid.New()
	request := activeRequest(uuid.New())

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	repos.ledger.EXPECT().
		FindByRequestHelperAndStatus(ctx, request.ID, helperID, entity.HelpStatusInProgress).
		Return(nil, repository.ErrHelpHistoryNotFound)

	err := service.CompleteHelp(ctx, request.ID, helperID)
	assert.ErrorIs(t, err, domainerrors.ErrHelpHistoryNotFound)
}

func TestRequestService_ConfirmHelpCompletion_Success(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	helperA := uuid.New()
	helperB := uuid.New()
	request := activeRequest(ownerID)
	request.Status = entity.RequestStatusInProgress
	endDate := time.Now()
	pending := []*entity.HelpHistory{
		{ID: uuid.New(), RequestID: request.ID, HelperID: helperA, Status: entity.HelpStatusPendingConfirmation, EndDate: &endDate},
		{ID: uuid.New(), RequestID: request.ID, HelperID: helperB, Status: entity.HelpStatusPendingConfirmation, EndDate: &endDate},
	}

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	repos.ledger.EXPECT().
		FindByRequestAndStatus(ctx, request.ID, entity.HelpStatusPendingConfirmation).
		Return(pending, nil)

	repos.ledger.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.HelpHistory")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.HelpHistory)
			assert.Equal(t, entity.HelpStatusCompleted, updated.Status)
		}).
		Return(nil).
		Times(2)

	repos.ledger.EXPECT().
		FindByRequest(ctx, request.ID).
		Return(pending, nil)

	repos.requests.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Request")).
		Return(nil)

	repos.notifications.EXPECT().
		DeleteByRequestAndType(ctx, request.ID, entity.NotificationTypeHelpCompletion).
		Return(nil)

	confirmed, err := service.ConfirmHelpCompletion(ctx, request.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusCompleted, confirmed.Status)
	assert.NotNil(t, confirmed.CompletionDate)
	assert.ElementsMatch(t, []uuid.UUID{helperA, helperB}, confirmed.Helpers)
}

func TestRequestService_ConfirmHelpCompletion_NotOwner(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	request := activeRequest(uuid.New())

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	_, err := service.ConfirmHelpCompletion(ctx, request.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotRequestOwner)
}

func TestRequestService_ConfirmHelpCompletion_NoPending(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	request := activeRequest(ownerID)

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	repos.ledger.EXPECT().
		FindByRequestAndStatus(ctx, request.ID, entity.HelpStatusPendingConfirmation).
		Return([]*entity.HelpHistory{}, nil)

	_, err := service.ConfirmHelpCompletion(ctx, request.ID, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrNoPendingConfirmation)
}

func TestRequestService_RejectHelpCompletion_RevertsToActive(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	request := activeRequest(ownerID)
	request.Status = entity.RequestStatusInProgress
	pending := []*entity.HelpHistory{
		{ID: uuid.New(), RequestID: request.ID, HelperID: uuid.New(), Status: entity.HelpStatusPendingConfirmation},
	}

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	repos.ledger.EXPECT().
		FindByRequestAndStatus(ctx, request.ID, entity.HelpStatusPendingConfirmation).
		Return(pending, nil)

	repos.ledger.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.HelpHistory")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.HelpHistory)
			assert.Equal(t, entity.HelpStatusCancelled, updated.Status)
			assert.NotNil(t, updated.EndDate)
		}).
		Return(nil)

	repos.ledger.EXPECT().
		FindByRequest(ctx, request.ID).
		Return(pending, nil)

	repos.requests.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Request")).
		Return(nil)

	repos.notifications.EXPECT().
		DeleteByRequestAndType(ctx, request.ID, entity.NotificationTypeHelpCompletion).
		Return(nil)

	rejected, err := service.RejectHelpCompletion(ctx, request.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusActive, rejected.Status)
	assert.Empty(t, rejected.Helpers)
}

func TestRequestService_CancelHelp_OtherHelperRemains(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	helperID := uuid.New()
	otherHelper := uuid.New()
	request := activeRequest(uuid.New())
	request.Status = entity.RequestStatusInProgress
	entry := &entity.HelpHistory{
		ID:        uuid.New(),
		RequestID: request.ID,
		HelperID:  helperID,
		Status:    entity.HelpStatusInProgress,
	}

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	repos.ledger.EXPECT().
		FindByRequestHelperAndStatus(ctx, request.ID, helperID, entity.HelpStatusInProgress).
		Return(entry, nil)

	repos.ledger.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.HelpHistory")).
		Return(nil)

	repos.ledger.EXPECT().
		FindByRequest(ctx, request.ID).
		Return([]*entity.HelpHistory{
			entry,
			{ID: uuid.New(), RequestID: request.ID, HelperID: otherHelper, Status: entity.HelpStatusInProgress},
		}, nil)

	repos.requests.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Request")).
		Return(nil)

	updated, err := service.CancelHelp(ctx, request.ID, helperID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusInProgress, updated.Status)
}

func TestRequestService_CancelHelp_LastHelperRevertsToActive(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	helperID := uuid.New()
	request := activeRequest(uuid.New())
	request.Status = entity.RequestStatusInProgress
	entry := &entity.HelpHistory{
		ID:        uuid.New(),
		RequestID: request.ID,
		HelperID:  helperID,
		Status:    entity.HelpStatusInProgress,
	}

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	repos.ledger.EXPECT().
		FindByRequestHelperAndStatus(ctx, request.ID, helperID, entity.HelpStatusInProgress).
		Return(entry, nil)

	repos.ledger.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.HelpHistory")).
		Return(nil)

	repos.ledger.EXPECT().
		FindByRequest(ctx, request.ID).
		Return([]*entity.HelpHistory{entry}, nil)

	repos.requests.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Request")).
		Return(nil)

	updated, err := service.CancelHelp(ctx, request.ID, helperID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusActive, updated.Status)
}

func TestRequestService_ArchiveRequest_Success(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	request := activeRequest(ownerID)
	request.Status = entity.RequestStatusCompleted

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	repos.requests.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Request")).
		Return(nil)

	archived, err := service.ArchiveRequest(ctx, request.ID, ownerID)
	require.NoError(t, err)
	assert.True(t, archived.Archived)
	// Archiving never touches the lifecycle status.
	assert.Equal(t, entity.RequestStatusCompleted, archived.Status)
}

func TestRequestService_ArchiveRequest_NotOwner(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	request := activeRequest(uuid.New())

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	_, err := service.ArchiveRequest(ctx, request.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotRequestOwner)
}

func TestRequestService_UpdateRequestStatus_Invalid(t *testing.T) {
	service, _ := newRequestService(t)

	_, err := service.UpdateRequestStatus(context.Background(), uuid.New(), entity.RequestStatus("BOGUS"), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestRequestService_UpdateRequestStatus_Completed(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	request := activeRequest(ownerID)

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	repos.requests.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Request")).
		Return(nil)

	updated, err := service.UpdateRequestStatus(ctx, request.ID, entity.RequestStatusCompleted, ownerID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusCompleted, updated.Status)
	assert.NotNil(t, updated.CompletionDate)
}

func TestRequestService_DeleteRequest_CascadesLedger(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	request := activeRequest(ownerID)

	repos.requests.EXPECT().
		FindByID(ctx, request.ID).
		Return(request, nil)

	repos.ledger.EXPECT().
		DeleteByRequest(ctx, request.ID).
		Return(nil)

	repos.requests.EXPECT().
		Delete(ctx, request.ID).
		Return(nil)

	err := service.DeleteRequest(ctx, request.ID, ownerID)
	require.NoError(t, err)
}

func TestRequestService_ExpireOverdue(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	now := time.Now()
	first := activeRequest(uuid.New())
	second := activeRequest(uuid.New())

	repos.requests.EXPECT().
		FindExpiredActive(ctx, now).
		Return([]*entity.Request{first, second}, nil)

	repos.requests.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Request")).
		Run(func(args mock.Arguments) {
			expired := args.Get(1).(*entity.Request)
			assert.Equal(t, entity.RequestStatusCancelled, expired.Status)
			assert.True(t, expired.Archived)
			assert.True(t, expired.IsExpired)
		}).
		Return(nil).
		Times(2)

	repos.notifications.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(args mock.Arguments) {
			notification := args.Get(1).(*entity.Notification)
			assert.Equal(t, entity.NotificationTypeRequestExpired, notification.Type)
			assert.False(t, notification.ActionNeeded)
		}).
		Return(nil).
		Times(2)

	expired, err := service.ExpireOverdue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, expired)
}

func TestRequestService_ExpireOverdue_NothingDue(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	now := time.Now()

	repos.requests.EXPECT().
		FindExpiredActive(ctx, now).
		Return([]*entity.Request{}, nil)

	expired, err := service.ExpireOverdue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, expired)
}

func TestRequestService_FilterRequests_DistancePreNarrowsAndExactFilters(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()

	lat, lon := 0.0, 0.0
	maxMeters := 50000.0
	near := activeRequest(uuid.New())
	near.Latitude, near.Longitude = 0.1, 0.1
	far := activeRequest(uuid.New())
	far.Latitude, far.Longitude = 0.0, 1.0 // about 111 km away

	repos.requests.EXPECT().
		FindNearby(ctx, lat, lon, maxMeters/111000.0).
		Return([]*entity.Request{near, far}, nil)

	requests, err := service.FilterRequests(ctx, &usecase.FilterRequestsInput{
		Latitude:          &lat,
		Longitude:         &lon,
		MaxDistanceMeters: &maxMeters,
	})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, near.ID, requests[0].ID)
}

func TestRequestService_FilterRequests_CategoryOnly(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()

	errands := activeRequest(uuid.New())
	transport := activeRequest(uuid.New())
	transport.Category = "transport"

	repos.requests.EXPECT().
		FindAll(ctx).
		Return([]*entity.Request{errands, transport}, nil)

	requests, err := service.FilterRequests(ctx, &usecase.FilterRequestsInput{Category: "transport"})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, transport.ID, requests[0].ID)
}

func TestRequestService_GetActiveRequests_MergesStatuses(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()

	active := activeRequest(uuid.New())
	inProgress := activeRequest(uuid.New())
	inProgress.Status = entity.RequestStatusInProgress

	repos.requests.EXPECT().
		FindByStatus(ctx, entity.RequestStatusActive).
		Return([]*entity.Request{active}, nil)

	repos.requests.EXPECT().
		FindByStatus(ctx, entity.RequestStatusInProgress).
		Return([]*entity.Request{inProgress}, nil)

	requests, err := service.GetActiveRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, requests, 2)
}

func TestRequestService_GetRequestByID_WrapsRepositoryError(t *testing.T) {
	service, repos := newRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	repos.requests.EXPECT().
		FindByID(ctx, requestID).
		Return(nil, errors.New("connection reset"))

	_, err := service.GetRequestByID(ctx, requestID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrRequestNotFound)
}
