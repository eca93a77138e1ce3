// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mutualaid/internal/domain/entity"
	domainerrors "mutualaid/internal/domain/errors"
	"mutualaid/internal/domain/repository"
	"mutualaid/internal/geo"
	"mutualaid/internal/usecase"

	"github.com/google/uuid"
)

type requestService struct {
	logger      *slog.Logger
	txManager   repository.TransactionManager
	requestRepo repository.RequestRepository
	ledgerRepo  repository.HelpHistoryRepository
	userRepo    repository.UserRepository
}

// NewRequestService creates the request lifecycle engine.
func NewRequestService(
	logger *slog.Logger,
	txManager repository.TransactionManager,
	requestRepo repository.RequestRepository,
	ledgerRepo repository.HelpHistoryRepository,
	userRepo repository.UserRepository,
) usecase.RequestUsecase {
	return &requestService{
		logger:      logger,
		txManager:   txManager,
		requestRepo: requestRepo,
		ledgerRepo:  ledgerRepo,
		userRepo:    userRepo,
	}
}

// CreateRequest posts a new help request. All validation happens before any
// write so a failure never leaves partial state.
func (s *requestService) CreateRequest(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateRequestInput) (*entity.Request, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("description is required")
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category is required")
	}
	if !geo.ValidCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	now := time.Now()
	if !input.DeadlineDate.After(now) {
		return nil, domainerrors.ErrPastDeadline
	}

	if _, err := s.userRepo.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find request owner: %w", err)
	}

	request := &entity.Request{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Description:  input.Description,
		Category:     input.Category,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Status:       entity.RequestStatusActive,
		DeadlineDate: input.DeadlineDate,
		CreationDate: now,
		Archived:     false,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return request, nil
}

// GetRequestByID retrieves a single non-archived request.
func (s *requestService) GetRequestByID(ctx context.Context, requestID uuid.UUID) (*entity.Request, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, fmt.Errorf("failed to find request by ID: %w", err)
	}

	return request, nil
}

// GetActiveRequests retrieves everything currently open for helpers:
// ACTIVE requests plus IN_PROGRESS ones.
func (s *requestService) GetActiveRequests(ctx context.Context) ([]*entity.Request, error) {
	active, err := s.requestRepo.FindByStatus(ctx, entity.RequestStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to find active requests: %w", err)
	}

	inProgress, err := s.requestRepo.FindByStatus(ctx, entity.RequestStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("failed to find in-progress requests: %w", err)
	}

	return append(active, inProgress...), nil
}

// GetUserRequests retrieves the requests a user posted.
func (s *requestService) GetUserRequests(ctx context.Context, userID uuid.UUID) ([]*entity.Request, error) {
	requests, err := s.requestRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find requests by owner: %w", err)
	}

	return requests, nil
}

// GetHelpedRequests retrieves every request the user ever responded to.
func (s *requestService) GetHelpedRequests(ctx context.Context, helperID uuid.UUID) ([]*entity.Request, error) {
	requests, err := s.requestRepo.FindHelpedByUser(ctx, helperID)
	if err != nil {
		return nil, fmt.Errorf("failed to find helped requests: %w", err)
	}

	return requests, nil
}

// GetActiveHelpRequests retrieves requests the user is currently helping with.
func (s *requestService) GetActiveHelpRequests(ctx context.Context, helperID uuid.UUID) ([]*entity.Request, error) {
	requests, err := s.requestRepo.FindByHelperAndStatus(ctx, helperID, entity.HelpStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("failed to find active help requests: %w", err)
	}

	return requests, nil
}

// GetCompletedHelpRequests retrieves requests where the user's help was confirmed.
func (s *requestService) GetCompletedHelpRequests(ctx context.Context, helperID uuid.UUID) ([]*entity.Request, error) {
	requests, err := s.requestRepo.FindByHelperAndStatus(ctx, helperID, entity.HelpStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to find completed help requests: %w", err)
	}

	return requests, nil
}

// GetArchivedRequests retrieves a user's archived requests.
func (s *requestService) GetArchivedRequests(ctx context.Context, userID uuid.UUID) ([]*entity.Request, error) {
	requests, err := s.requestRepo.FindArchivedByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find archived requests: %w", err)
	}

	return requests, nil
}

// GetCompletedRequests retrieves a user's completed requests.
func (s *requestService) GetCompletedRequests(ctx context.Context, userID uuid.UUID) ([]*entity.Request, error) {
	requests, err := s.requestRepo.FindByOwnerAndStatus(ctx, userID, entity.RequestStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to find completed requests: %w", err)
	}

	return requests, nil
}

// FilterRequests selects requests by category, status set and distance. With
// a distance predicate the storage-level bounding query pre-narrows the
// candidate set; exact haversine filtering always runs afterwards, so the
// approximation never affects the final matches.
func (s *requestService) FilterRequests(ctx context.Context, input *usecase.FilterRequestsInput) ([]*entity.Request, error) {
	filter := geo.RequestFilter{
		Category:          input.Category,
		Statuses:          input.Statuses,
		MaxDistanceMeters: input.MaxDistanceMeters,
		Latitude:          input.Latitude,
		Longitude:         input.Longitude,
	}

	var (
		candidates []*entity.Request
		err        error
	)

	if filter.HasDistance() {
		if !geo.ValidCoordinate(*input.Latitude, *input.Longitude) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
		}
		if *input.MaxDistanceMeters <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("max distance must be positive")
		}

		candidates, err = s.requestRepo.FindNearby(ctx, *input.Latitude, *input.Longitude, geo.DegreeRadius(*input.MaxDistanceMeters))
		if err != nil {
			return nil, fmt.Errorf("failed to find nearby requests: %w", err)
		}
	} else {
		candidates, err = s.requestRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to find requests: %w", err)
		}
	}

	return geo.FilterRequests(candidates, filter), nil
}

// RespondToRequest records a helper engagement. The uniqueness guard and the
// ledger insert run in one transaction so a losing concurrent writer observes
// a conflict instead of silently overwriting.
func (s *requestService) RespondToRequest(ctx context.Context, helperID, requestID uuid.UUID) (*entity.HelpHistory, error) {
	var entry *entity.HelpHistory

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		request, err := f.Requests().FindByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return domainerrors.ErrRequestNotFound
			}

			return fmt.Errorf("failed to find request: %w", err)
		}

		if _, err := f.Users().FindByID(ctx, helperID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return fmt.Errorf("failed to find helper: %w", err)
		}

		if request.OwnerID == helperID {
			return domainerrors.ErrOwnRequestResponse
		}

		// Repeated responses for the same unresolved pair are rejected, not
		// merged. A helper whose previous engagement ended may respond again.
		_, err = f.HelpHistories().FindNonTerminal(ctx, requestID, helperID)
		if err == nil {
			return domainerrors.ErrAlreadyResponded
		}
		if !errors.Is(err, repository.ErrHelpHistoryNotFound) {
			return fmt.Errorf("failed to check existing response: %w", err)
		}

		entry = &entity.HelpHistory{
			ID:        uuid.New(),
			RequestID: requestID,
			HelperID:  helperID,
			Status:    entity.HelpStatusInProgress,
			StartDate: time.Now(),
		}

		if err := f.HelpHistories().Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to create help history entry: %w", err)
		}

		return s.syncRequestStatus(ctx, f, request, request.Status)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// CompleteHelp moves the caller's engagement to PENDING_CONFIRMATION and
// emits the action-required notification to the request owner.
func (s *requestService) CompleteHelp(ctx context.Context, requestID, helperID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		request, err := f.Requests().FindByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return domainerrors.ErrRequestNotFound
			}

			return fmt.Errorf("failed to find request: %w", err)
		}

		entry, err := f.HelpHistories().FindByRequestHelperAndStatus(ctx, requestID, helperID, entity.HelpStatusInProgress)
		if err != nil {
			if errors.Is(err, repository.ErrHelpHistoryNotFound) {
				return domainerrors.ErrHelpHistoryNotFound
			}

			return fmt.Errorf("failed to find help history entry: %w", err)
		}

		now := time.Now()
		entry.Status = entity.HelpStatusPendingConfirmation
		entry.EndDate = &now
		if err := f.HelpHistories().Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to update help history entry: %w", err)
		}

		helper, err := f.Users().FindByID(ctx, helperID)
		if err != nil {
			return fmt.Errorf("failed to find helper: %w", err)
		}

		notification := &entity.Notification{
			ID:           uuid.New(),
			UserID:       request.OwnerID,
			RequestID:    &requestID,
			FromUserID:   &helperID,
			Message:      fmt.Sprintf("%s reports having helped with your request %q. Please confirm that you received the help.", helper.Name, request.Description),
			Type:         entity.NotificationTypeHelpCompletion,
			Status:       entity.NotificationStatusUnread,
			ActionNeeded: true,
			ActionURL:    fmt.Sprintf("/requests/%s/confirm-help", requestID),
			CreatedAt:    now,
		}
		if err := f.Notifications().Create(ctx, notification); err != nil {
			return fmt.Errorf("failed to create help completion notification: %w", err)
		}

		return s.syncRequestStatus(ctx, f, request, request.Status)
	})
}

// ConfirmHelpCompletion confirms every pending engagement on the request.
func (s *requestService) ConfirmHelpCompletion(ctx context.Context, requestID, ownerID uuid.UUID) (*entity.Request, error) {
	var request *entity.Request

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		var err error
		request, err = s.findOwnedRequest(ctx, f, requestID, ownerID)
		if err != nil {
			return err
		}

		pending, err := f.HelpHistories().FindByRequestAndStatus(ctx, requestID, entity.HelpStatusPendingConfirmation)
		if err != nil {
			return fmt.Errorf("failed to find pending entries: %w", err)
		}
		if len(pending) == 0 {
			return domainerrors.ErrNoPendingConfirmation
		}

		now := time.Now()
		for _, entry := range pending {
			entry.Status = entity.HelpStatusCompleted
			if entry.EndDate == nil {
				entry.EndDate = &now
			}
			if err := f.HelpHistories().Update(ctx, entry); err != nil {
				return fmt.Errorf("failed to complete help history entry: %w", err)
			}
			request.AddHelper(entry.HelperID)
		}

		if err := s.syncRequestStatus(ctx, f, request, entity.RequestStatusCompleted); err != nil {
			return err
		}

		// The action this notification asked for has been taken; a stale
		// action-required notification is an invariant violation, so the
		// retraction shares the transaction.
		if err := f.Notifications().DeleteByRequestAndType(ctx, requestID, entity.NotificationTypeHelpCompletion); err != nil {
			return fmt.Errorf("failed to delete help completion notification: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return request, nil
}

// RejectHelpCompletion cancels every pending engagement on the request.
func (s *requestService) RejectHelpCompletion(ctx context.Context, requestID, ownerID uuid.UUID) (*entity.Request, error) {
	var request *entity.Request

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		var err error
		request, err = s.findOwnedRequest(ctx, f, requestID, ownerID)
		if err != nil {
			return err
		}

		pending, err := f.HelpHistories().FindByRequestAndStatus(ctx, requestID, entity.HelpStatusPendingConfirmation)
		if err != nil {
			return fmt.Errorf("failed to find pending entries: %w", err)
		}
		if len(pending) == 0 {
			return domainerrors.ErrNoPendingConfirmation
		}

		now := time.Now()
		for _, entry := range pending {
			entry.Status = entity.HelpStatusCancelled
			entry.EndDate = &now
			if err := f.HelpHistories().Update(ctx, entry); err != nil {
				return fmt.Errorf("failed to cancel help history entry: %w", err)
			}
		}

		if err := s.syncRequestStatus(ctx, f, request, entity.RequestStatusActive); err != nil {
			return err
		}

		if err := f.Notifications().DeleteByRequestAndType(ctx, requestID, entity.NotificationTypeHelpCompletion); err != nil {
			return fmt.Errorf("failed to delete help completion notification: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return request, nil
}

// CancelHelp withdraws the caller's own IN_PROGRESS engagement.
func (s *requestService) CancelHelp(ctx context.Context, requestID, helperID uuid.UUID) (*entity.Request, error) {
	var request *entity.Request

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		var err error
		request, err = f.Requests().FindByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return domainerrors.ErrRequestNotFound
			}

			return fmt.Errorf("failed to find request: %w", err)
		}

		entry, err := f.HelpHistories().FindByRequestHelperAndStatus(ctx, requestID, helperID, entity.HelpStatusInProgress)
		if err != nil {
			if errors.Is(err, repository.ErrHelpHistoryNotFound) {
				return domainerrors.ErrHelpHistoryNotFound
			}

			return fmt.Errorf("failed to find help history entry: %w", err)
		}

		now := time.Now()
		entry.Status = entity.HelpStatusCancelled
		entry.EndDate = &now
		if err := f.HelpHistories().Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to cancel help history entry: %w", err)
		}

		return s.syncRequestStatus(ctx, f, request, entity.RequestStatusActive)
	})
	if err != nil {
		return nil, err
	}

	return request, nil
}

// ArchiveRequest soft-deletes a request. Status and ledger entries are left
// untouched so the history stays intact.
func (s *requestService) ArchiveRequest(ctx context.Context, requestID, ownerID uuid.UUID) (*entity.Request, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	if request.OwnerID != ownerID {
		return nil, domainerrors.ErrNotRequestOwner
	}

	request.Archived = true
	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to archive request: %w", err)
	}

	return request, nil
}

// UpdateRequestStatus is the owner's direct status override.
func (s *requestService) UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, status entity.RequestStatus, ownerID uuid.UUID) (*entity.Request, error) {
	if !entity.ValidRequestStatus(status) {
		return nil, domainerrors.ErrInvalidStatus
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	if request.OwnerID != ownerID {
		return nil, domainerrors.ErrNotRequestOwner
	}

	request.Status = status
	if status == entity.RequestStatusCompleted {
		now := time.Now()
		request.CompletionDate = &now
	}

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}

	return request, nil
}

// DeleteRequest hard-deletes a request and cascades its ledger entries.
// Legacy path; archiving is the supported way to remove a request from view.
func (s *requestService) DeleteRequest(ctx context.Context, requestID, ownerID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		request, err := s.findOwnedRequest(ctx, f, requestID, ownerID)
		if err != nil {
			return err
		}

		if err := f.HelpHistories().DeleteByRequest(ctx, requestID); err != nil {
			return fmt.Errorf("failed to delete help history entries: %w", err)
		}

		if err := f.Requests().Delete(ctx, request.ID); err != nil {
			return fmt.Errorf("failed to delete request: %w", err)
		}

		return nil
	})
}

// ExpireOverdue cancels and archives every ACTIVE request whose deadline
// passed. Expired requests are archived in the same transaction, so the query
// never returns them again and re-running the sweep is a no-op.
func (s *requestService) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	expired := 0

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		requests, err := f.Requests().FindExpiredActive(ctx, now)
		if err != nil {
			return fmt.Errorf("failed to find expired requests: %w", err)
		}

		for _, request := range requests {
			request.IsExpired = true
			request.Status = entity.RequestStatusCancelled
			request.Archived = true
			if err := f.Requests().Update(ctx, request); err != nil {
				return fmt.Errorf("failed to expire request: %w", err)
			}

			notification := &entity.Notification{
				ID:           uuid.New(),
				UserID:       request.OwnerID,
				RequestID:    &request.ID,
				Message:      fmt.Sprintf("Your request %q was automatically cancelled because its deadline passed.", request.Description),
				Type:         entity.NotificationTypeRequestExpired,
				Status:       entity.NotificationStatusUnread,
				ActionNeeded: false,
				CreatedAt:    time.Now(),
			}
			if err := f.Notifications().Create(ctx, notification); err != nil {
				return fmt.Errorf("failed to create expiry notification: %w", err)
			}
		}

		expired = len(requests)

		return nil
	})
	if err != nil {
		return 0, err
	}

	if expired > 0 {
		s.logger.Info("expired overdue requests", slog.Int("count", expired))
	}

	return expired, nil
}

// findOwnedRequest loads a request and enforces ownership before any
// mutation in the surrounding transaction.
func (s *requestService) findOwnedRequest(ctx context.Context, f repository.RepositoryFactory, requestID, ownerID uuid.UUID) (*entity.Request, error) {
	request, err := f.Requests().FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	if request.OwnerID != ownerID {
		return nil, domainerrors.ErrNotRequestOwner
	}

	return request, nil
}

// syncRequestStatus recomputes the request's status from its ledger entries
// and persists the request. The ledger is the source of truth; the stored
// status is a derived cache, so it is recomputed at the end of every mutating
// operation instead of trusting prior writes. fallback is the status to use
// when no non-terminal entries remain.
func (s *requestService) syncRequestStatus(ctx context.Context, f repository.RepositoryFactory, request *entity.Request, fallback entity.RequestStatus) error {
	entries, err := f.HelpHistories().FindByRequest(ctx, request.ID)
	if err != nil {
		return fmt.Errorf("failed to load ledger entries: %w", err)
	}

	status, derived := entity.DeriveRequestStatus(entries)
	if !derived {
		status = fallback
	}

	if status == entity.RequestStatusCompleted && request.Status != entity.RequestStatusCompleted {
		now := time.Now()
		request.CompletionDate = &now
	}
	request.Status = status

	if err := f.Requests().Update(ctx, request); err != nil {
		return fmt.Errorf("failed to update request: %w", err)
	}

	return nil
}
