// Package usecase defines the application's use case interfaces and their
// typed inputs.
package usecase

import (
	"context"
	"time"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRequestInput is the validated input for posting a help request.
// Conversion from the wire format into this struct happens at the delivery
// boundary; by the time it reaches the lifecycle engine the fields are typed.
type CreateRequestInput struct {
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	DeadlineDate time.Time `json:"deadline_date"`
}

// FilterRequestsInput describes the request listing filters. Distance
// filtering activates only when MaxDistanceMeters, Latitude and Longitude are
// all present; Category "all" (or empty) means no category filter; Statuses
// is an OR-membership test when non-empty.
type FilterRequestsInput struct {
	Category          string                 `json:"category"`
	Statuses          []entity.RequestStatus `json:"statuses"`
	MaxDistanceMeters *float64               `json:"max_distance_meters"`
	Latitude          *float64               `json:"latitude"`
	Longitude         *float64               `json:"longitude"`
}

// RequestUsecase is the request lifecycle engine: it owns every status
// transition of a Request and of its help-history ledger entries.
type RequestUsecase interface {
	// CreateRequest posts a new help request with status ACTIVE.
	CreateRequest(ctx context.Context, ownerID uuid.UUID, input *CreateRequestInput) (*entity.Request, error)

	// GetRequestByID retrieves a single non-archived request.
	GetRequestByID(ctx context.Context, requestID uuid.UUID) (*entity.Request, error)

	// GetActiveRequests retrieves all ACTIVE and IN_PROGRESS requests.
	GetActiveRequests(ctx context.Context) ([]*entity.Request, error)

	// GetUserRequests retrieves the requests a user posted, newest first.
	GetUserRequests(ctx context.Context, userID uuid.UUID) ([]*entity.Request, error)

	// GetHelpedRequests retrieves every request the user ever responded to.
	GetHelpedRequests(ctx context.Context, helperID uuid.UUID) ([]*entity.Request, error)

	// GetActiveHelpRequests retrieves requests the user is currently helping with.
	GetActiveHelpRequests(ctx context.Context, helperID uuid.UUID) ([]*entity.Request, error)

	// GetCompletedHelpRequests retrieves requests where the user's help was confirmed.
	GetCompletedHelpRequests(ctx context.Context, helperID uuid.UUID) ([]*entity.Request, error)

	// GetArchivedRequests retrieves a user's archived requests.
	GetArchivedRequests(ctx context.Context, userID uuid.UUID) ([]*entity.Request, error)

	// GetCompletedRequests retrieves a user's completed requests.
	GetCompletedRequests(ctx context.Context, userID uuid.UUID) ([]*entity.Request, error)

	// FilterRequests selects requests by category, status set and distance.
	FilterRequests(ctx context.Context, input *FilterRequestsInput) ([]*entity.Request, error)

	// RespondToRequest records a helper's engagement: a new IN_PROGRESS
	// ledger entry plus the request moving to IN_PROGRESS.
	RespondToRequest(ctx context.Context, helperID, requestID uuid.UUID) (*entity.HelpHistory, error)

	// CompleteHelp moves the caller's engagement to PENDING_CONFIRMATION and
	// notifies the request owner.
	CompleteHelp(ctx context.Context, requestID, helperID uuid.UUID) error

	// ConfirmHelpCompletion (owner only) confirms every pending engagement,
	// records the helpers, and completes the request when no engagements
	// remain unresolved.
	ConfirmHelpCompletion(ctx context.Context, requestID, ownerID uuid.UUID) (*entity.Request, error)

	// RejectHelpCompletion (owner only) cancels every pending engagement and
	// reverts the request to ACTIVE when no engagements remain in progress.
	RejectHelpCompletion(ctx context.Context, requestID, ownerID uuid.UUID) (*entity.Request, error)

	// CancelHelp withdraws the caller's own IN_PROGRESS engagement.
	CancelHelp(ctx context.Context, requestID, helperID uuid.UUID) (*entity.Request, error)

	// ArchiveRequest (owner only) soft-deletes a request without touching its
	// status or ledger.
	ArchiveRequest(ctx context.Context, requestID, ownerID uuid.UUID) (*entity.Request, error)

	// UpdateRequestStatus (owner only) directly overrides the request status,
	// e.g. manual COMPLETED marking.
	UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, status entity.RequestStatus, ownerID uuid.UUID) (*entity.Request, error)

	// DeleteRequest (owner only) hard-deletes a request and its ledger
	// entries. Legacy path, superseded by ArchiveRequest.
	DeleteRequest(ctx context.Context, requestID, ownerID uuid.UUID) error

	// ExpireOverdue cancels and archives every ACTIVE request whose deadline
	// passed, notifying the owners. Idempotent; invoked by the sweeper on a
	// fixed interval and safe under overlapping invocations. Returns the
	// number of requests expired.
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}
