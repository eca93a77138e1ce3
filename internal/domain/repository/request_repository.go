// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRequestNotFound is returned when a request is not found (or archived,
// for the default queries that exclude archived requests).
var ErrRequestNotFound = errors.New("request not found")

// RequestRepository defines the interface for request-related database
// operations. Unless stated otherwise, queries exclude archived requests.
type RequestRepository interface {
	// Create persists a new request.
	Create(ctx context.Context, request *entity.Request) error

	// FindByID retrieves a non-archived request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error)

	// FindAll retrieves all non-archived requests.
	FindAll(ctx context.Context) ([]*entity.Request, error)

	// FindByOwner retrieves all requests posted by a user, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Request, error)

	// FindByOwnerAndStatus retrieves a user's requests in the given status.
	FindByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status entity.RequestStatus) ([]*entity.Request, error)

	// FindByStatus retrieves all requests in the given status.
	FindByStatus(ctx context.Context, status entity.RequestStatus) ([]*entity.Request, error)

	// FindByHelperAndStatus retrieves requests joined through ledger entries
	// where the helper's engagement has the given status.
	FindByHelperAndStatus(ctx context.Context, helperID uuid.UUID, status entity.HelpStatus) ([]*entity.Request, error)

	// FindHelpedByUser retrieves all requests the user ever responded to.
	FindHelpedByUser(ctx context.Context, helperID uuid.UUID) ([]*entity.Request, error)

	// FindArchivedByOwner retrieves a user's archived requests. This is the
	// one query that includes only archived rows.
	FindArchivedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Request, error)

	// FindNearby retrieves non-archived requests inside an approximate
	// bounding box of degreeRadius degrees around the given point. Callers
	// apply exact distance filtering on the result.
	FindNearby(ctx context.Context, lat, lon, degreeRadius float64) ([]*entity.Request, error)

	// FindExpiredActive retrieves non-archived ACTIVE requests whose deadline
	// is before now.
	FindExpiredActive(ctx context.Context, now time.Time) ([]*entity.Request, error)

	// Update persists changes to an existing request, including additions to
	// its confirmed helpers set.
	Update(ctx context.Context, request *entity.Request) error

	// Delete hard-deletes a request. Legacy path, superseded by archiving;
	// ledger entries cascade via DeleteByRequest on the ledger repository.
	Delete(ctx context.Context, id uuid.UUID) error
}
