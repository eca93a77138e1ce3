package repository

import (
	"context"
	"errors"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHelpHistoryNotFound is returned when a ledger entry is not found.
var ErrHelpHistoryNotFound = errors.New("help history entry not found")

// HelpHistoryRepository defines the interface for the helper engagement
// ledger. It carries no business rules beyond pair uniqueness: the lifecycle
// engine is the only legitimate mutator of entry statuses, and the repository
// only guarantees that no two non-terminal entries exist for the same
// (request, helper) pair.
type HelpHistoryRepository interface {
	// Create appends a new ledger entry. Returns a conflict error when a
	// non-terminal entry for the same (request, helper) pair already exists.
	Create(ctx context.Context, entry *entity.HelpHistory) error

	// FindByRequest retrieves all ledger entries for a request.
	FindByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.HelpHistory, error)

	// FindByRequestAndStatus retrieves a request's entries with the given status.
	FindByRequestAndStatus(ctx context.Context, requestID uuid.UUID, status entity.HelpStatus) ([]*entity.HelpHistory, error)

	// FindNonTerminal retrieves the single unresolved entry for a
	// (request, helper) pair, or ErrHelpHistoryNotFound.
	FindNonTerminal(ctx context.Context, requestID, helperID uuid.UUID) (*entity.HelpHistory, error)

	// FindByRequestHelperAndStatus retrieves the entry for a (request, helper)
	// pair with the given status, or ErrHelpHistoryNotFound.
	FindByRequestHelperAndStatus(ctx context.Context, requestID, helperID uuid.UUID, status entity.HelpStatus) (*entity.HelpHistory, error)

	// FindByHelperAndStatus retrieves a helper's entries with the given status.
	FindByHelperAndStatus(ctx context.Context, helperID uuid.UUID, status entity.HelpStatus) ([]*entity.HelpHistory, error)

	// Update persists status and end date changes to an existing entry.
	Update(ctx context.Context, entry *entity.HelpHistory) error

	// DeleteByRequest removes all entries for a request. Only used by the
	// legacy request hard-delete cascade.
	DeleteByRequest(ctx context.Context, requestID uuid.UUID) error
}
