package entity

import (
	"time"

	"github.com/google/uuid"
)

// HelpStatus is the status of a single helper engagement on a request.
type HelpStatus string

const (
	// HelpStatusInProgress means the helper is currently working on the request.
	HelpStatusInProgress HelpStatus = "IN_PROGRESS"
	// HelpStatusPendingConfirmation means the helper reported completion and
	// the request owner has not yet confirmed or rejected it.
	HelpStatusPendingConfirmation HelpStatus = "PENDING_CONFIRMATION"
	// HelpStatusCompleted means the owner confirmed the help.
	HelpStatusCompleted HelpStatus = "COMPLETED"
	// HelpStatusCancelled means the engagement was withdrawn or rejected.
	HelpStatusCancelled HelpStatus = "CANCELLED"
)

// Terminal reports whether the status is final. At most one non-terminal
// entry may exist per (request, helper) pair at any time.
func (s HelpStatus) Terminal() bool {
	return s == HelpStatusCompleted || s == HelpStatusCancelled
}

// HelpHistory is a ledger entry recording one helper engagement against a
// request. Entries are append-mostly: only their status and end date mutate,
// and they are never deleted except when cascading with a request hard delete.
type HelpHistory struct {
	ID        uuid.UUID  `json:"id"`         // The Global Unique Identifier (GUID) for the ledger entry.
	RequestID uuid.UUID  `json:"request_id"` // The request this engagement belongs to.
	HelperID  uuid.UUID  `json:"helper_id"`  // The user providing the help.
	Status    HelpStatus `json:"status"`     // Current engagement status.
	StartDate time.Time  `json:"start_date"` // When the helper responded.
	EndDate   *time.Time `json:"end_date"`   // Set when the engagement reaches a terminal or pending state.
}
