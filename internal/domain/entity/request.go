// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle status of a help request.
type RequestStatus string

const (
	// RequestStatusActive means the request is open and waiting for helpers.
	RequestStatusActive RequestStatus = "ACTIVE"
	// RequestStatusInProgress means at least one helper has an unresolved engagement.
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	// RequestStatusCompleted means the owner confirmed the help.
	RequestStatusCompleted RequestStatus = "COMPLETED"
	// RequestStatusCancelled means the request was cancelled (e.g. expired).
	RequestStatusCancelled RequestStatus = "CANCELLED"
)

// ValidRequestStatus reports whether s is one of the known request statuses.
func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestStatusActive, RequestStatusInProgress, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}

	return false
}

// Request is a posted need for help with a location, category and deadline.
// Archived is an orthogonal soft-delete flag, not a status value: archived
// requests keep their status and ledger but are excluded from default queries.
type Request struct {
	ID             uuid.UUID     `json:"id"`              // The Global Unique Identifier (GUID) for the request.
	OwnerID        uuid.UUID     `json:"owner_id"`        // The ID of the user who posted the request.
	Description    string        `json:"description"`     // What kind of help is needed.
	Category       string        `json:"category"`        // Free-form category used for filtering.
	Latitude       float64       `json:"latitude"`        // The geographic latitude of the request.
	Longitude      float64       `json:"longitude"`       // The geographic longitude of the request.
	Status         RequestStatus `json:"status"`          // Current lifecycle status.
	DeadlineDate   time.Time     `json:"deadline_date"`   // Must be strictly in the future at creation.
	CreationDate   time.Time     `json:"creation_date"`   // Timestamp of when the request was created.
	CompletionDate *time.Time    `json:"completion_date"` // Set when the request reaches COMPLETED.
	Archived       bool          `json:"archived"`        // Soft-delete flag.
	IsExpired      bool          `json:"is_expired"`      // Set by the expiry sweep.
	Helpers        []uuid.UUID   `json:"helpers"`         // Users whose help on this request was confirmed.
}

// HasHelper reports whether userID is already in the confirmed helpers set.
func (r *Request) HasHelper(userID uuid.UUID) bool {
	for _, id := range r.Helpers {
		if id == userID {
			return true
		}
	}

	return false
}

// AddHelper adds userID to the confirmed helpers set, ignoring duplicates.
func (r *Request) AddHelper(userID uuid.UUID) {
	if !r.HasHelper(userID) {
		r.Helpers = append(r.Helpers, userID)
	}
}

// DeriveRequestStatus recomputes a request's status from its ledger entries.
// The ledger is the source of truth: while any entry is non-terminal the
// request is IN_PROGRESS. When no non-terminal entries remain the result is
// operation-dependent (COMPLETED after a confirmation, ACTIVE after a
// rejection or withdrawal), so derived is false and the caller supplies the
// fallback.
func DeriveRequestStatus(entries []*HelpHistory) (status RequestStatus, derived bool) {
	for _, entry := range entries {
		if !entry.Status.Terminal() {
			return RequestStatusInProgress, true
		}
	}

	return "", false
}
