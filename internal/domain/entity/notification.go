package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification types emitted by the lifecycle and review flows.
const (
	// NotificationTypeHelpCompletion asks the request owner to confirm or
	// reject a helper's reported completion. Action-required: it is retracted
	// once the owner confirms, rejects, or leaves a review.
	NotificationTypeHelpCompletion = "HELP_COMPLETION"
	// NotificationTypeRequestExpired informs the owner a request was
	// auto-cancelled by the expiry sweep.
	NotificationTypeRequestExpired = "REQUEST_EXPIRED"
	// NotificationTypeReviewReceived informs a helper about a new review.
	NotificationTypeReviewReceived = "REVIEW_RECEIVED"
)

// NotificationStatus is the read state of a notification.
type NotificationStatus string

const (
	// NotificationStatusUnread marks a notification the recipient has not seen.
	NotificationStatusUnread NotificationStatus = "UNREAD"
	// NotificationStatusRead marks a notification the recipient has seen.
	NotificationStatusRead NotificationStatus = "READ"
)

// Notification is a polled message for a user, optionally linked to a request
// and a sending user. Action-required notifications carry an ActionURL
// pointing at the operation that resolves them; deleting the notification
// once that action is taken is part of lifecycle correctness, not cleanup.
type Notification struct {
	ID           uuid.UUID          `json:"id"`             // The Global Unique Identifier (GUID) for the notification.
	UserID       uuid.UUID          `json:"user_id"`        // The recipient.
	RequestID    *uuid.UUID         `json:"request_id"`     // Optional linked request.
	FromUserID   *uuid.UUID         `json:"from_user_id"`   // Optional user the notification originates from.
	Message      string             `json:"message"`        // Human-readable message body.
	Type         string             `json:"type"`           // One of the NotificationType constants.
	Status       NotificationStatus `json:"status"`         // UNREAD or READ.
	ActionNeeded bool               `json:"action_needed"`  // Whether the recipient must act on it.
	ActionURL    string             `json:"action_url"`     // Where the required action lives, if any.
	CreatedAt    time.Time          `json:"created_at"`     // Timestamp of creation.
}
