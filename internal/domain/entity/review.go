package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a request owner's rating of a helper's work on one request.
// Immutable once created; at most one review per (request, author) pair.
type Review struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the review.
	HelperID  uuid.UUID `json:"helper_id"`  // The helper being reviewed.
	AuthorID  uuid.UUID `json:"author_id"`  // The request owner writing the review.
	RequestID uuid.UUID `json:"request_id"` // The request the help was given for.
	Rating    int       `json:"rating"`     // 1..5.
	Text      string    `json:"text"`       // Free-form review text.
	CreatedAt time.Time `json:"created_at"` // Timestamp of creation.
}

// AggregateRating computes a user's displayed rating as the rounded mean of
// the given review ratings, defaulting to 0 when there are none. Always a
// full recompute; per-user review volume is small enough that incremental
// maintenance is not worth the bookkeeping.
func AggregateRating(reviews []*Review) int {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	mean := float64(sum) / float64(len(reviews))

	return int(mean + 0.5)
}
