package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity referenced by the lifecycle core. Authentication
// and profile management live outside this service; the core only reads
// identity and maintains the cached rating.
type User struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email     string    `json:"email"`      // The user's primary contact email.
	Name      string    `json:"name"`       // The user's display name.
	Rating    int       `json:"rating"`     // Cached rounded mean of received review ratings, 0 when unreviewed.
	CreatedAt time.Time `json:"created_at"` // Timestamp of account creation.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
