package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// The unique index on (request_id, author_id) enforces one review per
// author per request.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HelperID  uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_request_author"`
	RequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_request_author"`
	Rating    int       `gorm:"not null"`
	Text      string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
