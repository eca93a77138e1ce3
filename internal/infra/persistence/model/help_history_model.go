package model

import (
	"time"

	"github.com/google/uuid"
)

// HelpHistoryModel is the GORM-specific struct for the 'help_histories' table.
// The partial unique index on (request_id, helper_id) WHERE status IN
// ('IN_PROGRESS', 'PENDING_CONFIRMATION') lives in the migration; it makes the
// one-unresolved-engagement-per-pair rule hold under concurrent inserts.
type HelpHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequestID uuid.UUID `gorm:"type:uuid;not null;index:idx_help_histories_request_helper"`
	HelperID  uuid.UUID `gorm:"type:uuid;not null;index:idx_help_histories_request_helper;index"`
	Status    string    `gorm:"type:text;not null;index"`
	StartDate time.Time `gorm:"not null"`
	EndDate   *time.Time
}

// TableName explicitly sets the table name for GORM.
func (HelpHistoryModel) TableName() string {
	return "help_histories"
}
