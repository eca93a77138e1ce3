// Package model contains the GORM-specific persistence structs.
package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestModel is the GORM-specific struct for the 'requests' table.
// Status is a cache derived from the help history ledger; archived rows stay
// in place and are excluded by the default queries.
type RequestModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Description    string    `gorm:"type:text;not null"`
	Category       string    `gorm:"type:text;not null;index"`
	Latitude       float64   `gorm:"type:decimal(10,8);not null;index"`
	Longitude      float64   `gorm:"type:decimal(11,8);not null;index"`
	Status         string    `gorm:"type:text;not null;index"`
	DeadlineDate   time.Time `gorm:"not null;index"`
	CreationDate   time.Time `gorm:"not null"`
	CompletionDate *time.Time
	Archived       bool                  `gorm:"not null;default:false;index"`
	IsExpired      bool                  `gorm:"not null;default:false"`
	Helpers        []*RequestHelperModel `gorm:"foreignKey:RequestID"`
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "requests"
}

// RequestHelperModel is the GORM-specific struct for the 'request_helpers'
// join table. A row exists for every helper whose completion was confirmed.
type RequestHelperModel struct {
	RequestID uuid.UUID `gorm:"type:uuid;primary_key"`
	HelperID  uuid.UUID `gorm:"type:uuid;primary_key;index"`
}

// TableName explicitly sets the table name for GORM.
func (RequestHelperModel) TableName() string {
	return "request_helpers"
}
