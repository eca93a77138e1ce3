package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// The (request_id, type) index backs the targeted retraction of resolved
// action-required notifications.
type NotificationModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	RequestID    *uuid.UUID `gorm:"type:uuid;index:idx_notifications_request_type"`
	FromUserID   *uuid.UUID `gorm:"type:uuid"`
	Message      string     `gorm:"type:text;not null"`
	Type         string     `gorm:"type:text;not null;index:idx_notifications_request_type"`
	Status       string     `gorm:"type:text;not null;default:'UNREAD'"`
	ActionNeeded bool       `gorm:"not null;default:false"`
	ActionURL    string     `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
