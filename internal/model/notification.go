package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationRequestClaimed = "request_claimed"
	NotificationStatusChanged  = "status_changed"
)

type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string     `gorm:"size:50;not null" json:"type"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	RequestID *uuid.UUID `gorm:"type:uuid" json:"request_id,omitempty"`
	Read      bool       `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
