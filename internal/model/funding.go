package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Funding records a completed monetary donation confirmed by the
// payment gateway. Amount is stored in the smallest currency unit.
type Funding struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID" json:"user"`
	DonorName       string    `gorm:"size:100;not null" json:"donor_name"`
	Amount          int64     `gorm:"not null" json:"amount"`
	Currency        string    `gorm:"size:3;not null;default:usd" json:"currency"`
	PaymentIntentID string    `gorm:"size:255;uniqueIndex;not null" json:"payment_intent_id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (f *Funding) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
