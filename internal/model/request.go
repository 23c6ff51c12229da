package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestStatus is the closed set of donation request states.
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
	StatusCanceled   RequestStatus = "canceled"
)

// DonorPlaceholder fills the donor fields of a request until someone claims it.
const DonorPlaceholder = "not assigned"

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s RequestStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// CanTransition reports whether moving from s to target is a legal
// lifecycle step. Completed is reachable only from in_progress.
func (s RequestStatus) CanTransition(target RequestStatus) bool {
	if s.Terminal() || !target.Valid() || s == target {
		return false
	}
	switch s {
	case StatusPending:
		return target == StatusInProgress || target == StatusCanceled
	case StatusInProgress:
		return target == StatusPending || target == StatusCompleted || target == StatusCanceled
	}
	return false
}

type DonationRequest struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	RequesterID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"requester_id"`
	Requester      User          `gorm:"foreignKey:RequesterID" json:"requester"`
	RequesterName  string        `gorm:"size:100;not null" json:"requester_name"`
	RequesterEmail string        `gorm:"size:100;not null" json:"requester_email"`
	RecipientName  string        `gorm:"size:100;not null" json:"recipient_name"`
	District       string        `gorm:"size:50;not null;index" json:"district"`
	Upazila        string        `gorm:"size:50;not null" json:"upazila"`
	Street         string        `gorm:"size:255;not null" json:"street"`
	Hospital       string        `gorm:"size:150;not null" json:"hospital"`
	BloodGroup     string        `gorm:"size:5;not null;index" json:"blood_group"`
	DonationDate   string        `gorm:"size:10;not null" json:"donation_date"`
	DonationTime   string        `gorm:"size:5;not null" json:"donation_time"`
	Message        string        `gorm:"type:text" json:"message"`
	DonorName      string        `gorm:"size:100;not null" json:"donor_name"`
	DonorEmail     string        `gorm:"size:100;not null" json:"donor_email"`
	Status         RequestStatus `gorm:"size:20;not null;default:pending;index" json:"status"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *DonationRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Claimed reports whether a donor has taken this request.
func (r *DonationRequest) Claimed() bool {
	return r.DonorEmail != "" && r.DonorEmail != DonorPlaceholder
}
