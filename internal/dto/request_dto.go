package dto

import (
	"rokto.app/bloodlink/internal/model"
)

type CreateRequestInput struct {
	RecipientName string `json:"recipient_name" binding:"required,min=2,max=100"`
	District      string `json:"district" binding:"required"`
	Upazila       string `json:"upazila" binding:"required"`
	Street        string `json:"street" binding:"required"`
	Hospital      string `json:"hospital" binding:"required"`
	BloodGroup    string `json:"blood_group" binding:"required,bloodgroup"`
	DonationDate  string `json:"donation_date" binding:"required,datetime=2006-01-02"`
	DonationTime  string `json:"donation_time" binding:"required,datetime=15:04"`
	Message       string `json:"message"`
}

type UpdateRequestInput struct {
	RecipientName *string `json:"recipient_name" binding:"omitempty,min=2,max=100"`
	District      *string `json:"district"`
	Upazila       *string `json:"upazila"`
	Street        *string `json:"street"`
	Hospital      *string `json:"hospital"`
	BloodGroup    *string `json:"blood_group" binding:"omitempty,bloodgroup"`
	DonationDate  *string `json:"donation_date" binding:"omitempty,datetime=2006-01-02"`
	DonationTime  *string `json:"donation_time" binding:"omitempty,datetime=15:04"`
	Message       *string `json:"message"`
}

type UpdateStatusInput struct {
	Status model.RequestStatus `json:"status" binding:"required"`
}

type RequestFilter struct {
	PageQuery
	Status string `form:"status"`
}

type PaginatedRequests struct {
	Data []model.DonationRequest `json:"data"`
	Meta PaginationMeta          `json:"meta"`
}
