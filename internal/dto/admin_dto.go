package dto

import "rokto.app/bloodlink/internal/model"

type UpdateUserStatusInput struct {
	Status string `json:"status" binding:"required,oneof=active blocked"`
}

type UpdateUserRoleInput struct {
	Role string `json:"role" binding:"required,oneof=donor volunteer admin"`
}

type UserFilter struct {
	PageQuery
	Status string `form:"status"`
}

type PaginatedUsers struct {
	Data []model.User   `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

type DonorSearchQuery struct {
	BloodGroup string `form:"blood_group" binding:"required,bloodgroup"`
	District   string `form:"district" binding:"required"`
	Upazila    string `form:"upazila" binding:"required"`
}
