package dto

import "rokto.app/bloodlink/internal/model"

type RegisterInput struct {
	Name       string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" form:"email" binding:"required,email"`
	Password   string `json:"password" form:"password" binding:"required,min=8"`
	BloodGroup string `json:"blood_group" form:"blood_group" binding:"required,bloodgroup"`
	District   string `json:"district" form:"district" binding:"required"`
	Upazila    string `json:"upazila" form:"upazila" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int64       `json:"expires_in"`
	User        *model.User `json:"user"`
}

type UpdateProfileInput struct {
	Name       *string `json:"name" form:"name" binding:"omitempty,min=2,max=100"`
	BloodGroup *string `json:"blood_group" form:"blood_group" binding:"omitempty,bloodgroup"`
	District   *string `json:"district" form:"district"`
	Upazila    *string `json:"upazila" form:"upazila"`
}
