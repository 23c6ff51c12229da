package dto

import "rokto.app/bloodlink/internal/model"

type CreateBlogInput struct {
	Title        string  `json:"title" binding:"required,min=3,max=200"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Content      string  `json:"content" binding:"required"`
}

type UpdateBlogInput struct {
	Title        *string `json:"title" binding:"omitempty,min=3,max=200"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Content      *string `json:"content"`
}

type BlogFilter struct {
	PageQuery
	Status string `form:"status"`
}

type PaginatedBlogs struct {
	Data []model.Blog   `json:"data"`
	Meta PaginationMeta `json:"meta"`
}
