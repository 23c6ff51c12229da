package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rokto.app/bloodlink/internal/model"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Blog, error)
	FindAll(ctx context.Context, status model.BlogStatus, offset, limit int) ([]model.Blog, int64, error)
	Update(ctx context.Context, blog *model.Blog) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *model.Blog) error {
	return r.db.WithContext(ctx).Create(blog).Error
}

func (r *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	var blog model.Blog
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) FindAll(ctx context.Context, status model.BlogStatus, offset, limit int) ([]model.Blog, int64, error) {
	var blogs []model.Blog
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Blog{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&blogs).Error; err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *model.Blog) error {
	return r.db.WithContext(ctx).Save(blog).Error
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Blog{}, "id = ?", id).Error
}

func (r *blogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Blog{}).Count(&count).Error
	return count, err
}
