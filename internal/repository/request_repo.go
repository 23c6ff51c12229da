package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rokto.app/bloodlink/internal/model"
)

type RequestRepository interface {
	Create(ctx context.Context, req *model.DonationRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DonationRequest, error)
	FindAll(ctx context.Context, status model.RequestStatus, offset, limit int) ([]model.DonationRequest, int64, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID, offset, limit int) ([]model.DonationRequest, int64, error)
	FindRecentByRequester(ctx context.Context, requesterID uuid.UUID, limit int) ([]model.DonationRequest, error)
	Update(ctx context.Context, req *model.DonationRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByRequester(ctx context.Context, requesterID uuid.UUID) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *model.DonationRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DonationRequest, error) {
	var req model.DonationRequest
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Where("id = ?", id).
		First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) FindAll(ctx context.Context, status model.RequestStatus, offset, limit int) ([]model.DonationRequest, int64, error) {
	var requests []model.DonationRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&model.DonationRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *requestRepository) FindByRequester(ctx context.Context, requesterID uuid.UUID, offset, limit int) ([]model.DonationRequest, int64, error) {
	var requests []model.DonationRequest
	var total int64

	query := r.db.WithContext(ctx).
		Model(&model.DonationRequest{}).
		Where("requester_id = ?", requesterID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *requestRepository) FindRecentByRequester(ctx context.Context, requesterID uuid.UUID, limit int) ([]model.DonationRequest, error) {
	var requests []model.DonationRequest
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Limit(limit).
		Find(&requests).Error
	return requests, err
}

func (r *requestRepository) Update(ctx context.Context, req *model.DonationRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *requestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.DonationRequest{}, "id = ?", id).Error
}

func (r *requestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DonationRequest{}).Count(&count).Error
	return count, err
}

func (r *requestRepository) CountByRequester(ctx context.Context, requesterID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.DonationRequest{}).
		Where("requester_id = ?", requesterID).
		Count(&count).Error
	return count, err
}

func (r *requestRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&model.DonationRequest{}).
		Select("status, count(*) as total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
