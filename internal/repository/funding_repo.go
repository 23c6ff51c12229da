package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rokto.app/bloodlink/internal/model"
)

type FundingRepository interface {
	Create(ctx context.Context, funding *model.Funding) error
	FindAll(ctx context.Context, offset, limit int) ([]model.Funding, int64, error)
	FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.Funding, int64, error)
	TotalRaised(ctx context.Context) (int64, error)
}

type fundingRepository struct {
	db *gorm.DB
}

func NewFundingRepository(db *gorm.DB) FundingRepository {
	return &fundingRepository{db: db}
}

func (r *fundingRepository) Create(ctx context.Context, funding *model.Funding) error {
	return r.db.WithContext(ctx).Create(funding).Error
}

func (r *fundingRepository) FindAll(ctx context.Context, offset, limit int) ([]model.Funding, int64, error) {
	var fundings []model.Funding
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Funding{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&fundings).Error; err != nil {
		return nil, 0, err
	}

	return fundings, total, nil
}

func (r *fundingRepository) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.Funding, int64, error) {
	var fundings []model.Funding
	var total int64

	query := r.db.WithContext(ctx).
		Model(&model.Funding{}).
		Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&fundings).Error; err != nil {
		return nil, 0, err
	}

	return fundings, total, nil
}

func (r *fundingRepository) TotalRaised(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Funding{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
