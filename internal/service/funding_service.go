package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"rokto.app/bloodlink/internal/dto"
	"rokto.app/bloodlink/internal/model"
	"rokto.app/bloodlink/internal/payment"
	"rokto.app/bloodlink/internal/repository"
	"rokto.app/bloodlink/pkg/apperror"
)

type FundingService interface {
	CreateIntent(ctx context.Context, userID uuid.UUID, input dto.CreateIntentInput) (*dto.CreateIntentResponse, error)
	Record(ctx context.Context, userID uuid.UUID, input dto.RecordFundingInput) (*model.Funding, error)
	List(ctx context.Context, q dto.PageQuery) (*dto.PaginatedFundings, error)
	ListMine(ctx context.Context, userID uuid.UUID, q dto.PageQuery) (*dto.PaginatedFundings, error)
}

type fundingService struct {
	repo     repository.FundingRepository
	userRepo repository.UserRepository
	gateway  payment.Gateway
}

func NewFundingService(repo repository.FundingRepository, userRepo repository.UserRepository, gateway payment.Gateway) FundingService {
	return &fundingService{
		repo:     repo,
		userRepo: userRepo,
		gateway:  gateway,
	}
}

func (s *fundingService) CreateIntent(ctx context.Context, userID uuid.UUID, input dto.CreateIntentInput) (*dto.CreateIntentResponse, error) {
	if s.gateway == nil {
		return nil, fmt.Errorf("payment gateway is not configured: %w", apperror.ErrInternal)
	}

	if _, err := s.userRepo.FindByID(ctx, userID.String()); err != nil {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrUnauthorized)
	}

	intentID, clientSecret, err := s.gateway.CreateIntent(ctx, input.Amount, "usd")
	if err != nil {
		return nil, err
	}

	return &dto.CreateIntentResponse{
		ClientSecret:    clientSecret,
		PaymentIntentID: intentID,
	}, nil
}

func (s *fundingService) Record(ctx context.Context, userID uuid.UUID, input dto.RecordFundingInput) (*model.Funding, error) {
	user, err := s.userRepo.FindByID(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrUnauthorized)
	}

	funding := &model.Funding{
		UserID:          user.ID,
		DonorName:       user.Name,
		Amount:          input.Amount,
		Currency:        "usd",
		PaymentIntentID: input.PaymentIntentID,
	}

	// The unique index on payment_intent_id makes replays a hard failure.
	if err := s.repo.Create(ctx, funding); err != nil {
		return nil, fmt.Errorf("failed to record donation: %w", err)
	}

	return funding, nil
}

func (s *fundingService) List(ctx context.Context, q dto.PageQuery) (*dto.PaginatedFundings, error) {
	q.Normalize()
	fundings, total, err := s.repo.FindAll(ctx, q.Offset(), q.Limit)
	if err != nil {
		return nil, err
	}
	return &dto.PaginatedFundings{Data: fundings, Meta: dto.NewPaginationMeta(q, total)}, nil
}

func (s *fundingService) ListMine(ctx context.Context, userID uuid.UUID, q dto.PageQuery) (*dto.PaginatedFundings, error) {
	q.Normalize()
	fundings, total, err := s.repo.FindByUser(ctx, userID, q.Offset(), q.Limit)
	if err != nil {
		return nil, err
	}
	return &dto.PaginatedFundings{Data: fundings, Meta: dto.NewPaginationMeta(q, total)}, nil
}
