package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rokto.app/bloodlink/internal/dto"
	"rokto.app/bloodlink/internal/location"
	"rokto.app/bloodlink/internal/model"
	"rokto.app/bloodlink/internal/repository"
	"rokto.app/bloodlink/pkg/apperror"
)

type RequestService interface {
	Create(ctx context.Context, userID uuid.UUID, input dto.CreateRequestInput) (*model.DonationRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.DonationRequest, error)
	ListPending(ctx context.Context, q dto.PageQuery) (*dto.PaginatedRequests, error)
	ListAll(ctx context.Context, filter dto.RequestFilter) (*dto.PaginatedRequests, error)
	ListMine(ctx context.Context, userID uuid.UUID, q dto.PageQuery) (*dto.PaginatedRequests, error)
	Claim(ctx context.Context, userID uuid.UUID, requestID uuid.UUID) (*model.DonationRequest, error)
	Update(ctx context.Context, userID uuid.UUID, requestID uuid.UUID, input dto.UpdateRequestInput) (*model.DonationRequest, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, requestID uuid.UUID, target model.RequestStatus) (*model.DonationRequest, error)
	Delete(ctx context.Context, userID uuid.UUID, requestID uuid.UUID) error
}

type requestService struct {
	repo     repository.RequestRepository
	userRepo repository.UserRepository
	notifier Notifier
}

func NewRequestService(repo repository.RequestRepository, userRepo repository.UserRepository, notifier Notifier) RequestService {
	return &requestService{
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

func (s *requestService) Create(ctx context.Context, userID uuid.UUID, input dto.CreateRequestInput) (*model.DonationRequest, error) {
	user, err := s.userRepo.FindByID(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrUnauthorized)
	}

	// Only donors open requests; elevated roles manage existing ones.
	if user.Role.Name != model.RoleDonor {
		return nil, fmt.Errorf("only donors can create donation requests: %w", apperror.ErrForbidden)
	}

	if user.IsBlocked() {
		return nil, fmt.Errorf("blocked users cannot create requests: %w", apperror.ErrForbidden)
	}

	if !location.Belongs(input.District, input.Upazila) {
		return nil, fmt.Errorf("upazila %q does not belong to district %q: %w",
			input.Upazila, input.District, apperror.ErrInvalidInput)
	}

	req := &model.DonationRequest{
		RequesterID:    user.ID,
		RequesterName:  user.Name,
		RequesterEmail: user.Email,
		RecipientName:  input.RecipientName,
		District:       input.District,
		Upazila:        input.Upazila,
		Street:         input.Street,
		Hospital:       input.Hospital,
		BloodGroup:     input.BloodGroup,
		DonationDate:   input.DonationDate,
		DonationTime:   input.DonationTime,
		Message:        input.Message,
		DonorName:      model.DonorPlaceholder,
		DonorEmail:     model.DonorPlaceholder,
		Status:         model.StatusPending,
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

func (s *requestService) GetByID(ctx context.Context, id uuid.UUID) (*model.DonationRequest, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("donation request not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}
	return req, nil
}

func (s *requestService) ListPending(ctx context.Context, q dto.PageQuery) (*dto.PaginatedRequests, error) {
	q.Normalize()
	requests, total, err := s.repo.FindAll(ctx, model.StatusPending, q.Offset(), q.Limit)
	if err != nil {
		return nil, err
	}
	return &dto.PaginatedRequests{Data: requests, Meta: dto.NewPaginationMeta(q, total)}, nil
}

func (s *requestService) ListAll(ctx context.Context, filter dto.RequestFilter) (*dto.PaginatedRequests, error) {
	filter.Normalize()

	status := model.RequestStatus(filter.Status)
	if filter.Status != "" && !status.Valid() {
		return nil, fmt.Errorf("unknown status %q: %w", filter.Status, apperror.ErrInvalidInput)
	}

	requests, total, err := s.repo.FindAll(ctx, status, filter.Offset(), filter.Limit)
	if err != nil {
		return nil, err
	}
	return &dto.PaginatedRequests{Data: requests, Meta: dto.NewPaginationMeta(filter.PageQuery, total)}, nil
}

func (s *requestService) ListMine(ctx context.Context, userID uuid.UUID, q dto.PageQuery) (*dto.PaginatedRequests, error) {
	q.Normalize()
	requests, total, err := s.repo.FindByRequester(ctx, userID, q.Offset(), q.Limit)
	if err != nil {
		return nil, err
	}
	return &dto.PaginatedRequests{Data: requests, Meta: dto.NewPaginationMeta(q, total)}, nil
}

func (s *requestService) Claim(ctx context.Context, userID uuid.UUID, requestID uuid.UUID) (*model.DonationRequest, error) {
	req, err := s.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.RequesterID == userID {
		return nil, fmt.Errorf("cannot claim your own request: %w", apperror.ErrForbidden)
	}

	if req.Status != model.StatusPending {
		return nil, fmt.Errorf("request is no longer available: %w", apperror.ErrConflict)
	}

	donor, err := s.userRepo.FindByID(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrUnauthorized)
	}

	req.Status = model.StatusInProgress
	req.DonorName = donor.Name
	req.DonorEmail = donor.Email

	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, req.RequesterID, model.NotificationRequestClaimed,
			fmt.Sprintf("%s volunteered to donate for %s", donor.Name, req.RecipientName), &req.ID)
	}

	return req, nil
}

func (s *requestService) Update(ctx context.Context, userID uuid.UUID, requestID uuid.UUID, input dto.UpdateRequestInput) (*model.DonationRequest, error) {
	req, err := s.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	actor, err := s.userRepo.FindByID(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrUnauthorized)
	}

	if !canManage(actor, req) {
		return nil, fmt.Errorf("not allowed to edit this request: %w", apperror.ErrForbidden)
	}

	if req.Status.Terminal() {
		return nil, fmt.Errorf("request is %s and can no longer be edited: %w", req.Status, apperror.ErrConflict)
	}

	if input.RecipientName != nil {
		req.RecipientName = *input.RecipientName
	}
	if input.District != nil {
		req.District = *input.District
		// A district change always invalidates the previous upazila.
		if input.Upazila == nil {
			return nil, fmt.Errorf("upazila must be provided when district changes: %w", apperror.ErrInvalidInput)
		}
	}
	if input.Upazila != nil {
		req.Upazila = *input.Upazila
	}
	if input.District != nil || input.Upazila != nil {
		if !location.Belongs(req.District, req.Upazila) {
			return nil, fmt.Errorf("upazila %q does not belong to district %q: %w",
				req.Upazila, req.District, apperror.ErrInvalidInput)
		}
	}
	if input.Street != nil {
		req.Street = *input.Street
	}
	if input.Hospital != nil {
		req.Hospital = *input.Hospital
	}
	if input.BloodGroup != nil {
		req.BloodGroup = *input.BloodGroup
	}
	if input.DonationDate != nil {
		req.DonationDate = *input.DonationDate
	}
	if input.DonationTime != nil {
		req.DonationTime = *input.DonationTime
	}
	if input.Message != nil {
		req.Message = *input.Message
	}

	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

func (s *requestService) UpdateStatus(ctx context.Context, userID uuid.UUID, requestID uuid.UUID, target model.RequestStatus) (*model.DonationRequest, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("unknown status %q: %w", target, apperror.ErrInvalidInput)
	}

	req, err := s.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	actor, err := s.userRepo.FindByID(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrUnauthorized)
	}

	if !canManage(actor, req) {
		return nil, fmt.Errorf("not allowed to change this request: %w", apperror.ErrForbidden)
	}

	if !req.Status.CanTransition(target) {
		return nil, fmt.Errorf("cannot move request from %s to %s: %w", req.Status, target, apperror.ErrConflict)
	}

	// Volunteers triage between pending and in_progress only; completion
	// stays with the requester or an admin.
	isOwner := req.RequesterID == actor.ID
	switch target {
	case model.StatusCompleted:
		if !isOwner && actor.Role.Name != model.RoleAdmin {
			return nil, fmt.Errorf("only the requester or an admin can complete a request: %w", apperror.ErrForbidden)
		}
	case model.StatusCanceled:
		if !isOwner && actor.Role.Name != model.RoleAdmin {
			return nil, fmt.Errorf("only the requester or an admin can cancel a request: %w", apperror.ErrForbidden)
		}
	}

	// Releasing a claim puts the request back on the open list; the donor
	// slot must read as unassigned again.
	if target == model.StatusPending {
		req.DonorName = model.DonorPlaceholder
		req.DonorEmail = model.DonorPlaceholder
	}

	req.Status = target
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	if s.notifier != nil && req.RequesterID != actor.ID {
		s.notifier.Notify(ctx, req.RequesterID, model.NotificationStatusChanged,
			fmt.Sprintf("Your request for %s is now %s", req.RecipientName, target), &req.ID)
	}

	return req, nil
}

func (s *requestService) Delete(ctx context.Context, userID uuid.UUID, requestID uuid.UUID) error {
	req, err := s.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	actor, err := s.userRepo.FindByID(ctx, userID.String())
	if err != nil {
		return fmt.Errorf("user not found: %w", apperror.ErrUnauthorized)
	}

	if req.RequesterID != actor.ID && actor.Role.Name != model.RoleAdmin {
		return fmt.Errorf("not allowed to delete this request: %w", apperror.ErrForbidden)
	}

	return s.repo.Delete(ctx, requestID)
}

// canManage reports whether actor may modify req: the requester themselves,
// or a volunteer/admin.
func canManage(actor *model.User, req *model.DonationRequest) bool {
	if req.RequesterID == actor.ID {
		return true
	}
	return actor.Role.Name == model.RoleVolunteer || actor.Role.Name == model.RoleAdmin
}
