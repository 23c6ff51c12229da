package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rokto.app/bloodlink/internal/dto"
	"rokto.app/bloodlink/internal/model"
	"rokto.app/bloodlink/internal/repository"
	"rokto.app/bloodlink/pkg/apperror"
)

type AdminService interface {
	ListUsers(ctx context.Context, filter dto.UserFilter) (*dto.PaginatedUsers, error)
	UpdateUserStatus(ctx context.Context, userID uuid.UUID, status string) (*model.User, error)
	UpdateUserRole(ctx context.Context, userID uuid.UUID, roleName string) (*model.User, error)
}

type adminService struct {
	repo     repository.UserRepository
	searcher DonorIndexer
}

func NewAdminService(repo repository.UserRepository, searcher DonorIndexer) AdminService {
	return &adminService{
		repo:     repo,
		searcher: searcher,
	}
}

func (s *adminService) ListUsers(ctx context.Context, filter dto.UserFilter) (*dto.PaginatedUsers, error) {
	filter.Normalize()
	users, total, err := s.repo.FindAll(ctx, filter.Status, filter.Offset(), filter.Limit)
	if err != nil {
		return nil, err
	}
	return &dto.PaginatedUsers{Data: users, Meta: dto.NewPaginationMeta(filter.PageQuery, total)}, nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, userID uuid.UUID, status string) (*model.User, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Status = status
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	// Blocked donors must disappear from search immediately.
	s.reindex(user)
	return user, nil
}

func (s *adminService) UpdateUserRole(ctx context.Context, userID uuid.UUID, roleName string) (*model.User, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	role, err := s.repo.FindRoleByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("unknown role %q: %w", roleName, apperror.ErrInvalidInput)
		}
		return nil, err
	}

	user.RoleID = &role.ID
	user.Role = *role
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.reindex(user)
	return user, nil
}

func (s *adminService) findUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *adminService) reindex(user *model.User) {
	if s.searcher == nil {
		return
	}

	var err error
	if user.Role.Name == model.RoleDonor && user.Status == model.UserStatusActive {
		err = s.searcher.IndexDonor(user)
	} else {
		err = s.searcher.RemoveDonor(user.ID.String())
	}
	if err != nil {
		log.Printf("failed to reindex donor %s: %v", user.Email, err)
	}
}
