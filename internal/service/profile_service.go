package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rokto.app/bloodlink/internal/dto"
	"rokto.app/bloodlink/internal/location"
	"rokto.app/bloodlink/internal/model"
	"rokto.app/bloodlink/internal/repository"
	"rokto.app/bloodlink/pkg/apperror"
	"rokto.app/bloodlink/pkg/storage"
)

// AvatarFile carries an uploaded avatar image.
type AvatarFile struct {
	Reader   io.Reader
	FileName string
}

type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*model.User, error)
	Update(ctx context.Context, userID uuid.UUID, input dto.UpdateProfileInput, avatar *AvatarFile) (*model.User, error)
}

type profileService struct {
	repo         repository.UserRepository
	imageStorage storage.ImageStorage
	searcher     DonorIndexer
}

func NewProfileService(repo repository.UserRepository, imageStorage storage.ImageStorage, searcher DonorIndexer) ProfileService {
	return &profileService{
		repo:         repo,
		imageStorage: imageStorage,
		searcher:     searcher,
	}
}

func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *profileService) Update(ctx context.Context, userID uuid.UUID, input dto.UpdateProfileInput, avatar *AvatarFile) (*model.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.BloodGroup != nil {
		user.BloodGroup = *input.BloodGroup
	}
	if input.District != nil {
		user.District = *input.District
		// District change invalidates the previous upazila.
		if input.Upazila == nil {
			return nil, fmt.Errorf("upazila must be provided when district changes: %w", apperror.ErrInvalidInput)
		}
	}
	if input.Upazila != nil {
		user.Upazila = *input.Upazila
	}
	if input.District != nil || input.Upazila != nil {
		if !location.Belongs(user.District, user.Upazila) {
			return nil, fmt.Errorf("upazila %q does not belong to district %q: %w",
				user.Upazila, user.District, apperror.ErrInvalidInput)
		}
	}

	if avatar != nil && avatar.Reader != nil && s.imageStorage != nil {
		url, err := s.imageStorage.UploadImage(ctx, avatar.Reader, "avatars", avatar.FileName)
		if err != nil {
			return nil, err
		}

		if user.AvatarURL != nil {
			if err := s.imageStorage.DeleteImage(ctx, *user.AvatarURL); err != nil {
				log.Printf("failed to delete old avatar for %s: %v", user.Email, err)
			}
		}
		user.AvatarURL = &url
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if s.searcher != nil && user.Role.Name == model.RoleDonor {
		if err := s.searcher.IndexDonor(user); err != nil {
			log.Printf("failed to reindex donor %s: %v", user.Email, err)
		}
	}

	return user, nil
}
