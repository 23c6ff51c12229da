package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"rokto.app/bloodlink/internal/dto"
	"rokto.app/bloodlink/internal/location"
	"rokto.app/bloodlink/internal/model"
	"rokto.app/bloodlink/internal/repository"
	"rokto.app/bloodlink/pkg/apperror"
)

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
}

type authService struct {
	repo     repository.UserRepository
	searcher DonorIndexer
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(repo repository.UserRepository, searcher DonorIndexer, secret string, tokenTTL time.Duration) AuthService {
	return &authService{
		repo:     repo,
		searcher: searcher,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if !location.Belongs(input.District, input.Upazila) {
		return nil, fmt.Errorf("upazila %q does not belong to district %q: %w",
			input.Upazila, input.District, apperror.ErrInvalidInput)
	}

	// Self-registration always starts as donor; elevation is an admin action.
	role, err := s.repo.FindRoleByName(ctx, model.RoleDonor)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("role %s not seeded", model.RoleDonor)
		}
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		RoleID:       &role.ID,
		Role:         *role,
		BloodGroup:   input.BloodGroup,
		District:     input.District,
		Upazila:      input.Upazila,
		Status:       model.UserStatusActive,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.searcher != nil {
		if err := s.searcher.IndexDonor(user); err != nil {
			log.Printf("failed to index donor %s: %v", user.Email, err)
		}
	}

	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized)
	}

	if user.IsBlocked() {
		return nil, fmt.Errorf("account is blocked: %w", apperror.ErrForbidden)
	}

	return s.issueToken(user)
}

func (s *authService) issueToken(user *model.User) (*dto.AuthResponse, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
		User:        user,
	}, nil
}
