package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
	"rokto.app/bloodlink/internal/dto"
	"rokto.app/bloodlink/internal/model"
	"rokto.app/bloodlink/internal/repository"
	"rokto.app/bloodlink/pkg/apperror"
)

type BlogService interface {
	Create(ctx context.Context, authorID uuid.UUID, input dto.CreateBlogInput) (*model.Blog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error)
	ListPublished(ctx context.Context, q dto.PageQuery) (*dto.PaginatedBlogs, error)
	ListAll(ctx context.Context, filter dto.BlogFilter) (*dto.PaginatedBlogs, error)
	Update(ctx context.Context, userID uuid.UUID, blogID uuid.UUID, input dto.UpdateBlogInput) (*model.Blog, error)
	Publish(ctx context.Context, blogID uuid.UUID) (*model.Blog, error)
	ToggleStatus(ctx context.Context, blogID uuid.UUID) (*model.Blog, error)
	Delete(ctx context.Context, blogID uuid.UUID) error
}

type blogService struct {
	repo      repository.BlogRepository
	userRepo  repository.UserRepository
	sanitizer *bluemonday.Policy
}

func NewBlogService(repo repository.BlogRepository, userRepo repository.UserRepository) BlogService {
	return &blogService{
		repo:     repo,
		userRepo: userRepo,
		// UGCPolicy keeps the rich-text markup the editor produces while
		// stripping scripts and event handlers.
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *blogService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreateBlogInput) (*model.Blog, error) {
	author, err := s.userRepo.FindByID(ctx, authorID.String())
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrUnauthorized)
	}

	blog := &model.Blog{
		Title:        input.Title,
		ThumbnailURL: input.ThumbnailURL,
		Content:      s.sanitizer.Sanitize(input.Content),
		AuthorID:     author.ID,
		AuthorName:   author.Name,
		Status:       model.BlogDraft,
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

func (s *blogService) GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog post not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}
	return blog, nil
}

func (s *blogService) ListPublished(ctx context.Context, q dto.PageQuery) (*dto.PaginatedBlogs, error) {
	q.Normalize()
	blogs, total, err := s.repo.FindAll(ctx, model.BlogPublished, q.Offset(), q.Limit)
	if err != nil {
		return nil, err
	}
	return &dto.PaginatedBlogs{Data: blogs, Meta: dto.NewPaginationMeta(q, total)}, nil
}

func (s *blogService) ListAll(ctx context.Context, filter dto.BlogFilter) (*dto.PaginatedBlogs, error) {
	filter.Normalize()

	status := model.BlogStatus(filter.Status)
	if filter.Status != "" && !status.Valid() {
		return nil, fmt.Errorf("unknown status %q: %w", filter.Status, apperror.ErrInvalidInput)
	}

	blogs, total, err := s.repo.FindAll(ctx, status, filter.Offset(), filter.Limit)
	if err != nil {
		return nil, err
	}
	return &dto.PaginatedBlogs{Data: blogs, Meta: dto.NewPaginationMeta(filter.PageQuery, total)}, nil
}

func (s *blogService) Update(ctx context.Context, userID uuid.UUID, blogID uuid.UUID, input dto.UpdateBlogInput) (*model.Blog, error) {
	blog, err := s.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	actor, err := s.userRepo.FindByID(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrUnauthorized)
	}

	if blog.AuthorID != actor.ID && actor.Role.Name != model.RoleAdmin {
		return nil, fmt.Errorf("not allowed to edit this post: %w", apperror.ErrForbidden)
	}

	if input.Title != nil {
		blog.Title = *input.Title
	}
	if input.ThumbnailURL != nil {
		blog.ThumbnailURL = input.ThumbnailURL
	}
	if input.Content != nil {
		blog.Content = s.sanitizer.Sanitize(*input.Content)
	}

	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

func (s *blogService) Publish(ctx context.Context, blogID uuid.UUID) (*model.Blog, error) {
	blog, err := s.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if blog.Status != model.BlogDraft {
		return nil, fmt.Errorf("only drafts can be published: %w", apperror.ErrConflict)
	}

	blog.Status = model.BlogPublished
	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

func (s *blogService) ToggleStatus(ctx context.Context, blogID uuid.UUID) (*model.Blog, error) {
	blog, err := s.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	next, ok := blog.Status.Toggle()
	if !ok {
		return nil, fmt.Errorf("draft posts must be published first: %w", apperror.ErrConflict)
	}

	blog.Status = next
	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

func (s *blogService) Delete(ctx context.Context, blogID uuid.UUID) error {
	if _, err := s.GetByID(ctx, blogID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, blogID)
}
