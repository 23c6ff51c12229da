package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"rokto.app/bloodlink/internal/dto"
	"rokto.app/bloodlink/internal/model"
	"rokto.app/bloodlink/pkg/apperror"
)

func TestCreateBlogSanitizesContentAndStartsAsDraft(t *testing.T) {
	blogRepo := new(mockBlogRepo)
	userRepo := new(mockUserRepo)
	svc := NewBlogService(blogRepo, userRepo)

	authorID := uuid.New()
	userRepo.On("FindByID", mock.Anything, authorID.String()).Return(volunteerUser(authorID), nil)
	blogRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Blog")).Return(nil)

	blog, err := svc.Create(context.Background(), authorID, dto.CreateBlogInput{
		Title:   "Why donate blood",
		Content: `<p>Every donation saves lives.</p><script>alert("xss")</script>`,
	})

	require.NoError(t, err)
	assert.Equal(t, model.BlogDraft, blog.Status)
	assert.Equal(t, "Karim Volunteer", blog.AuthorName)
	assert.Contains(t, blog.Content, "<p>Every donation saves lives.</p>")
	assert.NotContains(t, blog.Content, "<script>")
}

func TestPublishBlog(t *testing.T) {
	t.Run("drafts can be published", func(t *testing.T) {
		blogRepo := new(mockBlogRepo)
		svc := NewBlogService(blogRepo, new(mockUserRepo))

		blog := &model.Blog{ID: uuid.New(), Status: model.BlogDraft}
		blogRepo.On("FindByID", mock.Anything, blog.ID).Return(blog, nil)
		blogRepo.On("Update", mock.Anything, blog).Return(nil)

		published, err := svc.Publish(context.Background(), blog.ID)

		require.NoError(t, err)
		assert.Equal(t, model.BlogPublished, published.Status)
	})

	t.Run("publishing an already published post conflicts", func(t *testing.T) {
		blogRepo := new(mockBlogRepo)
		svc := NewBlogService(blogRepo, new(mockUserRepo))

		blog := &model.Blog{ID: uuid.New(), Status: model.BlogPublished}
		blogRepo.On("FindByID", mock.Anything, blog.ID).Return(blog, nil)

		_, err := svc.Publish(context.Background(), blog.ID)

		assert.ErrorIs(t, err, apperror.ErrConflict)
	})
}

func TestToggleBlogStatus(t *testing.T) {
	t.Run("published flips to unpublished and back", func(t *testing.T) {
		blogRepo := new(mockBlogRepo)
		svc := NewBlogService(blogRepo, new(mockUserRepo))

		blog := &model.Blog{ID: uuid.New(), Status: model.BlogPublished}
		blogRepo.On("FindByID", mock.Anything, blog.ID).Return(blog, nil)
		blogRepo.On("Update", mock.Anything, blog).Return(nil)

		toggled, err := svc.ToggleStatus(context.Background(), blog.ID)
		require.NoError(t, err)
		assert.Equal(t, model.BlogUnpublished, toggled.Status)

		toggled, err = svc.ToggleStatus(context.Background(), blog.ID)
		require.NoError(t, err)
		assert.Equal(t, model.BlogPublished, toggled.Status)
	})

	t.Run("drafts cannot be toggled", func(t *testing.T) {
		blogRepo := new(mockBlogRepo)
		svc := NewBlogService(blogRepo, new(mockUserRepo))

		blog := &model.Blog{ID: uuid.New(), Status: model.BlogDraft}
		blogRepo.On("FindByID", mock.Anything, blog.ID).Return(blog, nil)

		_, err := svc.ToggleStatus(context.Background(), blog.ID)

		assert.ErrorIs(t, err, apperror.ErrConflict)
		blogRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUpdateBlogPermissions(t *testing.T) {
	authorID := uuid.New()
	blog := &model.Blog{ID: uuid.New(), AuthorID: authorID, Status: model.BlogDraft}
	title := "Updated title"

	t.Run("another volunteer cannot edit", func(t *testing.T) {
		blogRepo := new(mockBlogRepo)
		userRepo := new(mockUserRepo)
		svc := NewBlogService(blogRepo, userRepo)

		otherID := uuid.New()
		blogRepo.On("FindByID", mock.Anything, blog.ID).Return(blog, nil)
		userRepo.On("FindByID", mock.Anything, otherID.String()).Return(volunteerUser(otherID), nil)

		_, err := svc.Update(context.Background(), otherID, blog.ID, dto.UpdateBlogInput{Title: &title})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("admin can edit any post", func(t *testing.T) {
		blogRepo := new(mockBlogRepo)
		userRepo := new(mockUserRepo)
		svc := NewBlogService(blogRepo, userRepo)

		adminID := uuid.New()
		blogRepo.On("FindByID", mock.Anything, blog.ID).Return(blog, nil)
		userRepo.On("FindByID", mock.Anything, adminID.String()).Return(adminUser(adminID), nil)
		blogRepo.On("Update", mock.Anything, blog).Return(nil)

		updated, err := svc.Update(context.Background(), adminID, blog.ID, dto.UpdateBlogInput{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, "Updated title", updated.Title)
	})
}

func TestListAllBlogsRejectsUnknownStatusFilter(t *testing.T) {
	blogRepo := new(mockBlogRepo)
	svc := NewBlogService(blogRepo, new(mockUserRepo))

	_, err := svc.ListAll(context.Background(), dto.BlogFilter{Status: "archived"})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	blogRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
