package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rokto.app/bloodlink/internal/dto"
	"rokto.app/bloodlink/internal/service"
	"rokto.app/bloodlink/pkg/response"
)

type BlogHandler struct {
	service service.BlogService
}

func NewBlogHandler(service service.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

func (h *BlogHandler) CreateBlog(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.CreateBlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	blog, err := h.service.Create(c.Request.Context(), userID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, blog)
}

// GetPublishedBlogs is the public blog listing.
func (h *BlogHandler) GetPublishedBlogs(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	blogs, err := h.service.ListPublished(c.Request.Context(), q)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) GetAllBlogs(c *gin.Context) {
	var filter dto.BlogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindingError(c, err)
		return
	}

	blogs, err := h.service.ListAll(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) GetBlog(c *gin.Context) {
	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog id"})
		return
	}

	blog, err := h.service.GetByID(c.Request.Context(), blogID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog id"})
		return
	}

	var input dto.UpdateBlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	blog, err := h.service.Update(c.Request.Context(), userID, blogID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) PublishBlog(c *gin.Context) {
	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog id"})
		return
	}

	blog, err := h.service.Publish(c.Request.Context(), blogID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) ToggleBlogStatus(c *gin.Context) {
	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog id"})
		return
	}

	blog, err := h.service.ToggleStatus(c.Request.Context(), blogID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blog id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), blogID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "blog post deleted"})
}
