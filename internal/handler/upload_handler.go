package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rokto.app/bloodlink/pkg/storage"
)

// UploadHandler uploads blog thumbnails and returns their delivery URL.
type UploadHandler struct {
	imageStorage storage.ImageStorage
}

func NewUploadHandler(imageStorage storage.ImageStorage) *UploadHandler {
	return &UploadHandler{imageStorage: imageStorage}
}

func (h *UploadHandler) UploadThumbnail(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image file"})
		return
	}
	defer f.Close()

	url, err := h.imageStorage.UploadImage(c.Request.Context(), f, "thumbnails", fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
