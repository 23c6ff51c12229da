package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rokto.app/bloodlink/internal/dto"
	"rokto.app/bloodlink/internal/service"
	"rokto.app/bloodlink/pkg/response"
)

type DonorHandler struct {
	service service.SearchService
}

func NewDonorHandler(service service.SearchService) *DonorHandler {
	return &DonorHandler{service: service}
}

// SearchDonors is the public donor lookup by blood group and location.
func (h *DonorHandler) SearchDonors(c *gin.Context) {
	var query dto.DonorSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	donors, err := h.service.SearchDonors(c.Request.Context(), query.BloodGroup, query.District, query.Upazila)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": donors})
}

// GetSearchToken issues a scoped tenant token for client-side search.
func (h *DonorHandler) GetSearchToken(c *gin.Context) {
	token, err := h.service.GenerateSearchToken()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
