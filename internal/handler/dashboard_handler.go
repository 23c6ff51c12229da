package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rokto.app/bloodlink/internal/service"
	"rokto.app/bloodlink/pkg/response"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) GetAdminStats(c *gin.Context) {
	stats, err := h.service.AdminStats(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) GetDonorStats(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	stats, err := h.service.DonorStats(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) GetVolunteerStats(c *gin.Context) {
	stats, err := h.service.VolunteerStats(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
