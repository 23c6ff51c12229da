package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"rokto.app/bloodlink/internal/location"
)

// LocationHandler serves the bundled district/upazila reference data.
type LocationHandler struct{}

func NewLocationHandler() *LocationHandler {
	return &LocationHandler{}
}

func (h *LocationHandler) GetDistricts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": location.Districts()})
}

func (h *LocationHandler) GetUpazilas(c *gin.Context) {
	districtID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid district id"})
		return
	}

	upazilas := location.UpazilasOf(districtID)
	if upazilas == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "district not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": upazilas})
}
