package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rokto.app/bloodlink/internal/dto"
	"rokto.app/bloodlink/internal/model"
	"rokto.app/bloodlink/internal/service"
	"rokto.app/bloodlink/pkg/response"
)

type FundingHandler struct {
	service service.FundingService
}

func NewFundingHandler(service service.FundingService) *FundingHandler {
	return &FundingHandler{service: service}
}

func (h *FundingHandler) CreateIntent(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.CreateIntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.service.CreateIntent(c.Request.Context(), userID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *FundingHandler) RecordFunding(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.RecordFundingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	funding, err := h.service.Record(c.Request.Context(), userID, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, funding)
}

// GetFundings lists donations. Admins see everything, everyone else only
// their own rows.
func (h *FundingHandler) GetFundings(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	role, err := response.GetUserRole(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var fundings *dto.PaginatedFundings
	if role == model.RoleAdmin {
		fundings, err = h.service.List(c.Request.Context(), q)
	} else {
		fundings, err = h.service.ListMine(c.Request.Context(), userID, q)
	}
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, fundings)
}
