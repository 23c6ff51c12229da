package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	playgroundValidator "github.com/go-playground/validator/v10"
	"rokto.app/bloodlink/internal/dto"
	"rokto.app/bloodlink/internal/service"
	"rokto.app/bloodlink/pkg/response"
	"rokto.app/bloodlink/pkg/validator"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetRole returns the caller's resolved role. Kept as a dedicated endpoint
// so clients can re-check their role without refetching the whole profile.
func (h *AuthHandler) GetRole(c *gin.Context) {
	role, err := response.GetUserRole(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role})
}

// respondBindingError converts binding/validation failures into a 400 with
// readable field messages.
func respondBindingError(c *gin.Context, err error) {
	if _, ok := err.(playgroundValidator.ValidationErrors); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
