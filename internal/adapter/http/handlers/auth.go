package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskcollab/internal/adapter/http/dto"
	"taskcollab/internal/adapter/http/mapper"
	"taskcollab/internal/core/domain"
	"taskcollab/internal/core/ports"
	"taskcollab/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	session, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err, apierrors.MsgFailRegister)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSessionResponse(session))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, apierrors.MsgFailLogin)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSessionResponse(session))
}
