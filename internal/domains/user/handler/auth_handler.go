package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/domains/user/model"
	"storefront-backend/internal/domains/user/service"
	"storefront-backend/internal/shared/middleware"
	"storefront-backend/internal/shared/response"
)

type AuthHandler struct {
	service service.ServiceInterface
}

func NewAuthHandler(s service.ServiceInterface) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req model.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.RequestOTP(c.Request.Context(), &req); err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sent": true})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req model.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, tokens, err := h.service.VerifyOTP(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

func (h *AuthHandler) RefreshTokens(c *gin.Context) {
	var req model.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tokens, err := h.service.RefreshTokens(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, tokens)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

func (h *AuthHandler) renderError(c *gin.Context, err error) {
	var userErr *model.UserError
	if errors.As(err, &userErr) {
		switch userErr.Code {
		case "USER_NOT_FOUND":
			response.NotFound(c, userErr.Message)
		case "OTP_EXPIRED", "OTP_INVALID", "INVALID_REFRESH_TOKEN":
			response.Unauthorized(c, userErr.Message)
		case "OTP_TOO_MANY_ATTEMPTS", "ACCOUNT_DISABLED":
			response.Forbidden(c, userErr.Message)
		case "USER_REPOSITORY_ERROR":
			response.InternalServerError(c, userErr.Message)
		default:
			response.UnprocessableEntity(c, userErr.Message)
		}
		return
	}

	response.BadRequest(c, err.Error())
}
