package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-backend/internal/domains/phone/model"
	"storefront-backend/internal/domains/phone/service"
	"storefront-backend/internal/shared/middleware"
	"storefront-backend/internal/shared/response"
)

type PhoneHandler struct {
	service service.ServiceInterface
}

func NewPhoneHandler(s service.ServiceInterface) *PhoneHandler {
	return &PhoneHandler{service: s}
}

func (h *PhoneHandler) AddPhone(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CreatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	phone, err := h.service.AddPhone(c.Request.Context(), userID, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, phone)
}

func (h *PhoneHandler) ListPhones(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	phones, err := h.service.ListPhones(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, phones)
}

func (h *PhoneHandler) SetDefaultPhone(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	phoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid phone ID")
		return
	}

	if err := h.service.SetDefaultPhone(c.Request.Context(), userID, phoneID); err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"is_default": true})
}

func (h *PhoneHandler) DeletePhone(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	phoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid phone ID")
		return
	}

	if err := h.service.DeletePhone(c.Request.Context(), userID, phoneID); err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *PhoneHandler) renderError(c *gin.Context, err error) {
	var phoneErr *model.PhoneError
	if errors.As(err, &phoneErr) {
		switch phoneErr.Code {
		case "PHONE_NOT_FOUND":
			response.NotFound(c, phoneErr.Message)
		case "DUPLICATE_PHONE_NUMBER":
			response.Conflict(c, phoneErr.Message)
		case "PHONE_REPOSITORY_ERROR":
			response.InternalServerError(c, phoneErr.Message)
		default:
			response.UnprocessableEntity(c, phoneErr.Message)
		}
		return
	}

	response.BadRequest(c, err.Error())
}
