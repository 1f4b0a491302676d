package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-backend/internal/domains/address/model"
	"storefront-backend/internal/domains/address/service"
	"storefront-backend/internal/shared/middleware"
	"storefront-backend/internal/shared/response"
)

type AddressHandler struct {
	service service.ServiceInterface
}

func NewAddressHandler(s service.ServiceInterface) *AddressHandler {
	return &AddressHandler{service: s}
}

func (h *AddressHandler) AddAddress(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	addr, err := h.service.AddAddress(c.Request.Context(), userID, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, addr)
}

func (h *AddressHandler) ListAddresses(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	addresses, err := h.service.ListAddresses(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, addresses)
}

func (h *AddressHandler) GetAddress(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid address ID")
		return
	}

	addr, err := h.service.GetAddress(c.Request.Context(), userID, addressID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, addr)
}

func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid address ID")
		return
	}

	var req model.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	addr, err := h.service.UpdateAddress(c.Request.Context(), userID, addressID, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, addr)
}

func (h *AddressHandler) SetDefaultShipping(c *gin.Context) {
	h.setFlag(c, h.service.SetDefaultShipping, "is_default")
}

func (h *AddressHandler) SetDefaultBilling(c *gin.Context) {
	h.setFlag(c, h.service.SetDefaultBilling, "is_billing")
}

func (h *AddressHandler) setFlag(c *gin.Context, set func(ctx context.Context, userID, addressID uuid.UUID) error, flag string) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid address ID")
		return
	}

	if err := set(c.Request.Context(), userID, addressID); err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{flag: true})
}

func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid address ID")
		return
	}

	if err := h.service.DeleteAddress(c.Request.Context(), userID, addressID); err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *AddressHandler) renderError(c *gin.Context, err error) {
	var addrErr *model.AddressError
	if errors.As(err, &addrErr) {
		switch addrErr.Code {
		case "ADDRESS_NOT_FOUND":
			response.NotFound(c, addrErr.Message)
		case "ADDRESS_REPOSITORY_ERROR":
			response.InternalServerError(c, addrErr.Message)
		default:
			response.UnprocessableEntity(c, addrErr.Message)
		}
		return
	}

	response.BadRequest(c, err.Error())
}
