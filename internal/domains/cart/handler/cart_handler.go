package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-backend/internal/domains/cart/model"
	"storefront-backend/internal/domains/cart/service"
	promomodel "storefront-backend/internal/domains/promotion/model"
	"storefront-backend/internal/shared/middleware"
	"storefront-backend/internal/shared/response"
)

type CartHandler struct {
	service service.ServiceInterface
}

func NewCartHandler(s service.ServiceInterface) *CartHandler {
	return &CartHandler{service: s}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	cart, err := h.service.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.service.AddItem(c.Request.Context(), userID, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, cart)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req model.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.service.UpdateItem(c.Request.Context(), userID, itemID, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	cart, err := h.service.RemoveItem(c.Request.Context(), userID, itemID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.service.ApplyCoupon(c.Request.Context(), userID, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	cart, err := h.service.RemoveCoupon(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

func (h *CartHandler) renderError(c *gin.Context, err error) {
	var cartErr *model.CartError
	if errors.As(err, &cartErr) {
		switch cartErr.Code {
		case "CART_ITEM_NOT_FOUND":
			response.NotFound(c, cartErr.Message)
		case "VARIANT_UNAVAILABLE", "INVALID_QUANTITY", "INVALID_BASE_PRICE", "EMPTY_CART":
			response.UnprocessableEntity(c, cartErr.Message)
		case "CART_REPOSITORY_ERROR":
			response.InternalServerError(c, cartErr.Message)
		default:
			response.UnprocessableEntity(c, cartErr.Message)
		}
		return
	}

	var promoErr *promomodel.PromotionError
	if errors.As(err, &promoErr) {
		switch promoErr.Code {
		case "COUPON_NOT_FOUND":
			response.NotFound(c, promoErr.Message)
		case "COUPON_NOT_VALID":
			response.UnprocessableEntity(c, promoErr.Message)
		default:
			response.InternalServerError(c, promoErr.Message)
		}
		return
	}

	response.BadRequest(c, err.Error())
}
