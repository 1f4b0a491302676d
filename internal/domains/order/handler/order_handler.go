package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	addressmodel "storefront-backend/internal/domains/address/model"
	catalogmodel "storefront-backend/internal/domains/catalog/model"
	"storefront-backend/internal/domains/order/model"
	"storefront-backend/internal/domains/order/service"
	"storefront-backend/internal/shared/middleware"
	"storefront-backend/internal/shared/response"
)

type OrderHandler struct {
	service service.ServiceInterface
}

func NewOrderHandler(s service.ServiceInterface) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), userID, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	orders, total, err := h.service.ListOrders(c.Request.Context(), userID, page, limit)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, orders, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.service.CancelOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

// UpdateStatus is admin-only; routing applies the admin middleware.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), orderID, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, order)
}

func (h *OrderHandler) renderError(c *gin.Context, err error) {
	var orderErr *model.OrderError
	if errors.As(err, &orderErr) {
		switch orderErr.Code {
		case "ORDER_NOT_FOUND":
			response.NotFound(c, orderErr.Message)
		case "EMPTY_CART", "ITEM_UNAVAILABLE", "INCOMPLETE_ADDRESS":
			response.UnprocessableEntity(c, orderErr.Message)
		case "INVALID_STATUS_TRANSITION":
			response.Conflict(c, orderErr.Message)
		case "ORDER_REPOSITORY_ERROR":
			response.InternalServerError(c, orderErr.Message)
		default:
			response.UnprocessableEntity(c, orderErr.Message)
		}
		return
	}

	var addrErr *addressmodel.AddressError
	if errors.As(err, &addrErr) {
		switch addrErr.Code {
		case "ADDRESS_NOT_FOUND":
			response.NotFound(c, addrErr.Message)
		default:
			response.InternalServerError(c, addrErr.Message)
		}
		return
	}

	var catalogErr *catalogmodel.CatalogError
	if errors.As(err, &catalogErr) {
		switch catalogErr.Code {
		case "INSUFFICIENT_STOCK":
			response.UnprocessableEntity(c, catalogErr.Message)
		default:
			response.InternalServerError(c, catalogErr.Message)
		}
		return
	}

	response.BadRequest(c, err.Error())
}

func queryInt(c *gin.Context, key string, def int) int {
	if v, ok := c.GetQuery(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
