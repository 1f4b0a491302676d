package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-backend/internal/domains/promotion/model"
	"storefront-backend/internal/domains/promotion/service"
	"storefront-backend/internal/shared/response"
)

type PromotionHandler struct {
	service service.ServiceInterface
}

func NewPromotionHandler(s service.ServiceInterface) *PromotionHandler {
	return &PromotionHandler{service: s}
}

func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var req model.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	promo, err := h.service.CreatePromotion(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, promo)
}

func (h *PromotionHandler) GetPromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid promotion ID")
		return
	}

	promo, err := h.service.GetPromotion(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, promo)
}

func (h *PromotionHandler) ListPromotions(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	promotions, total, err := h.service.ListPromotions(c.Request.Context(), page, limit)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, promotions, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

func (h *PromotionHandler) UpdatePromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid promotion ID")
		return
	}

	var req model.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	promo, err := h.service.UpdatePromotion(c.Request.Context(), id, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, promo)
}

func (h *PromotionHandler) DeletePromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid promotion ID")
		return
	}

	if err := h.service.DeletePromotion(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// CheckCoupon lets the storefront verify a code before checkout.
func (h *PromotionHandler) CheckCoupon(c *gin.Context) {
	code := c.Param("code")

	promo, err := h.service.ResolveCoupon(c.Request.Context(), code)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"code":           promo.Code,
		"name":           promo.Name,
		"discount_type":  promo.DiscountType,
		"discount_value": promo.DiscountValue,
		"expires_at":     promo.ExpiresAt,
	})
}

func (h *PromotionHandler) renderError(c *gin.Context, err error) {
	var promoErr *model.PromotionError
	if errors.As(err, &promoErr) {
		switch promoErr.Code {
		case "PROMOTION_NOT_FOUND", "COUPON_NOT_FOUND":
			response.NotFound(c, promoErr.Message)
		case "COUPON_NOT_VALID":
			response.UnprocessableEntity(c, promoErr.Message)
		case "PROMOTION_REPOSITORY_ERROR":
			response.InternalServerError(c, promoErr.Message)
		default:
			response.UnprocessableEntity(c, promoErr.Message)
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
