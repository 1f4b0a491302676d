package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-backend/internal/domains/catalog/model"
	"storefront-backend/internal/domains/catalog/service"
	"storefront-backend/internal/shared/response"
)

const maxImageUploadBytes = 10 << 20

type CatalogHandler struct {
	service service.ServiceInterface
}

func NewCatalogHandler(s service.ServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	resp, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *CatalogHandler) GetProductBySlug(c *gin.Context) {
	resp, err := h.service.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 20)

	products, total, err := h.service.ListProducts(c.Request.Context(), page, pageSize)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, products, &response.Meta{
		Page:  page,
		Limit: pageSize,
		Total: total,
	})
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req model.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *CatalogHandler) UploadVariantImage(c *gin.Context) {
	variantID, err := uuid.Parse(c.Param("variant_id"))
	if err != nil {
		response.BadRequest(c, "Invalid variant ID")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Missing image file")
		return
	}
	defer file.Close()

	if header.Size > maxImageUploadBytes {
		response.BadRequest(c, "Image exceeds 10MB limit")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes))
	if err != nil {
		response.InternalServerError(c, "Failed to read upload")
		return
	}

	url, err := h.service.UploadVariantImage(c.Request.Context(), variantID, data, header.Header.Get("Content-Type"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"image_url": url})
}

func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.service.ListBrands(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, brands)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

func (h *CatalogHandler) ImportProducts(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing import file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalServerError(c, "Failed to read upload")
		return
	}

	result, err := h.service.ImportProducts(c.Request.Context(), data)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *CatalogHandler) renderError(c *gin.Context, err error) {
	var catalogErr *model.CatalogError
	if errors.As(err, &catalogErr) {
		switch catalogErr.Code {
		case "PRODUCT_NOT_FOUND", "VARIANT_NOT_FOUND":
			response.NotFound(c, catalogErr.Message)
		case "DUPLICATE_SKU":
			response.Conflict(c, catalogErr.Message)
		case "INVALID_PRICE", "INSUFFICIENT_STOCK":
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
