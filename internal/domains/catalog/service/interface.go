package service

import (
	"context"

	"github.com/google/uuid"

	"storefront-backend/internal/domains/catalog/model"
)

// ServiceInterface exposes catalog operations to handlers and other domains.
type ServiceInterface interface {
	CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.ProductResponse, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*model.ProductResponse, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.ProductResponse, error)
	ListProducts(ctx context.Context, page, pageSize int) ([]*model.Product, int, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *model.UpdateProductRequest) (*model.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	GetVariantWithProduct(ctx context.Context, variantID uuid.UUID) (*model.VariantWithProduct, error)
	UploadVariantImage(ctx context.Context, variantID uuid.UUID, data []byte, contentType string) (string, error)

	ListBrands(ctx context.Context) ([]model.Brand, error)
	ListCategories(ctx context.Context) ([]model.Category, error)

	ImportProducts(ctx context.Context, xlsxData []byte) (*model.BulkImportResult, error)
}
