package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"storefront-backend/internal/domains/catalog/model"
)

// RepositoryInterface is the persistence contract for the catalog domain.
type RepositoryInterface interface {
	CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	ListProducts(ctx context.Context, offset, limit int) ([]*model.Product, int, error)
	UpdateProduct(ctx context.Context, p *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateVariant(ctx context.Context, v *model.Variant) (*model.Variant, error)
	GetVariantByID(ctx context.Context, id uuid.UUID) (*model.Variant, error)
	GetVariantWithProduct(ctx context.Context, id uuid.UUID) (*model.VariantWithProduct, error)
	ListVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]model.Variant, error)
	UpdateVariantStock(ctx context.Context, id uuid.UUID, stock int) error
	SetVariantImage(ctx context.Context, id uuid.UUID, imageURL string) error

	// DecrementStockTx decrements stock inside an existing transaction and
	// fails when the remaining stock would go negative.
	DecrementStockTx(ctx context.Context, tx pgx.Tx, variantID uuid.UUID, quantity int) error

	CreateBrand(ctx context.Context, b *model.Brand) (*model.Brand, error)
	ListBrands(ctx context.Context) ([]model.Brand, error)
	CreateCategory(ctx context.Context, c *model.Category) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}
