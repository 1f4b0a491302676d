package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/domains/catalog/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const productColumns = `id, name, slug, description, brand_id, category_id, base_price, cover_url, is_active, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.BrandID, &p.CategoryID,
		&p.BasePrice, &p.CoverURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	query := `
    INSERT INTO products (name, slug, description, brand_id, category_id, base_price, cover_url, is_active, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
    RETURNING ` + productColumns

	row := r.pool.QueryRow(ctx, query,
		p.Name, p.Slug, p.Description, p.BrandID, p.CategoryID, p.BasePrice, p.CoverURL, p.IsActive,
	)

	created, err := scanProduct(row)
	if err != nil {
		return nil, model.NewRepositoryError("create product", err)
	}
	return created, nil
}

func (r *postgresRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewRepositoryError("get product", err)
	}
	return p, nil
}

func (r *postgresRepository) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewRepositoryError("get product by slug", err)
	}
	return p, nil
}

func (r *postgresRepository) ListProducts(ctx context.Context, offset, limit int) ([]*model.Product, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, model.NewRepositoryError("count products", err)
	}

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, model.NewRepositoryError("list products", err)
	}
	defer rows.Close()

	var products []*model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, model.NewRepositoryError("scan product", err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, model.NewRepositoryError("list products", err)
	}

	return products, total, nil
}

func (r *postgresRepository) UpdateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	query := `
    UPDATE products
    SET name = $1, slug = $2, description = $3, brand_id = $4, category_id = $5,
        base_price = $6, cover_url = $7, is_active = $8, updated_at = NOW()
    WHERE id = $9
    RETURNING ` + productColumns

	row := r.pool.QueryRow(ctx, query,
		p.Name, p.Slug, p.Description, p.BrandID, p.CategoryID, p.BasePrice, p.CoverURL, p.IsActive, p.ID,
	)

	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewProductNotFound(p.ID.String())
		}
		return nil, model.NewRepositoryError("update product", err)
	}
	return updated, nil
}

func (r *postgresRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return model.NewRepositoryError("delete product", err)
	}
	if result.RowsAffected() == 0 {
		return model.NewProductNotFound(id.String())
	}
	return nil
}

const variantColumns = `id, product_id, sku, color, size, price_override, stock, image_url, is_active, created_at, updated_at`

func scanVariant(row pgx.Row) (*model.Variant, error) {
	var v model.Variant
	err := row.Scan(
		&v.ID, &v.ProductID, &v.SKU, &v.Color, &v.Size,
		&v.PriceOverride, &v.Stock, &v.ImageURL, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *postgresRepository) CreateVariant(ctx context.Context, v *model.Variant) (*model.Variant, error) {
	query := `
    INSERT INTO variants (product_id, sku, color, size, price_override, stock, image_url, is_active, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
    RETURNING ` + variantColumns

	row := r.pool.QueryRow(ctx, query,
		v.ProductID, v.SKU, v.Color, v.Size, v.PriceOverride, v.Stock, v.ImageURL, v.IsActive,
	)

	created, err := scanVariant(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrDuplicateSKU
		}
		return nil, model.NewRepositoryError("create variant", err)
	}
	return created, nil
}

func (r *postgresRepository) GetVariantByID(ctx context.Context, id uuid.UUID) (*model.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM variants WHERE id = $1`

	v, err := scanVariant(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewRepositoryError("get variant", err)
	}
	return v, nil
}

func (r *postgresRepository) GetVariantWithProduct(ctx context.Context, id uuid.UUID) (*model.VariantWithProduct, error) {
	query := `
    SELECT
      v.id, v.product_id, v.sku, v.color, v.size, v.price_override, v.stock,
      v.image_url, v.is_active, v.created_at, v.updated_at,
      p.name, p.slug, p.base_price, p.brand_id, p.category_id, p.is_active
    FROM variants v
    JOIN products p ON v.product_id = p.id
    WHERE v.id = $1
  `

	var vp model.VariantWithProduct
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&vp.ID, &vp.ProductID, &vp.SKU, &vp.Color, &vp.Size, &vp.PriceOverride, &vp.Stock,
		&vp.ImageURL, &vp.IsActive, &vp.CreatedAt, &vp.UpdatedAt,
		&vp.ProductName, &vp.ProductSlug, &vp.ProductBasePrice, &vp.ProductBrandID,
		&vp.ProductCategoryID, &vp.ProductIsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewRepositoryError("get variant with product", err)
	}
	return &vp, nil
}

func (r *postgresRepository) ListVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]model.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM variants WHERE product_id = $1 ORDER BY sku`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, model.NewRepositoryError("list variants", err)
	}
	defer rows.Close()

	var variants []model.Variant
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, model.NewRepositoryError("scan variant", err)
		}
		variants = append(variants, *v)
	}

	if err = rows.Err(); err != nil {
		return nil, model.NewRepositoryError("list variants", err)
	}

	return variants, nil
}

func (r *postgresRepository) UpdateVariantStock(ctx context.Context, id uuid.UUID, stock int) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE variants SET stock = $1, updated_at = NOW() WHERE id = $2`, stock, id)
	if err != nil {
		return model.NewRepositoryError("update variant stock", err)
	}
	if result.RowsAffected() == 0 {
		return model.NewVariantNotFound(id.String())
	}
	return nil
}

func (r *postgresRepository) SetVariantImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE variants SET image_url = $1, updated_at = NOW() WHERE id = $2`, imageURL, id)
	if err != nil {
		return model.NewRepositoryError("set variant image", err)
	}
	if result.RowsAffected() == 0 {
		return model.NewVariantNotFound(id.String())
	}
	return nil
}

// DecrementStockTx uses a conditional update so concurrent checkouts can never
// drive stock negative.
func (r *postgresRepository) DecrementStockTx(ctx context.Context, tx pgx.Tx, variantID uuid.UUID, quantity int) error {
	result, err := tx.Exec(ctx,
		`UPDATE variants SET stock = stock - $1, updated_at = NOW() WHERE id = $2 AND stock >= $1`,
		quantity, variantID)
	if err != nil {
		return model.NewRepositoryError("decrement stock", err)
	}
	if result.RowsAffected() == 0 {
		var sku string
		var stock int
		if scanErr := tx.QueryRow(ctx, `SELECT sku, stock FROM variants WHERE id = $1`, variantID).
			Scan(&sku, &stock); scanErr != nil {
			return model.NewVariantNotFound(variantID.String())
		}
		return model.NewInsufficientStock(sku, quantity, stock)
	}
	return nil
}

func (r *postgresRepository) CreateBrand(ctx context.Context, b *model.Brand) (*model.Brand, error) {
	query := `
    INSERT INTO brands (name, slug, created_at, updated_at)
    VALUES ($1, $2, NOW(), NOW())
    RETURNING id, name, slug, created_at, updated_at
  `

	var brand model.Brand
	err := r.pool.QueryRow(ctx, query, b.Name, b.Slug).Scan(
		&brand.ID, &brand.Name, &brand.Slug, &brand.CreatedAt, &brand.UpdatedAt,
	)
	if err != nil {
		return nil, model.NewRepositoryError("create brand", err)
	}
	return &brand, nil
}

func (r *postgresRepository) ListBrands(ctx context.Context) ([]model.Brand, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, slug, created_at, updated_at FROM brands ORDER BY name`)
	if err != nil {
		return nil, model.NewRepositoryError("list brands", err)
	}
	defer rows.Close()

	var brands []model.Brand
	for rows.Next() {
		var b model.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, model.NewRepositoryError("scan brand", err)
		}
		brands = append(brands, b)
	}

	return brands, rows.Err()
}

func (r *postgresRepository) CreateCategory(ctx context.Context, c *model.Category) (*model.Category, error) {
	query := `
    INSERT INTO categories (name, slug, parent_id, is_active, created_at, updated_at)
    VALUES ($1, $2, $3, $4, NOW(), NOW())
    RETURNING id, name, slug, parent_id, is_active, created_at, updated_at
  `

	var cat model.Category
	err := r.pool.QueryRow(ctx, query, c.Name, c.Slug, c.ParentID, c.IsActive).Scan(
		&cat.ID, &cat.Name, &cat.Slug, &cat.ParentID, &cat.IsActive, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		return nil, model.NewRepositoryError("create category", err)
	}
	return &cat, nil
}

func (r *postgresRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, slug, parent_id, is_active, created_at, updated_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, model.NewRepositoryError("list categories", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, model.NewRepositoryError("scan category", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}
