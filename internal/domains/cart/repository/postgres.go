package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/domains/cart/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const cartColumns = `id, user_id, coupon_code, created_at, updated_at`

func scanCart(row pgx.Row) (*model.Cart, error) {
	var c model.Cart
	err := row.Scan(&c.ID, &c.UserID, &c.CouponCode, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	// Upsert on the user_id unique constraint keeps this a single round trip
	// and race-free.
	query := `
    INSERT INTO carts (user_id, created_at, updated_at)
    VALUES ($1, NOW(), NOW())
    ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
    RETURNING ` + cartColumns

	cart, err := scanCart(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, model.NewRepositoryError("get or create", err)
	}
	return cart, nil
}

func (r *postgresRepository) AddItem(ctx context.Context, cartID, variantID uuid.UUID, quantity int) (*model.CartItem, error) {
	query := `
    INSERT INTO cart_items (cart_id, variant_id, quantity, created_at, updated_at)
    VALUES ($1, $2, $3, NOW(), NOW())
    ON CONFLICT (cart_id, variant_id)
    DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
    RETURNING id, cart_id, variant_id, quantity, created_at, updated_at
  `

	var item model.CartItem
	err := r.pool.QueryRow(ctx, query, cartID, variantID, quantity).Scan(
		&item.ID, &item.CartID, &item.VariantID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, model.NewRepositoryError("add item", err)
	}

	r.touch(ctx, cartID)
	return &item, nil
}

func (r *postgresRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE cart_items SET quantity = $1, updated_at = NOW() WHERE id = $2 AND cart_id = $3`,
		quantity, itemID, cartID)
	if err != nil {
		return model.NewRepositoryError("update item", err)
	}
	if result.RowsAffected() == 0 {
		return model.NewItemNotFound(itemID.String())
	}

	r.touch(ctx, cartID)
	return nil
}

func (r *postgresRepository) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM cart_items WHERE id = $1 AND cart_id = $2`, itemID, cartID)
	if err != nil {
		return model.NewRepositoryError("remove item", err)
	}
	if result.RowsAffected() == 0 {
		return model.NewItemNotFound(itemID.String())
	}

	r.touch(ctx, cartID)
	return nil
}

func (r *postgresRepository) ListLines(ctx context.Context, cartID uuid.UUID) ([]model.CartLine, error) {
	query := `
    SELECT
      ci.id, ci.variant_id, v.sku, v.color, v.size, p.id, p.name, p.category_id, p.brand_id,
      COALESCE(v.price_override, p.base_price), ci.quantity, v.stock,
      (v.is_active AND p.is_active)
    FROM cart_items ci
    JOIN variants v ON ci.variant_id = v.id
    JOIN products p ON v.product_id = p.id
    WHERE ci.cart_id = $1
    ORDER BY ci.created_at
  `

	rows, err := r.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, model.NewRepositoryError("list lines", err)
	}
	defer rows.Close()

	var lines []model.CartLine
	for rows.Next() {
		var l model.CartLine
		err := rows.Scan(
			&l.ItemID, &l.VariantID, &l.SKU, &l.Color, &l.Size, &l.ProductID, &l.ProductName,
			&l.CategoryID, &l.BrandID, &l.BasePrice, &l.Quantity, &l.Stock, &l.IsActive,
		)
		if err != nil {
			return nil, model.NewRepositoryError("scan line", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *postgresRepository) SetCoupon(ctx context.Context, cartID uuid.UUID, code *string) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE carts SET coupon_code = $1, updated_at = NOW() WHERE id = $2`, code, cartID)
	if err != nil {
		return model.NewRepositoryError("set coupon", err)
	}
	if result.RowsAffected() == 0 {
		return model.NewRepositoryError("set coupon", errors.New("cart not found"))
	}
	return nil
}

func (r *postgresRepository) ClearTx(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return model.NewRepositoryError("clear items", err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE carts SET coupon_code = NULL, updated_at = NOW() WHERE id = $1`, cartID); err != nil {
		return model.NewRepositoryError("clear coupon", err)
	}
	return nil
}

func (r *postgresRepository) PurgeStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE updated_at < $1`, cutoff)
	if err != nil {
		return 0, model.NewRepositoryError("purge stale", err)
	}
	return result.RowsAffected(), nil
}

// touch bumps the cart's updated_at so the stale-cart sweep sees activity.
// Failures are ignored; the timestamp is advisory.
func (r *postgresRepository) touch(ctx context.Context, cartID uuid.UUID) {
	_, _ = r.pool.Exec(ctx, `UPDATE carts SET updated_at = NOW() WHERE id = $1`, cartID)
}
