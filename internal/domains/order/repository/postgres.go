package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/domains/order/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const orderColumns = `id, user_id, order_number, status, shipping_address, note, coupon_code,
  total_gross, auto_discount, coupon_discount, total_discount, total_final, created_at, updated_at`

// shipping_address is a jsonb column; pgx maps it to AddressSnapshot through
// encoding/json in both directions.
func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.OrderNumber, &o.Status, &o.ShippingAddress, &o.Note, &o.CouponCode,
		&o.TotalGross, &o.AutoDiscount, &o.CouponDiscount, &o.TotalDiscount, &o.TotalFinal,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepository) CreateTx(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error) {
	query := `
    INSERT INTO orders (user_id, order_number, status, shipping_address, note, coupon_code,
      total_gross, auto_discount, coupon_discount, total_discount, total_final, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
    RETURNING ` + orderColumns

	created, err := scanOrder(tx.QueryRow(ctx, query,
		order.UserID, order.OrderNumber, order.Status, order.ShippingAddress, order.Note, order.CouponCode,
		order.TotalGross, order.AutoDiscount, order.CouponDiscount, order.TotalDiscount, order.TotalFinal,
	))
	if err != nil {
		return nil, model.NewRepositoryError("create", err)
	}

	itemQuery := `
    INSERT INTO order_items (order_id, variant_id, sku, product_name, color, size, quantity,
      base_price, auto_promotion_id, auto_discount, coupon_discount, price_paid)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    RETURNING id
  `

	for _, item := range order.Items {
		var id uuid.UUID
		err := tx.QueryRow(ctx, itemQuery,
			created.ID, item.VariantID, item.SKU, item.ProductName, item.Color, item.Size, item.Quantity,
			item.BasePrice, item.AutoPromotionID, item.AutoDiscount, item.CouponDiscount, item.PricePaid,
		).Scan(&id)
		if err != nil {
			return nil, model.NewRepositoryError("create item", err)
		}

		item.ID = id
		item.OrderID = created.ID
		created.Items = append(created.Items, item)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND ($2::uuid IS NULL OR user_id = $2)`

	var scope *uuid.UUID
	if userID != uuid.Nil {
		scope = &userID
	}

	o, err := scanOrder(r.pool.QueryRow(ctx, query, orderID, scope))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewRepositoryError("get", err)
	}

	if err := r.loadItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepository) loadItems(ctx context.Context, order *model.Order) error {
	query := `
    SELECT id, order_id, variant_id, sku, product_name, color, size, quantity,
      base_price, auto_promotion_id, auto_discount, coupon_discount, price_paid
    FROM order_items
    WHERE order_id = $1
    ORDER BY id
  `

	rows, err := r.pool.Query(ctx, query, order.ID)
	if err != nil {
		return model.NewRepositoryError("load items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.VariantID, &item.SKU, &item.ProductName,
			&item.Color, &item.Size, &item.Quantity, &item.BasePrice,
			&item.AutoPromotionID, &item.AutoDiscount, &item.CouponDiscount, &item.PricePaid,
		)
		if err != nil {
			return model.NewRepositoryError("scan item", err)
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*model.Order, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, model.NewRepositoryError("count", err)
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, model.NewRepositoryError("list", err)
	}
	defer rows.Close()

	var orders []*model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, model.NewRepositoryError("scan", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, model.NewRepositoryError("list", err)
	}

	return orders, total, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, orderID)
	if err != nil {
		return model.NewRepositoryError("update status", err)
	}
	if result.RowsAffected() == 0 {
		return model.NewOrderNotFound(orderID.String())
	}
	return nil
}
