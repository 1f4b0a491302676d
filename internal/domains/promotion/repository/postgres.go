package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/domains/promotion/model"
	"storefront-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const promotionColumns = `id, kind, code, name, discount_type, discount_value, priority, starts_at, expires_at, is_active, created_at, updated_at`

func scanPromotion(row pgx.Row) (*model.Promotion, error) {
	var p model.Promotion
	err := row.Scan(
		&p.ID, &p.Kind, &p.Code, &p.Name, &p.DiscountType, &p.DiscountValue,
		&p.Priority, &p.StartsAt, &p.ExpiresAt, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Promotion) (*model.Promotion, error) {
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Promotion, error) {
		query := `
      INSERT INTO promotions (kind, code, name, discount_type, discount_value, priority, starts_at, expires_at, is_active, created_at, updated_at)
      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
      RETURNING ` + promotionColumns

		row := tx.QueryRow(ctx, query,
			p.Kind, p.Code, p.Name, p.DiscountType, p.DiscountValue,
			p.Priority, p.StartsAt, p.ExpiresAt, p.IsActive,
		)

		created, err := scanPromotion(row)
		if err != nil {
			return nil, err
		}

		for _, t := range p.Targets {
			target, err := insertTarget(ctx, tx, created.ID, t)
			if err != nil {
				return nil, err
			}
			created.Targets = append(created.Targets, *target)
		}

		return created, nil
	})
	if err != nil {
		return nil, model.NewRepositoryError("create", err)
	}
	return created, nil
}

func insertTarget(ctx context.Context, tx pgx.Tx, promotionID uuid.UUID, t model.Target) (*model.Target, error) {
	query := `
    INSERT INTO promotion_targets (promotion_id, target_type, target_id, created_at)
    VALUES ($1, $2, $3, NOW())
    RETURNING id, promotion_id, target_type, target_id
  `

	var target model.Target
	err := tx.QueryRow(ctx, query, promotionID, t.Type, t.TargetID).Scan(
		&target.ID, &target.PromotionID, &target.Type, &target.TargetID,
	)
	if err != nil {
		return nil, err
	}
	return &target, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`

	p, err := scanPromotion(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewRepositoryError("get", err)
	}

	if err := r.loadTargets(ctx, []*model.Promotion{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepository) List(ctx context.Context, offset, limit int) ([]*model.Promotion, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM promotions`).Scan(&total); err != nil {
		return nil, 0, model.NewRepositoryError("count", err)
	}

	query := `SELECT ` + promotionColumns + ` FROM promotions ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, model.NewRepositoryError("list", err)
	}
	defer rows.Close()

	var promotions []*model.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, 0, model.NewRepositoryError("scan", err)
		}
		promotions = append(promotions, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, model.NewRepositoryError("list", err)
	}

	if err := r.loadTargets(ctx, promotions); err != nil {
		return nil, 0, err
	}
	return promotions, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Promotion) (*model.Promotion, error) {
	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Promotion, error) {
		query := `
      UPDATE promotions
      SET kind = $1, code = $2, name = $3, discount_type = $4, discount_value = $5,
          priority = $6, starts_at = $7, expires_at = $8, is_active = $9, updated_at = NOW()
      WHERE id = $10
      RETURNING ` + promotionColumns

		row := tx.QueryRow(ctx, query,
			p.Kind, p.Code, p.Name, p.DiscountType, p.DiscountValue,
			p.Priority, p.StartsAt, p.ExpiresAt, p.IsActive, p.ID,
		)

		updated, err := scanPromotion(row)
		if err != nil {
			return nil, err
		}

		// Targets are replaced wholesale; diffing a handful of rows is not
		// worth the bookkeeping.
		if _, err := tx.Exec(ctx, `DELETE FROM promotion_targets WHERE promotion_id = $1`, updated.ID); err != nil {
			return nil, err
		}
		for _, t := range p.Targets {
			target, err := insertTarget(ctx, tx, updated.ID, t)
			if err != nil {
				return nil, err
			}
			updated.Targets = append(updated.Targets, *target)
		}

		return updated, nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewPromotionNotFound(p.ID.String())
		}
		return nil, model.NewRepositoryError("update", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return model.NewRepositoryError("delete", err)
	}
	if result.RowsAffected() == 0 {
		return model.NewPromotionNotFound(id.String())
	}
	return nil
}

func (r *postgresRepository) ListActiveAutomatic(ctx context.Context) ([]*model.Promotion, error) {
	query := `
    SELECT ` + promotionColumns + `
    FROM promotions
    WHERE kind = $1 AND is_active = TRUE AND starts_at <= NOW() AND expires_at >= NOW()
    ORDER BY priority DESC, id
  `

	rows, err := r.pool.Query(ctx, query, model.KindAutomatic)
	if err != nil {
		return nil, model.NewRepositoryError("list active automatic", err)
	}
	defer rows.Close()

	var promotions []*model.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, model.NewRepositoryError("scan", err)
		}
		promotions = append(promotions, p)
	}
	if err = rows.Err(); err != nil {
		return nil, model.NewRepositoryError("list active automatic", err)
	}

	if err := r.loadTargets(ctx, promotions); err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *postgresRepository) FindCouponByCode(ctx context.Context, code string) (*model.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE kind = $1 AND code = $2`

	p, err := scanPromotion(r.pool.QueryRow(ctx, query, model.KindCoupon, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewRepositoryError("find coupon", err)
	}
	return p, nil
}

func (r *postgresRepository) CreateUsageTx(ctx context.Context, tx pgx.Tx, usage *model.PromotionUsage) error {
	query := `
    INSERT INTO promotion_usages (promotion_id, user_id, order_id, discount_amount, used_at)
    VALUES ($1, $2, $3, $4, NOW())
  `

	_, err := tx.Exec(ctx, query, usage.PromotionID, usage.UserID, usage.OrderID, usage.DiscountAmount)
	if err != nil {
		return model.NewRepositoryError("create usage", err)
	}
	return nil
}

func (r *postgresRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	result, err := r.pool.Exec(ctx,
		`UPDATE promotions SET is_active = FALSE, updated_at = NOW() WHERE is_active = TRUE AND expires_at < NOW()`)
	if err != nil {
		return 0, model.NewRepositoryError("deactivate expired", err)
	}
	return result.RowsAffected(), nil
}

// loadTargets fills Targets for the given promotions in a single query.
func (r *postgresRepository) loadTargets(ctx context.Context, promotions []*model.Promotion) error {
	if len(promotions) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(promotions))
	byID := make(map[uuid.UUID]*model.Promotion, len(promotions))
	for _, p := range promotions {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	query := `
    SELECT id, promotion_id, target_type, target_id
    FROM promotion_targets
    WHERE promotion_id = ANY($1)
  `

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return model.NewRepositoryError("load targets", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t model.Target
		if err := rows.Scan(&t.ID, &t.PromotionID, &t.Type, &t.TargetID); err != nil {
			return model.NewRepositoryError("scan target", err)
		}
		if p, ok := byID[t.PromotionID]; ok {
			p.Targets = append(p.Targets, t)
		}
	}
	return rows.Err()
}
