package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"storefront-backend/internal/domains/promotion/model"
)

// RepositoryInterface defines promotion persistence operations.
type RepositoryInterface interface {
	Create(ctx context.Context, p *model.Promotion) (*model.Promotion, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Promotion, error)
	List(ctx context.Context, offset, limit int) ([]*model.Promotion, int, error)
	Update(ctx context.Context, p *model.Promotion) (*model.Promotion, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ListActiveAutomatic returns automatic promotions whose window contains
	// now and whose is_active flag is set, with targets loaded.
	ListActiveAutomatic(ctx context.Context) ([]*model.Promotion, error)

	// FindCouponByCode looks up a coupon by its normalized code. Returns nil
	// when no coupon carries the code.
	FindCouponByCode(ctx context.Context, code string) (*model.Promotion, error)

	// CreateUsageTx records a promotion application inside the caller's
	// transaction, alongside the order insert.
	CreateUsageTx(ctx context.Context, tx pgx.Tx, usage *model.PromotionUsage) error

	// DeactivateExpired clears is_active on promotions whose window has
	// closed. Returns the number of rows touched.
	DeactivateExpired(ctx context.Context) (int64, error)
}
