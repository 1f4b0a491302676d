package service

import (
	"context"

	"github.com/google/uuid"

	"storefront-backend/internal/domains/promotion/model"
)

// ServiceInterface defines promotion business operations.
type ServiceInterface interface {
	CreatePromotion(ctx context.Context, req *model.CreatePromotionRequest) (*model.Promotion, error)
	GetPromotion(ctx context.Context, id uuid.UUID) (*model.Promotion, error)
	ListPromotions(ctx context.Context, page, limit int) ([]*model.Promotion, int, error)
	UpdatePromotion(ctx context.Context, id uuid.UUID, req *model.CreatePromotionRequest) (*model.Promotion, error)
	DeletePromotion(ctx context.Context, id uuid.UUID) error

	// ActiveAutomaticPromotions returns the current pool of candidates for
	// automatic line discounts.
	ActiveAutomaticPromotions(ctx context.Context) ([]*model.Promotion, error)

	// ResolveCoupon validates a user-entered coupon code and returns the
	// backing promotion.
	ResolveCoupon(ctx context.Context, code string) (*model.Promotion, error)

	// DeactivateExpiredPromotions flips is_active off for closed windows.
	// Called from the worker on a schedule.
	DeactivateExpiredPromotions(ctx context.Context) (int64, error)
}
