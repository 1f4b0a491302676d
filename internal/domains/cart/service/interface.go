package service

import (
	"context"

	"github.com/google/uuid"

	"storefront-backend/internal/domains/cart/model"
)

// ServiceInterface defines cart business operations.
type ServiceInterface interface {
	// GetCart returns the user's cart fully repriced against the current
	// catalog, promotion pool and attached coupon.
	GetCart(ctx context.Context, userID uuid.UUID) (*model.PricedCart, error)

	AddItem(ctx context.Context, userID uuid.UUID, req *model.AddItemRequest) (*model.PricedCart, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req *model.UpdateItemRequest) (*model.PricedCart, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*model.PricedCart, error)

	ApplyCoupon(ctx context.Context, userID uuid.UUID, req *model.ApplyCouponRequest) (*model.PricedCart, error)
	RemoveCoupon(ctx context.Context, userID uuid.UUID) (*model.PricedCart, error)

	// PurgeStaleCarts removes carts idle beyond the retention window. Run by
	// the worker on a schedule.
	PurgeStaleCarts(ctx context.Context) (int64, error)
}
