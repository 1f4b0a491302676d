package service

import (
	"context"

	"github.com/google/uuid"

	"storefront-backend/internal/domains/order/model"
)

// ServiceInterface defines order business operations.
type ServiceInterface interface {
	// CreateOrder checks out the user's cart: reprices it, freezes the
	// shipping address and variant data by value, decrements stock and
	// empties the cart, all in one transaction.
	CreateOrder(ctx context.Context, userID uuid.UUID, req *model.CreateOrderRequest) (*model.Order, error)

	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, page, limit int) ([]*model.Order, int, error)

	// CancelOrder lets the owner cancel while the order is still PENDING.
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error)

	// UpdateStatus moves the order through the status machine (admin).
	UpdateStatus(ctx context.Context, orderID uuid.UUID, req *model.UpdateStatusRequest) (*model.Order, error)
}
