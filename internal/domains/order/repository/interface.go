package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"storefront-backend/internal/domains/order/model"
)

// RepositoryInterface defines order persistence operations.
type RepositoryInterface interface {
	// CreateTx inserts the order and its items inside the caller's
	// transaction, alongside stock decrements and the cart clear.
	CreateTx(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error)

	// GetByID loads the order with items. userID scopes the lookup; pass
	// uuid.Nil to skip the scope (admin access).
	GetByID(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error)

	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*model.Order, int, error)

	// UpdateStatus persists a status move. The transition has already been
	// checked by the service.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) error
}
