package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"storefront-backend/internal/domains/cart/model"
)

// RepositoryInterface defines cart persistence operations.
type RepositoryInterface interface {
	// GetOrCreate returns the user's open cart, creating it on first use.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Cart, error)

	// AddItem inserts a cart item or bumps the quantity when the variant is
	// already in the cart.
	AddItem(ctx context.Context, cartID, variantID uuid.UUID, quantity int) (*model.CartItem, error)

	UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error

	// ListLines joins cart items with variants and products; the base price
	// is resolved (variant override else product price) in the query.
	ListLines(ctx context.Context, cartID uuid.UUID) ([]model.CartLine, error)

	SetCoupon(ctx context.Context, cartID uuid.UUID, code *string) error

	// ClearTx empties the cart inside the caller's transaction; used at
	// checkout together with the order insert.
	ClearTx(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) error

	// PurgeStale deletes carts untouched since the cutoff. Returns rows
	// removed.
	PurgeStale(ctx context.Context, cutoff time.Time) (int64, error)
}
