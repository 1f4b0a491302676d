package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront-backend/internal/domains/phone/model"
)

// RepositoryInterface defines phone persistence operations. All reads and
// writes are scoped to the owning user.
type RepositoryInterface interface {
	// Create inserts a phone. The user's first phone becomes the default
	// automatically, inside the same transaction as the insert.
	Create(ctx context.Context, phone *model.Phone) (*model.Phone, error)

	GetByID(ctx context.Context, userID, phoneID uuid.UUID) (*model.Phone, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Phone, error)

	// SetDefault marks one phone as the user's default. The previous default
	// is unset in the same transaction so the invariant never breaks, even
	// under concurrent requests.
	SetDefault(ctx context.Context, userID, phoneID uuid.UUID) error

	// Delete removes a phone. Deleting the default leaves the user with no
	// default; no other phone is promoted.
	Delete(ctx context.Context, userID, phoneID uuid.UUID) error
}
