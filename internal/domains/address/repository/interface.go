package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront-backend/internal/domains/address/model"
)

// RepositoryInterface defines address persistence operations. All reads and
// writes are scoped to the owning user.
type RepositoryInterface interface {
	// Create inserts an address. The user's first address becomes both the
	// default shipping and the billing address, inside the insert's
	// transaction.
	Create(ctx context.Context, addr *model.Address) (*model.Address, error)

	GetByID(ctx context.Context, userID, addressID uuid.UUID) (*model.Address, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Address, error)
	Update(ctx context.Context, addr *model.Address) (*model.Address, error)

	// SetDefaultShipping moves the is_default flag to the given address.
	// The previous holder is unset in the same transaction.
	SetDefaultShipping(ctx context.Context, userID, addressID uuid.UUID) error

	// SetDefaultBilling moves the is_billing flag the same way. The two
	// flags never interfere with each other.
	SetDefaultBilling(ctx context.Context, userID, addressID uuid.UUID) error

	// Delete removes an address. Deleting a flag holder leaves the user
	// without that flag; no other address is promoted.
	Delete(ctx context.Context, userID, addressID uuid.UUID) error
}
