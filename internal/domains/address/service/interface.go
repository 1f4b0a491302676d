package service

import (
	"context"

	"github.com/google/uuid"

	"storefront-backend/internal/domains/address/model"
)

// ServiceInterface defines address business operations.
type ServiceInterface interface {
	AddAddress(ctx context.Context, userID uuid.UUID, req *model.CreateAddressRequest) (*model.Address, error)
	GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*model.Address, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]model.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, req *model.UpdateAddressRequest) (*model.Address, error)
	SetDefaultShipping(ctx context.Context, userID, addressID uuid.UUID) error
	SetDefaultBilling(ctx context.Context, userID, addressID uuid.UUID) error
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
