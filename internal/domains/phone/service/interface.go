package service

import (
	"context"

	"github.com/google/uuid"

	"storefront-backend/internal/domains/phone/model"
)

// ServiceInterface defines phone business operations.
type ServiceInterface interface {
	AddPhone(ctx context.Context, userID uuid.UUID, req *model.CreatePhoneRequest) (*model.Phone, error)
	ListPhones(ctx context.Context, userID uuid.UUID) ([]model.Phone, error)
	SetDefaultPhone(ctx context.Context, userID, phoneID uuid.UUID) error
	DeletePhone(ctx context.Context, userID, phoneID uuid.UUID) error
}
