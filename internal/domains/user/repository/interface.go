package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront-backend/internal/domains/user/model"
)

// RepositoryInterface defines user persistence operations.
type RepositoryInterface interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByPhone(ctx context.Context, phone string) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
}
