package service

import (
	"context"

	"github.com/google/uuid"

	"storefront-backend/internal/domains/user/model"
)

// ServiceInterface defines user and authentication operations.
type ServiceInterface interface {
	// RequestOTP generates a one-time code and sends it by SMS. Accounts
	// are created lazily on first verification, not here.
	RequestOTP(ctx context.Context, req *model.RequestOTPRequest) error

	// VerifyOTP checks the code and returns a token pair. A first-time
	// phone number gets a customer account created on the spot.
	VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) (*model.User, *model.TokenPair, error)

	RefreshTokens(ctx context.Context, req *model.RefreshTokenRequest) (*model.TokenPair, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error)
}
