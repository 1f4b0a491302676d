package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/domains/user/model"
	"storefront-backend/internal/domains/user/repository"
	"storefront-backend/internal/infrastructure/sms"
	"storefront-backend/pkg/jwt"
)

type authService struct {
	repo        repository.RepositoryInterface
	otp         *otpStore
	sms         sms.Sender
	jwtManager  *jwt.Manager
	maxAttempts int64
}

func NewAuthService(
	repo repository.RepositoryInterface,
	cache *redis.Client,
	sender sms.Sender,
	jwtManager *jwt.Manager,
	otpTTLSeconds, otpMaxAttempts int,
) ServiceInterface {
	return &authService{
		repo:        repo,
		otp:         newOTPStore(cache, otpTTLSeconds),
		sms:         sender,
		jwtManager:  jwtManager,
		maxAttempts: int64(otpMaxAttempts),
	}
}

func (s *authService) RequestOTP(ctx context.Context, req *model.RequestOTPRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return model.NewRepositoryError("generate otp", err)
	}

	if err := s.otp.Put(ctx, req.Phone, code); err != nil {
		return model.NewRepositoryError("store otp", err)
	}

	message := fmt.Sprintf("Your verification code is %s", code)
	if _, err := s.sms.SendSMS(ctx, req.Phone, message); err != nil {
		return model.NewRepositoryError("send otp", err)
	}

	log.Info().Str("phone", req.Phone).Msg("OTP requested")
	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) (*model.User, *model.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	attempts, err := s.otp.Attempts(ctx, req.Phone)
	if err != nil {
		return nil, nil, model.NewRepositoryError("check otp attempts", err)
	}
	if attempts >= s.maxAttempts {
		return nil, nil, model.ErrOTPTooManyAttempts
	}

	stored, err := s.otp.Get(ctx, req.Phone)
	if err != nil {
		return nil, nil, model.NewRepositoryError("load otp", err)
	}
	if stored == "" {
		return nil, nil, model.ErrOTPExpired
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(req.Code)) != 1 {
		if _, err := s.otp.RecordFailure(ctx, req.Phone); err != nil {
			log.Error().Err(err).Str("phone", req.Phone).Msg("Failed to record OTP attempt")
		}
		return nil, nil, model.ErrOTPInvalid
	}

	if err := s.otp.Clear(ctx, req.Phone); err != nil {
		log.Error().Err(err).Str("phone", req.Phone).Msg("Failed to clear OTP")
	}

	user, err := s.findOrCreateUser(ctx, req.Phone)
	if err != nil {
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, model.ErrAccountDisabled
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	log.Info().Str("user_id", user.ID.String()).Msg("OTP login succeeded")
	return user, tokens, nil
}

func (s *authService) findOrCreateUser(ctx context.Context, phone string) (*model.User, error) {
	user, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	return s.repo.Create(ctx, &model.User{
		Phone:    phone,
		Role:     model.RoleCustomer,
		IsActive: true,
	})
}

func (s *authService) issueTokens(user *model.User) (*model.TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID.String(), user.Phone, string(user.Role))
	if err != nil {
		return nil, model.NewRepositoryError("sign access token", err)
	}

	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, model.NewRepositoryError("sign refresh token", err)
	}

	return &model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *authService) RefreshTokens(ctx context.Context, req *model.RefreshTokenRequest) (*model.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, model.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, model.ErrInvalidRefreshToken
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrInvalidRefreshToken
	}
	if !user.IsActive {
		return nil, model.ErrAccountDisabled
	}

	return s.issueTokens(user)
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.NewUserNotFound(userID.String())
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}

	return s.repo.Update(ctx, user)
}
