package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/domains/promotion/model"
	"storefront-backend/internal/domains/promotion/repository"
)

type promotionService struct {
	repo repository.RepositoryInterface
}

func NewPromotionService(repo repository.RepositoryInterface) ServiceInterface {
	return &promotionService{repo: repo}
}

func (s *promotionService) CreatePromotion(ctx context.Context, req *model.CreatePromotionRequest) (*model.Promotion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	promo, err := req.ToModel()
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, promo)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("promotion_id", created.ID.String()).
		Str("kind", string(created.Kind)).
		Str("name", created.Name).
		Msg("Promotion created")

	return created, nil
}

func (s *promotionService) GetPromotion(ctx context.Context, id uuid.UUID) (*model.Promotion, error) {
	promo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, model.NewPromotionNotFound(id.String())
	}
	return promo, nil
}

func (s *promotionService) ListPromotions(ctx context.Context, page, limit int) ([]*model.Promotion, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.List(ctx, (page-1)*limit, limit)
}

func (s *promotionService) UpdatePromotion(ctx context.Context, id uuid.UUID, req *model.CreatePromotionRequest) (*model.Promotion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, model.NewPromotionNotFound(id.String())
	}

	promo, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	promo.ID = id

	return s.repo.Update(ctx, promo)
}

func (s *promotionService) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *promotionService) ActiveAutomaticPromotions(ctx context.Context) ([]*model.Promotion, error) {
	return s.repo.ListActiveAutomatic(ctx)
}

func (s *promotionService) ResolveCoupon(ctx context.Context, code string) (*model.Promotion, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, model.NewCouponNotFound(code)
	}

	promo, err := s.repo.FindCouponByCode(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, model.NewCouponNotFound(normalized)
	}
	if !promo.IsValidAt(time.Now()) {
		return nil, model.NewCouponNotValid(normalized)
	}
	return promo, nil
}

func (s *promotionService) DeactivateExpiredPromotions(ctx context.Context) (int64, error) {
	count, err := s.repo.DeactivateExpired(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Info().Int64("count", count).Msg("Expired promotions deactivated")
	}
	return count, nil
}
