package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/domains/cart/model"
	"storefront-backend/internal/domains/cart/repository"
	catalogrepo "storefront-backend/internal/domains/catalog/repository"
	promomodel "storefront-backend/internal/domains/promotion/model"
	promoservice "storefront-backend/internal/domains/promotion/service"
)

const staleCartRetention = 30 * 24 * time.Hour

type cartService struct {
	repo       repository.RepositoryInterface
	catalog    catalogrepo.RepositoryInterface
	promotions promoservice.ServiceInterface
	engine     *PricingEngine
}

func NewCartService(
	repo repository.RepositoryInterface,
	catalog catalogrepo.RepositoryInterface,
	promotions promoservice.ServiceInterface,
) ServiceInterface {
	return &cartService{
		repo:       repo,
		catalog:    catalog,
		promotions: promotions,
		engine:     NewPricingEngine(),
	}
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*model.PricedCart, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.priceCart(ctx, cart)
}

func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *model.AddItemRequest) (*model.PricedCart, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	variant, err := s.catalog.GetVariantWithProduct(ctx, req.VariantID)
	if err != nil {
		return nil, model.NewRepositoryError("lookup variant", err)
	}
	if variant == nil || !variant.IsActive || !variant.ProductIsActive {
		return nil, model.NewVariantUnavailable(req.VariantID.String())
	}
	if !variant.InStock(req.Quantity) {
		return nil, model.NewVariantUnavailable(variant.SKU)
	}

	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.AddItem(ctx, cart.ID, req.VariantID, req.Quantity); err != nil {
		return nil, err
	}

	return s.priceCart(ctx, cart)
}

func (s *cartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req *model.UpdateItemRequest) (*model.PricedCart, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateItemQuantity(ctx, cart.ID, itemID, req.Quantity); err != nil {
		return nil, err
	}

	return s.priceCart(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*model.PricedCart, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RemoveItem(ctx, cart.ID, itemID); err != nil {
		return nil, err
	}

	return s.priceCart(ctx, cart)
}

func (s *cartService) ApplyCoupon(ctx context.Context, userID uuid.UUID, req *model.ApplyCouponRequest) (*model.PricedCart, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	coupon, err := s.promotions.ResolveCoupon(ctx, req.Code)
	if err != nil {
		return nil, err
	}

	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetCoupon(ctx, cart.ID, coupon.Code); err != nil {
		return nil, err
	}
	cart.CouponCode = coupon.Code

	return s.priceCart(ctx, cart)
}

func (s *cartService) RemoveCoupon(ctx context.Context, userID uuid.UUID) (*model.PricedCart, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetCoupon(ctx, cart.ID, nil); err != nil {
		return nil, err
	}
	cart.CouponCode = nil

	return s.priceCart(ctx, cart)
}

func (s *cartService) PurgeStaleCarts(ctx context.Context) (int64, error) {
	count, err := s.repo.PurgeStale(ctx, time.Now().Add(-staleCartRetention))
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Info().Int64("count", count).Msg("Stale carts purged")
	}
	return count, nil
}

// priceCart loads the cart lines and the live promotion pool and runs the
// pricing engine. A coupon that has gone invalid since it was attached is
// dropped silently rather than failing the read.
func (s *cartService) priceCart(ctx context.Context, cart *model.Cart) (*model.PricedCart, error) {
	lines, err := s.repo.ListLines(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.promotions.ActiveAutomaticPromotions(ctx)
	if err != nil {
		return nil, err
	}

	var coupon *promomodel.Promotion
	if cart.CouponCode != nil {
		coupon, err = s.promotions.ResolveCoupon(ctx, *cart.CouponCode)
		if err != nil {
			var promoErr *promomodel.PromotionError
			if !errors.As(err, &promoErr) {
				return nil, err
			}
			log.Warn().
				Str("cart_id", cart.ID.String()).
				Str("code", *cart.CouponCode).
				Str("reason", promoErr.Code).
				Msg("Attached coupon no longer valid; dropping")
			if err := s.repo.SetCoupon(ctx, cart.ID, nil); err != nil {
				return nil, err
			}
			coupon = nil
		}
	}

	return s.engine.PriceCart(lines, candidates, coupon, time.Now())
}
