package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/domains/promotion/model"
)

func autoPromoTargeting(priority int, targetType model.TargetType, targetID uuid.UUID) *model.Promotion {
	now := time.Now()
	return &model.Promotion{
		ID:            uuid.New(),
		Kind:          model.KindAutomatic,
		Name:          "test promo",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(10),
		Priority:      priority,
		Targets: []model.Target{
			{Type: targetType, TargetID: targetID},
		},
		StartsAt:  now.Add(-time.Hour),
		ExpiresAt: now.Add(time.Hour),
		IsActive:  true,
	}
}

func TestSelectAutoPromotionHighestPriorityWins(t *testing.T) {
	productID := uuid.New()
	line := model.LineTargets{ProductID: productID}

	p5 := autoPromoTargeting(5, model.TargetProduct, productID)
	p10 := autoPromoTargeting(10, model.TargetProduct, productID)

	got := SelectAutoPromotion([]*model.Promotion{p5, p10}, line, time.Now())
	require.NotNil(t, got)
	assert.Equal(t, p10.ID, got.ID)

	// Order of candidates must not matter.
	got = SelectAutoPromotion([]*model.Promotion{p10, p5}, line, time.Now())
	require.NotNil(t, got)
	assert.Equal(t, p10.ID, got.ID)
}

func TestSelectAutoPromotionTieBreaksOnSmallestID(t *testing.T) {
	productID := uuid.New()
	line := model.LineTargets{ProductID: productID}

	a := autoPromoTargeting(5, model.TargetProduct, productID)
	b := autoPromoTargeting(5, model.TargetProduct, productID)

	first := SelectAutoPromotion([]*model.Promotion{a, b}, line, time.Now())
	second := SelectAutoPromotion([]*model.Promotion{b, a}, line, time.Now())

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID, "tie-break must be deterministic")
}

func TestSelectAutoPromotionFiltersInactiveAndExpired(t *testing.T) {
	productID := uuid.New()
	line := model.LineTargets{ProductID: productID}
	now := time.Now()

	inactive := autoPromoTargeting(10, model.TargetProduct, productID)
	inactive.IsActive = false

	expired := autoPromoTargeting(10, model.TargetProduct, productID)
	expired.StartsAt = now.Add(-48 * time.Hour)
	expired.ExpiresAt = now.Add(-24 * time.Hour)

	future := autoPromoTargeting(10, model.TargetProduct, productID)
	future.StartsAt = now.Add(24 * time.Hour)
	future.ExpiresAt = now.Add(48 * time.Hour)

	assert.Nil(t, SelectAutoPromotion([]*model.Promotion{inactive, expired, future}, line, now))
}

func TestSelectAutoPromotionWindowIsInclusive(t *testing.T) {
	productID := uuid.New()
	line := model.LineTargets{ProductID: productID}
	now := time.Now().Truncate(time.Second)

	p := autoPromoTargeting(1, model.TargetProduct, productID)
	p.StartsAt = now
	p.ExpiresAt = now.Add(time.Hour)
	require.NotNil(t, SelectAutoPromotion([]*model.Promotion{p}, line, now), "starts_at boundary")

	p.StartsAt = now.Add(-time.Hour)
	p.ExpiresAt = now
	require.NotNil(t, SelectAutoPromotion([]*model.Promotion{p}, line, now), "expires_at boundary")
}

func TestSelectAutoPromotionMatchesCategoryAndBrand(t *testing.T) {
	productID := uuid.New()
	categoryID := uuid.New()
	brandID := uuid.New()

	line := model.LineTargets{
		ProductID:  productID,
		CategoryID: &categoryID,
		BrandID:    &brandID,
	}

	byCategory := autoPromoTargeting(1, model.TargetCategory, categoryID)
	byBrand := autoPromoTargeting(2, model.TargetBrand, brandID)
	unrelated := autoPromoTargeting(99, model.TargetProduct, uuid.New())

	got := SelectAutoPromotion([]*model.Promotion{byCategory, byBrand, unrelated}, line, time.Now())
	require.NotNil(t, got)
	assert.Equal(t, byBrand.ID, got.ID)
}

func TestSelectAutoPromotionIgnoresCoupons(t *testing.T) {
	productID := uuid.New()
	line := model.LineTargets{ProductID: productID}

	coupon := autoPromoTargeting(100, model.TargetProduct, productID)
	coupon.Kind = model.KindCoupon

	assert.Nil(t, SelectAutoPromotion([]*model.Promotion{coupon}, line, time.Now()))
}
