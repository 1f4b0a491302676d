package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/domains/cart/model"
	promomodel "storefront-backend/internal/domains/promotion/model"
)

func line(basePrice int64, qty int) model.CartLine {
	return model.CartLine{
		ItemID:      uuid.New(),
		VariantID:   uuid.New(),
		SKU:         "SKU-1",
		ProductID:   uuid.New(),
		ProductName: "Test Product",
		BasePrice:   decimal.NewFromInt(basePrice),
		Quantity:    qty,
	}
}

func productPromo(productID uuid.UUID, dt promomodel.DiscountType, value int64, priority int) *promomodel.Promotion {
	now := time.Now()
	return &promomodel.Promotion{
		ID:            uuid.New(),
		Kind:          promomodel.KindAutomatic,
		Name:          "auto",
		DiscountType:  dt,
		DiscountValue: decimal.NewFromInt(value),
		Priority:      priority,
		Targets: []promomodel.Target{
			{Type: promomodel.TargetProduct, TargetID: productID},
		},
		StartsAt:  now.Add(-time.Hour),
		ExpiresAt: now.Add(time.Hour),
		IsActive:  true,
	}
}

func coupon(dt promomodel.DiscountType, value int64) *promomodel.Promotion {
	code := "SAVE"
	now := time.Now()
	return &promomodel.Promotion{
		ID:            uuid.New(),
		Kind:          promomodel.KindCoupon,
		Code:          &code,
		Name:          "coupon",
		DiscountType:  dt,
		DiscountValue: decimal.NewFromInt(value),
		StartsAt:      now.Add(-time.Hour),
		ExpiresAt:     now.Add(time.Hour),
		IsActive:      true,
	}
}

func assertTotalsInvariant(t *testing.T, priced *model.PricedCart) {
	t.Helper()

	sum := decimal.Zero
	for _, l := range priced.Lines {
		sum = sum.Add(l.PricePaid)
		assert.False(t, l.PricePaid.IsNegative(), "line %s paid negative", l.SKU)
	}
	assert.True(t, priced.TotalFinal.Equal(priced.TotalGross.Sub(priced.TotalDiscount)),
		"final %s != gross %s - discount %s", priced.TotalFinal, priced.TotalGross, priced.TotalDiscount)
	assert.True(t, sum.Equal(priced.TotalFinal),
		"sum of line prices %s != final %s", sum, priced.TotalFinal)
}

func TestPriceCartNoPromotions(t *testing.T) {
	engine := NewPricingEngine()

	priced, err := engine.PriceCart([]model.CartLine{line(100_000, 2)}, nil, nil, time.Now())
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(200_000).Equal(priced.TotalGross))
	assert.True(t, priced.TotalDiscount.IsZero())
	assert.True(t, decimal.NewFromInt(200_000).Equal(priced.TotalFinal))
	assertTotalsInvariant(t, priced)
}

func TestPriceCartPercentagePromotion(t *testing.T) {
	engine := NewPricingEngine()

	l := line(100_000, 2)
	promo := productPromo(l.ProductID, promomodel.DiscountTypePercentage, 50, 1)

	priced, err := engine.PriceCart([]model.CartLine{l}, []*promomodel.Promotion{promo}, nil, time.Now())
	require.NoError(t, err)

	require.Len(t, priced.Lines, 1)
	require.NotNil(t, priced.Lines[0].AutoPromotionID)
	assert.Equal(t, promo.ID, *priced.Lines[0].AutoPromotionID)
	assert.True(t, decimal.NewFromInt(100_000).Equal(priced.Lines[0].AutoDiscount))
	assert.True(t, decimal.NewFromInt(100_000).Equal(priced.TotalFinal))
	assertTotalsInvariant(t, priced)
}

func TestPriceCartFixedPromotionClampsLineToZero(t *testing.T) {
	engine := NewPricingEngine()

	l := line(20_000, 1)
	promo := productPromo(l.ProductID, promomodel.DiscountTypeFixed, 30_000, 1)

	priced, err := engine.PriceCart([]model.CartLine{l}, []*promomodel.Promotion{promo}, nil, time.Now())
	require.NoError(t, err)

	assert.True(t, priced.Lines[0].PricePaid.IsZero())
	assert.True(t, decimal.NewFromInt(20_000).Equal(priced.Lines[0].AutoDiscount))
	assertTotalsInvariant(t, priced)
}

func TestPriceCartHighestPriorityPromotionWins(t *testing.T) {
	engine := NewPricingEngine()

	l := line(100_000, 1)
	low := productPromo(l.ProductID, promomodel.DiscountTypePercentage, 10, 5)
	high := productPromo(l.ProductID, promomodel.DiscountTypePercentage, 20, 10)

	priced, err := engine.PriceCart([]model.CartLine{l},
		[]*promomodel.Promotion{low, high}, nil, time.Now())
	require.NoError(t, err)

	require.NotNil(t, priced.Lines[0].AutoPromotionID)
	assert.Equal(t, high.ID, *priced.Lines[0].AutoPromotionID)
	assert.True(t, decimal.NewFromInt(20_000).Equal(priced.Lines[0].AutoDiscount))
}

func TestPriceCartCouponAppliedAfterAutoPromotions(t *testing.T) {
	engine := NewPricingEngine()

	// 100,000 x 2 with 50% auto -> post-auto subtotal 100,000.
	// 10% coupon takes 10,000 off that, not off the gross.
	l := line(100_000, 2)
	promo := productPromo(l.ProductID, promomodel.DiscountTypePercentage, 50, 1)
	c := coupon(promomodel.DiscountTypePercentage, 10)

	priced, err := engine.PriceCart([]model.CartLine{l}, []*promomodel.Promotion{promo}, c, time.Now())
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(10_000).Equal(priced.CouponDiscount), "got %s", priced.CouponDiscount)
	assert.True(t, decimal.NewFromInt(90_000).Equal(priced.TotalFinal), "got %s", priced.TotalFinal)
	assertTotalsInvariant(t, priced)
}

func TestPriceCartFixedCouponClampedAtSubtotal(t *testing.T) {
	engine := NewPricingEngine()

	l := line(50_000, 1)
	c := coupon(promomodel.DiscountTypeFixed, 80_000)

	priced, err := engine.PriceCart([]model.CartLine{l}, nil, c, time.Now())
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(50_000).Equal(priced.CouponDiscount))
	assert.True(t, priced.TotalFinal.IsZero())
	assertTotalsInvariant(t, priced)
}

func TestPriceCartCouponAllocationAcrossLines(t *testing.T) {
	engine := NewPricingEngine()

	lines := []model.CartLine{line(30_000, 1), line(70_000, 1)}
	c := coupon(promomodel.DiscountTypeFixed, 50_000)

	priced, err := engine.PriceCart(lines, nil, c, time.Now())
	require.NoError(t, err)

	// First line absorbs its full value, the rest lands on the second.
	assert.True(t, decimal.NewFromInt(30_000).Equal(priced.Lines[0].CouponDiscount))
	assert.True(t, decimal.NewFromInt(20_000).Equal(priced.Lines[1].CouponDiscount))
	assert.True(t, decimal.NewFromInt(50_000).Equal(priced.TotalFinal))
	assertTotalsInvariant(t, priced)
}

func TestPriceCartMixedLinesInvariantHolds(t *testing.T) {
	engine := NewPricingEngine()

	l1 := line(99_999, 3)
	l2 := line(12_345, 2)
	l3 := line(7_000, 5)

	promo1 := productPromo(l1.ProductID, promomodel.DiscountTypePercentage, 33, 1)
	promo2 := productPromo(l3.ProductID, promomodel.DiscountTypeFixed, 2_500, 1)
	c := coupon(promomodel.DiscountTypePercentage, 7)

	priced, err := engine.PriceCart([]model.CartLine{l1, l2, l3},
		[]*promomodel.Promotion{promo1, promo2}, c, time.Now())
	require.NoError(t, err)
	assertTotalsInvariant(t, priced)
}

func TestPriceCartRejectsNonPositiveQuantity(t *testing.T) {
	engine := NewPricingEngine()

	l := line(10_000, 0)
	_, err := engine.PriceCart([]model.CartLine{l}, nil, nil, time.Now())
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)
}

func TestPriceCartRejectsNegativePrice(t *testing.T) {
	engine := NewPricingEngine()

	l := line(10_000, 1)
	l.BasePrice = decimal.NewFromInt(-1)
	_, err := engine.PriceCart([]model.CartLine{l}, nil, nil, time.Now())
	assert.ErrorIs(t, err, model.ErrInvalidBasePrice)
}

func TestPriceCartEmptyCartPricesToZero(t *testing.T) {
	engine := NewPricingEngine()

	priced, err := engine.PriceCart(nil, nil, coupon(promomodel.DiscountTypeFixed, 10_000), time.Now())
	require.NoError(t, err)
	assert.True(t, priced.TotalFinal.IsZero())
	assert.True(t, priced.CouponDiscount.IsZero(), "coupon has nothing to discount")
}
