package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront-backend/internal/domains/promotion/model"
)

func percentPromo(value int64) *model.Promotion {
	return &model.Promotion{
		Kind:          model.KindAutomatic,
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(value),
	}
}

func fixedPromo(value int64) *model.Promotion {
	return &model.Promotion{
		Kind:          model.KindAutomatic,
		DiscountType:  model.DiscountTypeFixed,
		DiscountValue: decimal.NewFromInt(value),
	}
}

func TestLineDiscountPercentage(t *testing.T) {
	calc := NewDiscountCalculator()

	// 50% on 100,000 x2 -> 100,000
	got := calc.LineDiscount(percentPromo(50), decimal.NewFromInt(100_000), 2)
	assert.True(t, decimal.NewFromInt(100_000).Equal(got), "got %s", got)
}

func TestLineDiscountFixedClampsToLineGross(t *testing.T) {
	calc := NewDiscountCalculator()

	// 30,000/unit on a 20,000 base, qty 1 -> clamp to 20,000
	got := calc.LineDiscount(fixedPromo(30_000), decimal.NewFromInt(20_000), 1)
	assert.True(t, decimal.NewFromInt(20_000).Equal(got), "got %s", got)
}

func TestLineDiscountFixedScalesWithQuantity(t *testing.T) {
	calc := NewDiscountCalculator()

	got := calc.LineDiscount(fixedPromo(5_000), decimal.NewFromInt(80_000), 3)
	assert.True(t, decimal.NewFromInt(15_000).Equal(got), "got %s", got)
}

func TestLineDiscountRoundsToWholeVND(t *testing.T) {
	calc := NewDiscountCalculator()

	// 33% of 99 -> 32.67 -> 33
	got := calc.LineDiscount(percentPromo(33), decimal.NewFromInt(99), 1)
	assert.True(t, decimal.NewFromInt(33).Equal(got), "got %s", got)
}

func TestLineDiscountUnknownTypeIsZero(t *testing.T) {
	calc := NewDiscountCalculator()

	promo := &model.Promotion{DiscountType: "bogus", DiscountValue: decimal.NewFromInt(10)}
	got := calc.LineDiscount(promo, decimal.NewFromInt(100_000), 1)
	assert.True(t, got.IsZero())
}

func TestSubtotalDiscountPercentage(t *testing.T) {
	calc := NewDiscountCalculator()

	got := calc.SubtotalDiscount(percentPromo(10), decimal.NewFromInt(150_000))
	assert.True(t, decimal.NewFromInt(15_000).Equal(got), "got %s", got)
}

func TestSubtotalDiscountFixedClampsToSubtotal(t *testing.T) {
	calc := NewDiscountCalculator()

	got := calc.SubtotalDiscount(fixedPromo(200_000), decimal.NewFromInt(120_000))
	assert.True(t, decimal.NewFromInt(120_000).Equal(got), "got %s", got)
}
