package service

import (
	"github.com/shopspring/decimal"

	"storefront-backend/internal/domains/promotion/model"
)

// DiscountCalculator computes discount amounts for cart/order lines.
// All results are rounded to whole VND.
type DiscountCalculator struct{}

func NewDiscountCalculator() *DiscountCalculator {
	return &DiscountCalculator{}
}

var oneHundred = decimal.NewFromInt(100)

// LineDiscount computes the automatic discount for a line.
//
// percentage: basePrice * quantity * value / 100
// fixed:      value * quantity, capped at basePrice * quantity so a line can
// never be discounted below zero.
func (c *DiscountCalculator) LineDiscount(promo *model.Promotion, basePrice decimal.Decimal, quantity int) decimal.Decimal {
	qty := decimal.NewFromInt(int64(quantity))
	lineGross := basePrice.Mul(qty)

	var discount decimal.Decimal
	switch promo.DiscountType {
	case model.DiscountTypePercentage:
		discount = lineGross.Mul(promo.DiscountValue).Div(oneHundred)

	case model.DiscountTypeFixed:
		discount = promo.DiscountValue.Mul(qty)
		if discount.GreaterThan(lineGross) {
			discount = lineGross
		}

	default:
		return decimal.Zero
	}

	return discount.Round(0)
}

// SubtotalDiscount computes a coupon discount against a subtotal that has
// already had automatic discounts applied. Capped at the subtotal.
func (c *DiscountCalculator) SubtotalDiscount(promo *model.Promotion, subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch promo.DiscountType {
	case model.DiscountTypePercentage:
		discount = subtotal.Mul(promo.DiscountValue).Div(oneHundred)

	case model.DiscountTypeFixed:
		discount = promo.DiscountValue

	default:
		return decimal.Zero
	}

	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	return discount.Round(0)
}
