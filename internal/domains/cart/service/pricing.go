package service

import (
	"time"

	"github.com/shopspring/decimal"

	"storefront-backend/internal/domains/cart/model"
	promomodel "storefront-backend/internal/domains/promotion/model"
	promoservice "storefront-backend/internal/domains/promotion/service"
)

// PricingEngine turns cart lines into a fully priced cart. It is pure: all
// inputs (lines, promotion pool, coupon, clock) come from the caller, so the
// same inputs always price the same way.
type PricingEngine struct {
	calc *promoservice.DiscountCalculator
}

func NewPricingEngine() *PricingEngine {
	return &PricingEngine{calc: promoservice.NewDiscountCalculator()}
}

// PriceCart prices every line and aggregates totals.
//
// Per line, the best matching automatic promotion is applied first. The
// coupon, when present, is then applied to the post-auto subtotal and
// allocated across lines in order, each line absorbing as much of the coupon
// as its remaining value allows. The allocation keeps the totals exact:
// TotalFinal == TotalGross - TotalDiscount == sum of line PricePaid.
func (e *PricingEngine) PriceCart(
	lines []model.CartLine,
	candidates []*promomodel.Promotion,
	coupon *promomodel.Promotion,
	now time.Time,
) (*model.PricedCart, error) {
	priced := &model.PricedCart{
		TotalGross:     decimal.Zero,
		AutoDiscount:   decimal.Zero,
		CouponDiscount: decimal.Zero,
		TotalDiscount:  decimal.Zero,
		TotalFinal:     decimal.Zero,
	}

	subtotal := decimal.Zero // post-auto

	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, model.ErrInvalidQuantity
		}
		if line.BasePrice.IsNegative() {
			return nil, model.ErrInvalidBasePrice
		}

		qty := decimal.NewFromInt(int64(line.Quantity))
		lineGross := line.BasePrice.Mul(qty)

		pl := model.PricedLine{
			ItemID:         line.ItemID,
			VariantID:      line.VariantID,
			SKU:            line.SKU,
			ProductName:    line.ProductName,
			Quantity:       line.Quantity,
			BasePrice:      line.BasePrice,
			LineGross:      lineGross,
			AutoDiscount:   decimal.Zero,
			CouponDiscount: decimal.Zero,
		}

		targets := promomodel.LineTargets{
			ProductID:  line.ProductID,
			CategoryID: line.CategoryID,
			BrandID:    line.BrandID,
		}
		if promo := promoservice.SelectAutoPromotion(candidates, targets, now); promo != nil {
			id := promo.ID
			pl.AutoPromotionID = &id
			pl.AutoDiscount = e.calc.LineDiscount(promo, line.BasePrice, line.Quantity)
		}

		pl.PricePaid = lineGross.Sub(pl.AutoDiscount)

		priced.Lines = append(priced.Lines, pl)
		priced.TotalGross = priced.TotalGross.Add(lineGross)
		priced.AutoDiscount = priced.AutoDiscount.Add(pl.AutoDiscount)
		subtotal = subtotal.Add(pl.PricePaid)
	}

	if coupon != nil && subtotal.IsPositive() {
		code := coupon.Code
		priced.CouponCode = code
		priced.CouponDiscount = e.calc.SubtotalDiscount(coupon, subtotal)
		e.allocateCoupon(priced)
	}

	priced.TotalDiscount = priced.AutoDiscount.Add(priced.CouponDiscount)
	priced.TotalFinal = priced.TotalGross.Sub(priced.TotalDiscount)
	return priced, nil
}

// allocateCoupon spreads the coupon discount over the lines so that per-line
// PricePaid stays consistent with the cart totals. Lines absorb the discount
// in order, each up to its own remaining value; the calculator has already
// capped the total at the post-auto subtotal, so nothing is left over.
func (e *PricingEngine) allocateCoupon(priced *model.PricedCart) {
	remaining := priced.CouponDiscount

	for i := range priced.Lines {
		if remaining.IsZero() {
			break
		}

		line := &priced.Lines[i]
		take := decimal.Min(remaining, line.PricePaid)
		line.CouponDiscount = take
		line.PricePaid = line.PricePaid.Sub(take)
		remaining = remaining.Sub(take)
	}
}
