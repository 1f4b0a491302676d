package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType represents valid discount types
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

func (dt DiscountType) IsValid() bool {
	switch dt {
	case DiscountTypePercentage, DiscountTypeFixed:
		return true
	}
	return false
}

func (dt DiscountType) String() string {
	return string(dt)
}

// Kind separates automatic catalog promotions from user-entered coupon codes.
type Kind string

const (
	KindAutomatic Kind = "automatic"
	KindCoupon    Kind = "coupon"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindAutomatic, KindCoupon:
		return true
	}
	return false
}

// TargetType says what catalog object an automatic promotion applies to.
type TargetType string

const (
	TargetProduct  TargetType = "product"
	TargetCategory TargetType = "category"
	TargetBrand    TargetType = "brand"
)

func (tt TargetType) IsValid() bool {
	switch tt {
	case TargetProduct, TargetCategory, TargetBrand:
		return true
	}
	return false
}

// Target is a tagged targeting rule. The type tag makes match predicates
// exhaustive instead of a loose {type, id} pair.
type Target struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	PromotionID uuid.UUID  `json:"promotion_id" db:"promotion_id"`
	Type        TargetType `json:"type" db:"target_type"`
	TargetID    uuid.UUID  `json:"target_id" db:"target_id"`
}

// LineTargets identifies the catalog objects a cart line belongs to, used for
// target matching.
type LineTargets struct {
	ProductID  uuid.UUID
	CategoryID *uuid.UUID
	BrandID    *uuid.UUID
}

// Matches reports whether this target applies to the given line.
func (t Target) Matches(line LineTargets) bool {
	switch t.Type {
	case TargetProduct:
		return t.TargetID == line.ProductID
	case TargetCategory:
		return line.CategoryID != nil && t.TargetID == *line.CategoryID
	case TargetBrand:
		return line.BrandID != nil && t.TargetID == *line.BrandID
	}
	return false
}

// Promotion represents either an automatic catalog promotion or a coupon code.
type Promotion struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Kind Kind      `json:"kind" db:"kind"`

	// Code is set for coupons only and normalized to uppercase.
	Code *string `json:"code,omitempty" db:"code"`
	Name string  `json:"name" db:"name"`

	DiscountType  DiscountType    `json:"discount_type" db:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value" db:"discount_value"`

	// Priority orders automatic promotions; highest wins per line.
	Priority int      `json:"priority" db:"priority"`
	Targets  []Target `json:"targets,omitempty"`

	StartsAt  time.Time `json:"starts_at" db:"starts_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	IsActive  bool      `json:"is_active" db:"is_active"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsValidAt checks active flag and the validity window. The window is
// inclusive at both ends.
func (p *Promotion) IsValidAt(now time.Time) bool {
	return p.IsActive &&
		!now.Before(p.StartsAt) &&
		!now.After(p.ExpiresAt)
}

// IsExpiredAt reports whether the window has closed.
func (p *Promotion) IsExpiredAt(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

// MatchesLine reports whether any target of this promotion applies.
func (p *Promotion) MatchesLine(line LineTargets) bool {
	for _, t := range p.Targets {
		if t.Matches(line) {
			return true
		}
	}
	return false
}

// Validate checks promotion data consistency.
func (p *Promotion) Validate() error {
	if !p.Kind.IsValid() {
		return ErrInvalidKind
	}
	if p.Kind == KindCoupon && (p.Code == nil || *p.Code == "") {
		return ErrCouponCodeRequired
	}
	if !p.DiscountType.IsValid() {
		return ErrInvalidDiscountType
	}
	if p.DiscountValue.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidDiscountValue
	}
	if p.DiscountType == DiscountTypePercentage && p.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		return ErrPercentageTooHigh
	}
	if !p.ExpiresAt.After(p.StartsAt) {
		return ErrInvalidDateRange
	}
	return nil
}

// PromotionUsage records a coupon or promotion applied to an order.
type PromotionUsage struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	PromotionID    uuid.UUID       `json:"promotion_id" db:"promotion_id"`
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`
	OrderID        uuid.UUID       `json:"order_id" db:"order_id"`
	DiscountAmount decimal.Decimal `json:"discount_amount" db:"discount_amount"`
	UsedAt         time.Time       `json:"used_at" db:"used_at"`
}
