package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the user's single open cart. A coupon code can be attached; it is
// re-validated on every pricing pass and at checkout.
type Cart struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	CouponCode *string   `json:"coupon_code,omitempty" db:"coupon_code"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// CartItem stores only the variant reference and quantity. Prices are never
// persisted on the cart; every read reprices against the live catalog and
// promotion pool.
type CartItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CartID    uuid.UUID `json:"cart_id" db:"cart_id"`
	VariantID uuid.UUID `json:"variant_id" db:"variant_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CartLine is a cart item joined with its variant and product, carrying
// everything the pricing engine needs.
type CartLine struct {
	ItemID      uuid.UUID
	VariantID   uuid.UUID
	SKU         string
	Color       string
	Size        string
	ProductID   uuid.UUID
	ProductName string
	CategoryID  *uuid.UUID
	BrandID     *uuid.UUID

	// BasePrice is the variant override when present, else the product base
	// price. Resolved by the repository join.
	BasePrice decimal.Decimal
	Quantity  int
	Stock     int
	IsActive  bool
}

// PricedLine is the pricing result for one cart line.
type PricedLine struct {
	ItemID      uuid.UUID `json:"item_id"`
	VariantID   uuid.UUID `json:"variant_id"`
	SKU         string    `json:"sku"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`

	BasePrice decimal.Decimal `json:"base_price"`
	LineGross decimal.Decimal `json:"line_gross"`

	AutoPromotionID *uuid.UUID      `json:"auto_promotion_id,omitempty"`
	AutoDiscount    decimal.Decimal `json:"auto_discount"`
	CouponDiscount  decimal.Decimal `json:"coupon_discount"`

	// PricePaid = LineGross - AutoDiscount - CouponDiscount, never negative.
	PricePaid decimal.Decimal `json:"price_paid"`
}

// PricedCart is the full pricing result. TotalFinal always equals
// TotalGross - TotalDiscount and the sum of line PricePaid values.
type PricedCart struct {
	Lines []PricedLine `json:"lines"`

	CouponCode     *string         `json:"coupon_code,omitempty"`
	TotalGross     decimal.Decimal `json:"total_gross"`
	AutoDiscount   decimal.Decimal `json:"auto_discount"`
	CouponDiscount decimal.Decimal `json:"coupon_discount"`
	TotalDiscount  decimal.Decimal `json:"total_discount"`
	TotalFinal     decimal.Decimal `json:"total_final"`
}

// AddItemRequest puts a variant in the cart or bumps its quantity.
type AddItemRequest struct {
	VariantID uuid.UUID `json:"variant_id"`
	Quantity  int       `json:"quantity"`
}

func (r AddItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.VariantID, validation.Required, validation.By(notNilUUID)),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

// UpdateItemRequest sets an item's quantity.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (r UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

// ApplyCouponRequest attaches a coupon code to the cart.
type ApplyCouponRequest struct {
	Code string `json:"code"`
}

func (r ApplyCouponRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required, validation.Length(3, 50)),
	)
}

func notNilUUID(v interface{}) error {
	if id, ok := v.(uuid.UUID); !ok || id == uuid.Nil {
		return validation.NewError("validation_required", "must be a valid UUID")
	}
	return nil
}
