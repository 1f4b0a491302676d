package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the order lifecycle state.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusShipping  OrderStatus = "SHIPPING"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
	StatusReturned  OrderStatus = "RETURNED"
)

// transitions is the full status machine. CANCELLED and RETURNED are
// terminal.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipping, StatusCancelled},
	StatusShipping:  {StatusDelivered},
	StatusDelivered: {StatusReturned},
}

// CanTransitionTo reports whether the move from the current status is legal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipping, StatusDelivered, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

// AddressSnapshot is a by-value copy of the shipping address taken at
// checkout. Later edits or deletion of the source address never change it.
type AddressSnapshot struct {
	RecipientName string `json:"recipient_name"`
	Phone         string `json:"phone"`
	Street        string `json:"street"`
	Ward          string `json:"ward"`
	District      string `json:"district"`
	Province      string `json:"province"`
}

// Validate rejects a snapshot missing any field an order cannot ship
// without.
func (a AddressSnapshot) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.RecipientName, validation.Required),
		validation.Field(&a.Phone, validation.Required),
		validation.Field(&a.Street, validation.Required),
		validation.Field(&a.District, validation.Required),
		validation.Field(&a.Province, validation.Required),
	)
}

// Order is an immutable record of a checkout. All prices and the shipping
// address are frozen at creation; only the status moves afterwards.
type Order struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	UserID      uuid.UUID   `json:"user_id" db:"user_id"`
	OrderNumber string      `json:"order_number" db:"order_number"`
	Status      OrderStatus `json:"status" db:"status"`

	ShippingAddress AddressSnapshot `json:"shipping_address" db:"shipping_address"`
	Note            string          `json:"note" db:"note"`

	CouponCode     *string         `json:"coupon_code,omitempty" db:"coupon_code"`
	TotalGross     decimal.Decimal `json:"total_gross" db:"total_gross"`
	AutoDiscount   decimal.Decimal `json:"auto_discount" db:"auto_discount"`
	CouponDiscount decimal.Decimal `json:"coupon_discount" db:"coupon_discount"`
	TotalDiscount  decimal.Decimal `json:"total_discount" db:"total_discount"`
	TotalFinal     decimal.Decimal `json:"total_final" db:"total_final"`

	Items []OrderItem `json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// OrderItem freezes one cart line: variant identity fields are copied by
// value so catalog edits cannot rewrite order history.
type OrderItem struct {
	ID      uuid.UUID `json:"id" db:"id"`
	OrderID uuid.UUID `json:"order_id" db:"order_id"`

	VariantID   uuid.UUID `json:"variant_id" db:"variant_id"`
	SKU         string    `json:"sku" db:"sku"`
	ProductName string    `json:"product_name" db:"product_name"`
	Color       string    `json:"color" db:"color"`
	Size        string    `json:"size" db:"size"`
	Quantity    int       `json:"quantity" db:"quantity"`

	BasePrice       decimal.Decimal `json:"base_price" db:"base_price"`
	AutoPromotionID *uuid.UUID      `json:"auto_promotion_id,omitempty" db:"auto_promotion_id"`
	AutoDiscount    decimal.Decimal `json:"auto_discount" db:"auto_discount"`
	CouponDiscount  decimal.Decimal `json:"coupon_discount" db:"coupon_discount"`
	PricePaid       decimal.Decimal `json:"price_paid" db:"price_paid"`
}

// CreateOrderRequest checks out the user's cart against a saved address.
type CreateOrderRequest struct {
	AddressID uuid.UUID `json:"address_id"`
	Note      string    `json:"note"`
}

func (r CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AddressID, validation.Required, validation.By(func(v interface{}) error {
			if id, ok := v.(uuid.UUID); !ok || id == uuid.Nil {
				return validation.NewError("validation_required", "must be a valid UUID")
			}
			return nil
		})),
		validation.Field(&r.Note, validation.Length(0, 500)),
	)
}

// UpdateStatusRequest moves the order to a new status (admin only).
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required, validation.By(func(v interface{}) error {
			s, _ := v.(string)
			if !OrderStatus(s).IsValid() {
				return validation.NewError("validation_status", "unknown order status")
			}
			return nil
		})),
	)
}
