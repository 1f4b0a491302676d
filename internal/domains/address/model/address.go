package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Address is a shipping/billing address attached to a user. A user has at
// most one default shipping address (is_default) and at most one billing
// address (is_billing); the two flags are independent and may live on the
// same row or on different rows.
type Address struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	RecipientName string    `json:"recipient_name" db:"recipient_name"`
	Phone         string    `json:"phone" db:"phone"`
	Street        string    `json:"street" db:"street"`
	Ward          string    `json:"ward" db:"ward"`
	District      string    `json:"district" db:"district"`
	Province      string    `json:"province" db:"province"`
	IsDefault     bool      `json:"is_default" db:"is_default"`
	IsBilling     bool      `json:"is_billing" db:"is_billing"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// CreateAddressRequest adds an address to the authenticated user.
type CreateAddressRequest struct {
	RecipientName string `json:"recipient_name"`
	Phone         string `json:"phone"`
	Street        string `json:"street"`
	Ward          string `json:"ward"`
	District      string `json:"district"`
	Province      string `json:"province"`
}

func (r CreateAddressRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RecipientName, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Phone, validation.Required, validation.Length(9, 15)),
		validation.Field(&r.Street, validation.Required, validation.Length(3, 200)),
		validation.Field(&r.Ward, validation.Length(0, 100)),
		validation.Field(&r.District, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Province, validation.Required, validation.Length(2, 100)),
	)
}

// UpdateAddressRequest edits address fields. Flags are managed through the
// dedicated set-default endpoints, not here.
type UpdateAddressRequest struct {
	RecipientName *string `json:"recipient_name"`
	Phone         *string `json:"phone"`
	Street        *string `json:"street"`
	Ward          *string `json:"ward"`
	District      *string `json:"district"`
	Province      *string `json:"province"`
}

func (r UpdateAddressRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RecipientName, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&r.Phone, validation.NilOrNotEmpty, validation.Length(9, 15)),
		validation.Field(&r.Street, validation.NilOrNotEmpty, validation.Length(3, 200)),
		validation.Field(&r.District, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&r.Province, validation.NilOrNotEmpty, validation.Length(2, 100)),
	)
}

// Apply copies the non-nil fields onto the address.
func (r UpdateAddressRequest) Apply(a *Address) {
	if r.RecipientName != nil {
		a.RecipientName = *r.RecipientName
	}
	if r.Phone != nil {
		a.Phone = *r.Phone
	}
	if r.Street != nil {
		a.Street = *r.Street
	}
	if r.Ward != nil {
		a.Ward = *r.Ward
	}
	if r.District != nil {
		a.District = *r.District
	}
	if r.Province != nil {
		a.Province = *r.Province
	}
}
